package scene

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// PyramidAxis is the (unnormalized) axis the pyramid spins around.
var PyramidAxis = mgl32.Vec3{1, 0, 1}

// ClockMillis returns the milliseconds elapsed within the current minute of t, in [0, 60000).
func ClockMillis(t time.Time) int {
	return t.Second()*1000 + t.Nanosecond()/int(time.Millisecond)
}

// PyramidAngle is the pyramid spin in degree for a minute clock value: one degree every 10ms, wrapping at a full
// turn, rotating clockwise.
func PyramidAngle(millis int) float32 {
	return -float32((millis / 10) % 360)
}

// TriangleColor derives an opaque RGB color from three sine waves of different frequency, each mapped into [0, 1].
func TriangleColor(millis int) mgl32.Vec4 {
	t := float64(millis)
	return mgl32.Vec4{
		wave(t * math.Pi / 11000),
		wave(t * 3 * math.Pi / 17000),
		wave(t * 7 * math.Pi / 13000),
		1,
	}
}

func wave(x float64) float32 {
	return float32(math.Sin(x)/2 + 0.5)
}
