package scene

import (
	"fmt"
	"log/slog"
)

// FullTurn is one revolution measured in sixteenths of a degree.
const FullTurn = 360 * 16

// Axis identifies one of the three cube rotation angles.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

func (a Axis) valid() bool {
	return a >= AxisX && a <= AxisZ
}

// NormalizeAngle maps any angle into [0, FullTurn) keeping it congruent modulo FullTurn.
func NormalizeAngle(angle int) int {
	angle %= FullTurn
	if angle < 0 {
		angle += FullTurn
	}
	return angle
}

// RotationListener is notified with the new normalized angle whenever an axis actually changes.
type RotationListener func(axis Axis, angle int)

// Orientation holds the cube's rotation around x, y and z in sixteenths of a degree.
type Orientation struct {
	angles    [3]int
	listeners []RotationListener
	redraw    func()
}

// NewOrientation creates a zero orientation. redraw is called after every change and may be nil.
func NewOrientation(redraw func()) *Orientation {
	return &Orientation{redraw: redraw}
}

// OnRotationChanged registers a listener. Listeners are called in registration order.
func (o *Orientation) OnRotationChanged(l RotationListener) {
	o.listeners = append(o.listeners, l)
}

// Angle returns the stored angle of an axis, 0 for an unknown axis.
func (o *Orientation) Angle(axis Axis) int {
	if !axis.valid() {
		return 0
	}
	return o.angles[axis]
}

func (o *Orientation) X() int { return o.angles[AxisX] }
func (o *Orientation) Y() int { return o.angles[AxisY] }
func (o *Orientation) Z() int { return o.angles[AxisZ] }

// Degrees returns the angle of an axis in degree.
func (o *Orientation) Degrees(axis Axis) float32 {
	return float32(o.Angle(axis)) / 16
}

// SetRotation normalizes angle and stores it. Listeners and the redraw hook only fire if the stored value changed,
// which is reported by the return value. Unknown axes are ignored.
func (o *Orientation) SetRotation(axis Axis, angle int) bool {
	if !axis.valid() {
		slog.Warn("Ignoring rotation of unknown axis", "axis", axis, "angle", angle)
		return false
	}
	angle = NormalizeAngle(angle)
	if angle == o.angles[axis] {
		return false
	}
	o.angles[axis] = angle
	for _, l := range o.listeners {
		l(axis, angle)
	}
	if o.redraw != nil {
		o.redraw()
	}
	return true
}

func (o *Orientation) SetXRotation(angle int) bool { return o.SetRotation(AxisX, angle) }
func (o *Orientation) SetYRotation(angle int) bool { return o.SetRotation(AxisY, angle) }
func (o *Orientation) SetZRotation(angle int) bool { return o.SetRotation(AxisZ, angle) }
