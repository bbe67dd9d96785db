package model

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction names the discrete camera moves triggered by key presses.
type Direction int

const (
	DirUp Direction = iota
	DirForward
	DirBackward
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirForward:
		return "forward"
	case DirBackward:
		return "backward"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Camera is a free fly camera looking along Front. Only Pos is changed at runtime, Front and Up stay fixed.
type Camera struct {
	// Projection matrix precursors
	Fov  float32 // vertical field of view in degree
	Near float32
	Far  float32

	Pos   mgl32.Vec3
	Front mgl32.Vec3
	Up    mgl32.Vec3

	// Speed is the distance covered by a single Move, independent of frame time
	Speed float32
}

func NewCamera(fov float32, near float32, far float32) *Camera {
	return &Camera{
		Fov:   fov,
		Near:  near,
		Far:   far,
		Front: mgl32.Vec3{0, 0, -1},
		Up:    mgl32.Vec3{0, 1, 0},
		Speed: 0.3,
	}
}

// Right is the normalized strafe direction front x up.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// Move shifts the camera by one step of Speed in the given direction.
func (c *Camera) Move(d Direction) {
	switch d {
	case DirUp:
		c.Pos = c.Pos.Add(c.Up.Mul(c.Speed))
	case DirForward:
		c.Pos = c.Pos.Add(c.Front.Mul(c.Speed))
	case DirBackward:
		c.Pos = c.Pos.Sub(c.Front.Mul(c.Speed))
	case DirLeft:
		c.Pos = c.Pos.Sub(c.Right().Mul(c.Speed))
	case DirRight:
		c.Pos = c.Pos.Add(c.Right().Mul(c.Speed))
	default:
		slog.Warn("Ignoring unknown camera direction", "direction", int(d))
	}
}

// GetView returns the look-at matrix from Pos towards Pos + Front.
func (c *Camera) GetView() mgl32.Mat4 {
	return mgl32.LookAtV(c.Pos, c.Pos.Add(c.Front), c.Up)
}

// GetProjection returns the perspective projection for a viewport of the given aspect ratio (width / height).
func (c *Camera) GetProjection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// Aspect converts a viewport size into an aspect ratio. A collapsed viewport (height 0) yields 1.
func Aspect(width, height int32) float32 {
	if height <= 0 || width <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
