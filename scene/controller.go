package scene

import (
	"log/slog"

	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/model"
)

// Button is a bit set of held mouse buttons.
type Button uint32

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
)

// Key lists the keys the controller reacts to, independent of the windowing library.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
)

// dragFactor converts one pixel of mouse travel into sixteenths of a degree (half a degree per pixel).
const dragFactor = 8

var keyMoves = map[Key]model.Direction{
	KeySpace: model.DirUp,
	KeyW:     model.DirForward,
	KeyS:     model.DirBackward,
	KeyA:     model.DirLeft,
	KeyD:     model.DirRight,
}

// Controller turns mouse drags into cube rotations and key presses into camera steps.
type Controller struct {
	state        *State
	lastX, lastY int32
}

func NewController(s *State) *Controller {
	return &Controller{state: s}
}

// MousePress anchors the next drag at (x, y).
func (c *Controller) MousePress(x, y int32) {
	c.lastX, c.lastY = x, y
}

// MouseMove rotates the cube by the travel since the anchor. Left drag turns around x and y, right drag around x
// and z. The anchor always moves to (x, y).
func (c *Controller) MouseMove(x, y int32, buttons Button) {
	dx := int(x - c.lastX)
	dy := int(y - c.lastY)

	o := c.state.Orientation
	if buttons&ButtonLeft != 0 {
		o.SetXRotation(o.X() + dragFactor*dy)
		o.SetYRotation(o.Y() + dragFactor*dx)
	} else if buttons&ButtonRight != 0 {
		o.SetXRotation(o.X() + dragFactor*dy)
		o.SetZRotation(o.Z() + dragFactor*dx)
	}
	c.lastX, c.lastY = x, y
}

// KeyPress moves the camera one step for a known key and reports whether it did. The move shows up with the next
// refresh tick.
func (c *Controller) KeyPress(k Key) bool {
	d, ok := keyMoves[k]
	if !ok {
		return false
	}
	c.state.Camera.Move(d)
	slog.Debug("Camera moved", "direction", d, "pos", c.state.Camera.Pos)
	return true
}
