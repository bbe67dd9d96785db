package scene

import (
	"testing"

	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/model"
	"github.com/go-gl/mathgl/mgl32"
)

func newTestState(redraw func()) *State {
	return NewState(model.NewCamera(45, 0.1, 100), mgl32.Vec3{}, mgl32.Vec3{3, 0, -5}, redraw)
}

// TestLeftDrag drags 10px right and 5px down with the left button held
func TestLeftDrag(t *testing.T) {
	s := newTestState(nil)
	s.Orientation.SetXRotation(FullTurn)
	c := NewController(s)

	c.MousePress(100, 100)
	c.MouseMove(110, 105, ButtonLeft)

	if s.Orientation.X() != 40 {
		t.Errorf("X should be 40 but is %d", s.Orientation.X())
	}
	if s.Orientation.Y() != 80 {
		t.Errorf("Y should be 80 but is %d", s.Orientation.Y())
	}
	if s.Orientation.Z() != 0 {
		t.Errorf("Z should stay 0 but is %d", s.Orientation.Z())
	}
}

func TestRightDrag(t *testing.T) {
	s := newTestState(nil)
	c := NewController(s)

	c.MousePress(50, 50)
	c.MouseMove(40, 52, ButtonRight)

	if s.Orientation.X() != 16 {
		t.Errorf("X should be 16 but is %d", s.Orientation.X())
	}
	if s.Orientation.Y() != 0 {
		t.Errorf("Y should stay 0 but is %d", s.Orientation.Y())
	}
	if s.Orientation.Z() != FullTurn-80 {
		t.Errorf("Z should wrap to %d but is %d", FullTurn-80, s.Orientation.Z())
	}
}

// TestDragAnchorFollowsMouse confirms that consecutive moves only apply the delta since the previous move
func TestDragAnchorFollowsMouse(t *testing.T) {
	s := newTestState(nil)
	c := NewController(s)

	c.MousePress(0, 0)
	c.MouseMove(5, 0, 0) // no button, only moves the anchor
	c.MouseMove(6, 0, ButtonLeft)

	if s.Orientation.Y() != 8 {
		t.Errorf("Y should be 8 after a 1px drag but is %d", s.Orientation.Y())
	}
}

func TestLeftWinsOverRight(t *testing.T) {
	s := newTestState(nil)
	c := NewController(s)

	c.MouseMove(1, 0, ButtonLeft|ButtonRight)
	if s.Orientation.Y() != 8 || s.Orientation.Z() != 0 {
		t.Errorf("Left drag should take precedence, got y=%d z=%d", s.Orientation.Y(), s.Orientation.Z())
	}
}

func TestKeyPressStrafe(t *testing.T) {
	redraws := 0
	s := newTestState(func() { redraws++ })
	c := NewController(s)

	if !c.KeyPress(KeyD) {
		t.Fatalf("D should be handled")
	}
	want := mgl32.Vec3{0.3, 0, 0}
	if !s.Camera.Pos.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Camera should be at %v but is at %v", want, s.Camera.Pos)
	}
	if redraws != 0 {
		t.Errorf("A camera move should wait for the refresh tick, got %d redraw requests", redraws)
	}
}

func TestKeyPressUnknown(t *testing.T) {
	redraws := 0
	s := newTestState(func() { redraws++ })
	c := NewController(s)

	if c.KeyPress(KeyUnknown) {
		t.Errorf("Unknown keys should not be handled")
	}
	if s.Camera.Pos != (mgl32.Vec3{}) || redraws != 0 {
		t.Errorf("Unknown keys should neither move the camera nor redraw")
	}
}

func TestKeyPressSequence(t *testing.T) {
	s := newTestState(nil)
	c := NewController(s)
	for _, k := range []Key{KeyW, KeyW, KeyS, KeySpace, KeyA} {
		c.KeyPress(k)
	}
	want := mgl32.Vec3{-0.3, 0.3, -0.3}
	if !s.Camera.Pos.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Camera should be at %v but is at %v", want, s.Camera.Pos)
	}
}
