package scene

import (
	"time"

	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/model"
	"github.com/go-gl/mathgl/mgl32"
)

// State is everything the frame renderer reads: the cube orientation, the camera and the fixed object placements.
// It is only touched from the thread running the event loop.
type State struct {
	Orientation *Orientation
	Camera      *model.Camera

	CubePosition    mgl32.Vec3
	PyramidPosition mgl32.Vec3
}

// NewState wires redraw as the hook invoked after every rotation change, so a drag shows before the next tick.
func NewState(cam *model.Camera, cubePos mgl32.Vec3, pyramidPos mgl32.Vec3, redraw func()) *State {
	return &State{
		Orientation:     NewOrientation(redraw),
		Camera:          cam,
		CubePosition:    cubePos,
		PyramidPosition: pyramidPos,
	}
}

// Frame collects all per-frame values handed to the shaders.
type Frame struct {
	Millis int

	View       mgl32.Mat4
	Projection mgl32.Mat4

	CubeModel     mgl32.Mat4
	PyramidModel  mgl32.Mat4
	TriangleColor mgl32.Vec4
}

// Frame computes the matrices and colors for a viewport of width x height pixels at wall clock time now.
func (s *State) Frame(width, height int32, now time.Time) Frame {
	ms := ClockMillis(now)
	return Frame{
		Millis:        ms,
		View:          s.Camera.GetView(),
		Projection:    s.Camera.GetProjection(model.Aspect(width, height)),
		CubeModel:     CubeModel(s.CubePosition, s.Orientation),
		PyramidModel:  PyramidModel(s.PyramidPosition, ms),
		TriangleColor: TriangleColor(ms),
	}
}

// CubeModel places the cube at pos and applies the x, y and z rotations in that order (T * Rx * Ry * Rz).
func CubeModel(pos mgl32.Vec3, o *Orientation) mgl32.Mat4 {
	m := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(o.Degrees(AxisX))))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(o.Degrees(AxisY))))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(o.Degrees(AxisZ))))
	return m
}

// PyramidModel places the pyramid at pos and spins it around PyramidAxis by PyramidAngle(millis).
func PyramidModel(pos mgl32.Vec3, millis int) mgl32.Mat4 {
	m := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	return m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(PyramidAngle(millis)), PyramidAxis.Normalize()))
}
