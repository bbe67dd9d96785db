package renderer

import (
	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/model"
	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// These functions are part of the rendering core but are split into their own file for logical separation. Their
// focus is the list of objects drawn each frame and the per-object uniform uploads.

// Texture units the textured shader samples from
const (
	bgUnit   = 0
	faceUnit = 1
)

// uniformTarget receives uniform uploads. *Program is the only implementation used for drawing.
type uniformTarget interface {
	SetInt(name string, v int32)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, m mgl32.Mat4)
}

// uniformSetter uploads the per-object uniforms of one drawable from the frame values.
type uniformSetter func(u uniformTarget, f *scene.Frame)

// sceneObject describes one entry of the draw list before any GPU resource exists.
type sceneObject struct {
	name     string
	mesh     func(name string) *model.Mesh
	vert     string
	frag     string
	uniforms uniformSetter
}

// sceneObjects is the draw list in draw order. Cube and pyramid share their shader sources but every object gets its
// own program object.
var sceneObjects = []sceneObject{
	{"cube", model.NewCubeMesh, "shaders/textured.vert", "shaders/textured.frag", cubeUniforms},
	{"pyramid", model.NewPyramidMesh, "shaders/textured.vert", "shaders/textured.frag", pyramidUniforms},
	{"triangle", model.NewTriangleMesh, "shaders/flat.vert", "shaders/flat.frag", triangleUniforms},
}

// drawable ties a mesh to the program it is drawn with. Drawables are drawn in list order.
type drawable struct {
	name     string
	mesh     *GPUMesh
	program  *Program
	uniforms uniformSetter
}

func (d *drawable) draw(f *scene.Frame) {
	d.mesh.Bind()
	d.program.Use()
	d.uniforms(d.program, f)
	d.mesh.Draw()
}

func cubeUniforms(u uniformTarget, f *scene.Frame) {
	u.SetInt("ourBg", bgUnit)
	u.SetInt("ourFace", faceUnit)
	u.SetMat4("view", f.View)
	u.SetMat4("projection", f.Projection)
	u.SetMat4("model", f.CubeModel)
}

// pyramidUniforms leaves ourFace unset, its sampler stays on unit 0 and shows the background texture twice.
func pyramidUniforms(u uniformTarget, f *scene.Frame) {
	u.SetInt("ourBg", bgUnit)
	u.SetMat4("view", f.View)
	u.SetMat4("projection", f.Projection)
	u.SetMat4("model", f.PyramidModel)
}

func triangleUniforms(u uniformTarget, f *scene.Frame) {
	u.SetVec4("color", f.TriangleColor)
}

// AddToScene appends a drawable. Mesh and program are owned by the core and released in Destroy.
func (c *Core) AddToScene(name string, mesh *GPUMesh, program *Program, uniforms uniformSetter) {
	c.drawables = append(c.drawables, &drawable{
		name:     name,
		mesh:     mesh,
		program:  program,
		uniforms: uniforms,
	})
}

// SceneNames lists the drawables in draw order.
func (c *Core) SceneNames() []string {
	names := make([]string, len(c.drawables))
	for i, d := range c.drawables {
		names[i] = d.name
	}
	return names
}

// ClearScene drops all drawables. GPU resources are left alone, they are released by Destroy.
func (c *Core) ClearScene() {
	c.drawables = nil
}
