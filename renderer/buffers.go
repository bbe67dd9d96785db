package renderer

import (
	"fmt"
	"log/slog"

	"github.com/bsu-mmf-2k4g2019/lab-2-milkeshaa/model"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// GPUMesh references the device side copy of a model.Mesh. The VAO records the buffer bindings and the attribute
// layout, so binding it is all a draw call needs.
type GPUMesh struct {
	Name       string
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// uploadMesh validates m, moves its vertices and indices into freshly generated buffers and records the layout in
// a new VAO. Every call generates its own handles, buffers are never shared between meshes.
func uploadMesh(m *model.Mesh) (*GPUMesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}
	g := &GPUMesh{
		Name:       m.Name,
		IndexCount: m.IndexCount(),
	}
	gl.GenVertexArrays(1, &g.VAO)
	gl.GenBuffers(1, &g.VBO)
	gl.GenBuffers(1, &g.EBO)

	// The VAO captures the element buffer binding and every attribute pointer set while it is bound
	gl.BindVertexArray(g.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, m.GetVBufferSize(), gl.Ptr(m.Vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, m.GetIdxBufferSize(), gl.Ptr(m.Indices), gl.STATIC_DRAW)

	for _, a := range m.Attributes {
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, m.Stride, gl.PtrOffset(int(a.Offset)))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	slog.Info("Uploaded mesh",
		"name", m.Name,
		"vertices", m.VertexCount(),
		"indices", m.IndexCount(),
		"vbuffer_bytes", m.GetVBufferSize(),
		"ibuffer_bytes", m.GetIdxBufferSize(),
	)
	return g, nil
}

func (g *GPUMesh) Bind() {
	gl.BindVertexArray(g.VAO)
}

// Draw issues an indexed triangle draw over the whole uploaded index buffer.
func (g *GPUMesh) Draw() {
	gl.DrawElements(gl.TRIANGLES, g.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (g *GPUMesh) Destroy() {
	gl.DeleteVertexArrays(1, &g.VAO)
	gl.DeleteBuffers(1, &g.VBO)
	gl.DeleteBuffers(1, &g.EBO)
	g.VAO, g.VBO, g.EBO = 0, 0, 0
}
