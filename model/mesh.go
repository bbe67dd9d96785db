package model

import (
	"errors"
	"fmt"
	"unsafe"
)

// Mesh holds CPU side geometry as it is uploaded to the GPU: an interleaved vertex buffer, the index list
// addressing it and the attribute layout needed to interpret the buffer. Meshes are not modified after creation.
type Mesh struct {
	Name       string
	Vertices   []float32
	Indices    []uint32
	Stride     int32
	Attributes []Attribute
}

func NewMesh(name string, v []Vertex, id []uint32) *Mesh {
	return &Mesh{
		Name:       name,
		Vertices:   Flatten(v),
		Indices:    id,
		Stride:     VertexStride(),
		Attributes: GetVertexAttributes(),
	}
}

// NewPositionMesh builds a mesh whose vertices only carry a position.
func NewPositionMesh(name string, positions []float32, id []uint32) *Mesh {
	return &Mesh{
		Name:       name,
		Vertices:   positions,
		Indices:    id,
		Stride:     PositionStride(),
		Attributes: PositionAttributes(),
	}
}

// VertexCount reports how many vertices the interleaved buffer holds.
func (m *Mesh) VertexCount() int {
	floatsPerVertex := int(m.Stride) / int(unsafe.Sizeof(float32(0)))
	return len(m.Vertices) / floatsPerVertex
}

// IndexCount is the number of indices issued by a draw call for this mesh.
func (m *Mesh) IndexCount() int32 {
	return int32(len(m.Indices))
}

// GetVBufferSize returns the size in bytes required for keeping the vertices in device memory.
func (m *Mesh) GetVBufferSize() int {
	return len(m.Vertices) * int(unsafe.Sizeof(float32(0)))
}

// GetIdxBufferSize returns the size in bytes required for keeping the indices in device memory.
func (m *Mesh) GetIdxBufferSize() int {
	return len(m.Indices) * int(unsafe.Sizeof(uint32(0)))
}

// Validate checks that the buffer is a whole number of vertices and that every index addresses one of them.
func (m *Mesh) Validate() error {
	if m.Stride <= 0 {
		return fmt.Errorf("mesh '%s' has invalid stride %d", m.Name, m.Stride)
	}
	if len(m.Indices) == 0 {
		return fmt.Errorf("mesh '%s' has no indices", m.Name)
	}
	if m.GetVBufferSize()%int(m.Stride) != 0 {
		return fmt.Errorf("mesh '%s' vertex buffer of %d Byte is not a multiple of stride %d", m.Name, m.GetVBufferSize(), m.Stride)
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("mesh '%s' index %d out of range: %d >= %d", m.Name, i, idx, n)
		}
	}
	if len(m.Indices)%3 != 0 {
		return errors.New("mesh '" + m.Name + "' index count is not a multiple of 3")
	}
	return nil
}
