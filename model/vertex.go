package model

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved layout shared by the textured meshes. Expected size in memory is 32 Byte
// (position 12 Byte, color 12 Byte, texture coordinate 8 Byte), tightly packed without padding.
type Vertex struct {
	Pos      mgl32.Vec3
	Color    mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Attribute describes how one vertex shader input is read from an interleaved vertex buffer.
type Attribute struct {
	Location uint32
	Size     int32   // number of float32 components
	Offset   uintptr // byte offset inside one vertex
}

// GetVertexAttributes returns the attribute layout for Vertex. Locations match the 'layout (location = n)'
// qualifiers of the textured shader: 0 -> aPos, 1 -> aCol, 2 -> aTex.
func GetVertexAttributes() []Attribute {
	return []Attribute{
		{Location: 0, Size: 3, Offset: unsafe.Offsetof(Vertex{}.Pos)},
		{Location: 1, Size: 3, Offset: unsafe.Offsetof(Vertex{}.Color)},
		{Location: 2, Size: 2, Offset: unsafe.Offsetof(Vertex{}.TexCoord)},
	}
}

// VertexStride is the byte distance between two consecutive Vertex entries.
func VertexStride() int32 {
	return int32(unsafe.Sizeof(Vertex{}))
}

// PositionAttributes returns the layout of a position only vertex buffer.
func PositionAttributes() []Attribute {
	return []Attribute{
		{Location: 0, Size: 3, Offset: 0},
	}
}

// PositionStride is the byte size of a single position (float32 * 3).
func PositionStride() int32 {
	return int32(unsafe.Sizeof(mgl32.Vec3{}))
}

// Flatten writes the vertices into one interleaved float32 slice in the order given by GetVertexAttributes.
func Flatten(v []Vertex) []float32 {
	f := make([]float32, 0, len(v)*8)
	for _, vert := range v {
		f = append(f, vert.Pos[:]...)
		f = append(f, vert.Color[:]...)
		f = append(f, vert.TexCoord[:]...)
	}
	return f
}
