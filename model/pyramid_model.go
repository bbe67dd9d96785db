package model

import "github.com/go-gl/mathgl/mgl32"

// NewPyramidMesh returns a tetrahedron standing on the xz-plane. Faces do not share vertices, each of the 4
// triangles lists its own 3 corners which gives 12 vertices and 12 sequential indices.
func NewPyramidMesh(name string) *Mesh {
	v := []Vertex{
		{Pos: mgl32.Vec3{-0.5, 0, 0}, Color: mgl32.Vec3{1, 0, 0}, TexCoord: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec3{0.5, 0, 0}, Color: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{1, 0}},
		{Pos: mgl32.Vec3{0, 0.5, 0}, Color: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{0, 0}},

		{Pos: mgl32.Vec3{-0.5, 0, 0}, Color: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec3{0, 0, -0.5}, Color: mgl32.Vec3{0, 1, 1}, TexCoord: mgl32.Vec2{1, 0}},
		{Pos: mgl32.Vec3{0, 0.5, 0}, Color: mgl32.Vec3{1, 0, 1}, TexCoord: mgl32.Vec2{0, 0}},

		{Pos: mgl32.Vec3{0, 0, -0.5}, Color: mgl32.Vec3{1, 0.5, 0}, TexCoord: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec3{0.5, 0, 0}, Color: mgl32.Vec3{1, 0, 1}, TexCoord: mgl32.Vec2{1, 0}},
		{Pos: mgl32.Vec3{0, 0.5, 0}, Color: mgl32.Vec3{0, 1, 1}, TexCoord: mgl32.Vec2{0, 0}},

		// base
		{Pos: mgl32.Vec3{-0.5, 0, 0}, Color: mgl32.Vec3{1, 1, 0}, TexCoord: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec3{0.5, 0, 0}, Color: mgl32.Vec3{1, 0.5, 0}, TexCoord: mgl32.Vec2{1, 0}},
		{Pos: mgl32.Vec3{0, 0, -0.5}, Color: mgl32.Vec3{1, 0, 0.5}, TexCoord: mgl32.Vec2{0, 0}},
	}

	id := make([]uint32, len(v))
	for i := range id {
		id[i] = uint32(i)
	}

	return NewMesh(name, v, id)
}
