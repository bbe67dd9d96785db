package model

import "github.com/go-gl/mathgl/mgl32"

// NewCubeMesh returns a unit cube centered on the origin. Every face owns its 4 vertices so that each one can carry
// its own texture coordinates, resulting in 24 vertices (32 Byte each -> 768 Byte) and 36 indices.
func NewCubeMesh(name string) *Mesh {
	v := []Vertex{
		// front (z = 0.5)
		{Pos: mgl32.Vec3{0.5, 0.5, 0.5}, Color: mgl32.Vec3{1, 0, 0}, TexCoord: mgl32.Vec2{1, 1}},    // top right
		{Pos: mgl32.Vec3{0.5, -0.5, 0.5}, Color: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{1, 0}},   // bottom right
		{Pos: mgl32.Vec3{-0.5, -0.5, 0.5}, Color: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{0, 0}},  // bottom left
		{Pos: mgl32.Vec3{-0.5, 0.5, 0.5}, Color: mgl32.Vec3{1, 1, 0}, TexCoord: mgl32.Vec2{0, 1}},   // top left
		// bottom (y = -0.5)
		{Pos: mgl32.Vec3{0.5, -0.5, 0.5}, Color: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec3{0.5, -0.5, -0.5}, Color: mgl32.Vec3{0, 1, 1}, TexCoord: mgl32.Vec2{1, 0}},
		{Pos: mgl32.Vec3{-0.5, -0.5, -0.5}, Color: mgl32.Vec3{1, 0, 1}, TexCoord: mgl32.Vec2{0, 0}},
		{Pos: mgl32.Vec3{-0.5, -0.5, 0.5}, Color: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{0, 1}},
		// back (z = -0.5)
		{Pos: mgl32.Vec3{-0.5, 0.5, -0.5}, Color: mgl32.Vec3{1, 0.5, 0}, TexCoord: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec3{-0.5, -0.5, -0.5}, Color: mgl32.Vec3{1, 0, 1}, TexCoord: mgl32.Vec2{1, 0}},
		{Pos: mgl32.Vec3{0.5, -0.5, -0.5}, Color: mgl32.Vec3{0, 1, 1}, TexCoord: mgl32.Vec2{0, 0}},
		{Pos: mgl32.Vec3{0.5, 0.5, -0.5}, Color: mgl32.Vec3{1, 0, 0.5}, TexCoord: mgl32.Vec2{0, 1}},
		// top (y = 0.5)
		{Pos: mgl32.Vec3{-0.5, 0.5, 0.5}, Color: mgl32.Vec3{1, 1, 0}, TexCoord: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec3{-0.5, 0.5, -0.5}, Color: mgl32.Vec3{1, 0.5, 0}, TexCoord: mgl32.Vec2{1, 0}},
		{Pos: mgl32.Vec3{0.5, 0.5, -0.5}, Color: mgl32.Vec3{1, 0, 0.5}, TexCoord: mgl32.Vec2{0, 0}},
		{Pos: mgl32.Vec3{0.5, 0.5, 0.5}, Color: mgl32.Vec3{1, 0, 0}, TexCoord: mgl32.Vec2{0, 1}},
		// right (x = 0.5)
		{Pos: mgl32.Vec3{0.5, 0.5, -0.5}, Color: mgl32.Vec3{1, 0, 0.5}, TexCoord: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec3{0.5, -0.5, -0.5}, Color: mgl32.Vec3{0, 1, 1}, TexCoord: mgl32.Vec2{1, 0}},
		{Pos: mgl32.Vec3{0.5, -0.5, 0.5}, Color: mgl32.Vec3{0, 1, 0}, TexCoord: mgl32.Vec2{0, 0}},
		{Pos: mgl32.Vec3{0.5, 0.5, 0.5}, Color: mgl32.Vec3{1, 0, 0}, TexCoord: mgl32.Vec2{0, 1}},
		// left (x = -0.5)
		{Pos: mgl32.Vec3{-0.5, 0.5, 0.5}, Color: mgl32.Vec3{1, 1, 0}, TexCoord: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec3{-0.5, -0.5, 0.5}, Color: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{1, 0}},
		{Pos: mgl32.Vec3{-0.5, -0.5, -0.5}, Color: mgl32.Vec3{1, 0, 1}, TexCoord: mgl32.Vec2{0, 0}},
		{Pos: mgl32.Vec3{-0.5, 0.5, -0.5}, Color: mgl32.Vec3{1, 0.5, 0}, TexCoord: mgl32.Vec2{0, 1}},
	}

	// two triangles per face, fanned from the face's first vertex
	id := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		b := face * 4
		id = append(id, b, b+1, b+2, b, b+2, b+3)
	}

	return NewMesh(name, v, id)
}
