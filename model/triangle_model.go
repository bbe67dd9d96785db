package model

// NewTriangleMesh returns a small position-only triangle given directly in normalized device coordinates. It sits
// in the top right corner of the viewport and is drawn without any transformation.
func NewTriangleMesh(name string) *Mesh {
	p := []float32{
		0.9, 0.9, 0.0,
		0.7, 0.9, 0.0,
		0.8, 0.7, 0.0,
	}
	id := []uint32{0, 1, 2}
	return NewPositionMesh(name, p, id)
}
