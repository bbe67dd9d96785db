package model

import (
	"testing"
)

// TestSceneMeshes confirms vertex and index counts of the three fixed meshes
func TestSceneMeshes(t *testing.T) {
	tests := []struct {
		mesh     *Mesh
		vertices int
		indices  int32
		stride   int32
	}{
		{NewCubeMesh("cube"), 24, 36, 32},
		{NewPyramidMesh("pyramid"), 12, 12, 32},
		{NewTriangleMesh("triangle"), 3, 3, 12},
	}
	for _, tt := range tests {
		if err := tt.mesh.Validate(); err != nil {
			t.Errorf("Mesh %s is invalid: %s", tt.mesh.Name, err)
		}
		if tt.mesh.VertexCount() != tt.vertices {
			t.Errorf("Mesh %s should have %d vertices but has %d", tt.mesh.Name, tt.vertices, tt.mesh.VertexCount())
		}
		if tt.mesh.IndexCount() != tt.indices {
			t.Errorf("Mesh %s should have %d indices but has %d", tt.mesh.Name, tt.indices, tt.mesh.IndexCount())
		}
		if tt.mesh.Stride != tt.stride {
			t.Errorf("Mesh %s should have stride %d but has %d", tt.mesh.Name, tt.stride, tt.mesh.Stride)
		}
		if tt.mesh.GetIdxBufferSize() != int(tt.indices)*4 {
			t.Errorf("Mesh %s index buffer size should be %d Byte but is %d", tt.mesh.Name, tt.indices*4, tt.mesh.GetIdxBufferSize())
		}
	}
}

func TestVertexLayout(t *testing.T) {
	if VertexStride() != 32 {
		t.Fatalf("Vertex should be tightly packed into 32 Byte, got %d", VertexStride())
	}
	attrs := GetVertexAttributes()
	want := []Attribute{
		{Location: 0, Size: 3, Offset: 0},
		{Location: 1, Size: 3, Offset: 12},
		{Location: 2, Size: 2, Offset: 24},
	}
	if len(attrs) != len(want) {
		t.Fatalf("Expected %d attributes, got %d", len(want), len(attrs))
	}
	for i := range want {
		if attrs[i] != want[i] {
			t.Errorf("Attribute %d should be %+v but is %+v", i, want[i], attrs[i])
		}
	}
}

// TestFlatten checks that interleaving keeps the pos/color/uv order of the shader inputs
func TestFlatten(t *testing.T) {
	m := NewCubeMesh("cube")
	first := m.Vertices[:8]
	want := []float32{0.5, 0.5, 0.5, 1, 0, 0, 1, 1}
	for i := range want {
		if first[i] != want[i] {
			t.Errorf("Interleaved value %d should be %f but is %f", i, want[i], first[i])
		}
	}
}

func TestValidateRejectsOutOfRangeIndex(t *testing.T) {
	m := NewTriangleMesh("triangle")
	m.Indices = []uint32{0, 1, 3}
	if err := m.Validate(); err == nil {
		t.Errorf("Index 3 should be rejected for a 3 vertex mesh")
	}
}
