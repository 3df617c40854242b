package mesh

import (
	"testing"
	"unsafe"
)

func TestVertexLayout(t *testing.T) {
	// The renderer uploads []Vertex directly as a GL buffer, so the
	// struct must be exactly three packed float32 components.
	if size := unsafe.Sizeof(Vertex{}); size != 12 {
		t.Errorf("Vertex size = %d bytes, want 12", size)
	}

	var v Vertex
	if off := unsafe.Offsetof(v.X); off != 0 {
		t.Errorf("offset of X = %d, want 0", off)
	}
	if off := unsafe.Offsetof(v.Y); off != 4 {
		t.Errorf("offset of Y = %d, want 4", off)
	}
	if off := unsafe.Offsetof(v.Z); off != 8 {
		t.Errorf("offset of Z = %d, want 8", off)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    Data
		wantErr bool
	}{
		{
			name: "valid triangle",
			data: Data{
				Vertices: []Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
				Indices:  []uint32{0, 1, 2},
			},
			wantErr: false,
		},
		{
			name:    "no vertices",
			data:    Data{Indices: []uint32{0, 1, 2}},
			wantErr: true,
		},
		{
			name: "no indices",
			data: Data{
				Vertices: []Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			},
			wantErr: true,
		},
		{
			name: "partial triangle",
			data: Data{
				Vertices: []Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
				Indices:  []uint32{0, 1, 2, 0},
			},
			wantErr: true,
		},
		{
			name: "index out of range",
			data: Data{
				Vertices: []Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
				Indices:  []uint32{0, 1, 3},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTriangleCount(t *testing.T) {
	d := Data{Indices: make([]uint32, 36)}
	if got := d.TriangleCount(); got != 12 {
		t.Errorf("TriangleCount() = %d, want 12", got)
	}
}

func TestTriangle(t *testing.T) {
	tri := Triangle()

	if err := tri.Validate(); err != nil {
		t.Fatalf("Triangle() is invalid: %v", err)
	}
	if len(tri.Vertices) != 3 {
		t.Errorf("Triangle() has %d vertices, want 3", len(tri.Vertices))
	}
	if tri.TriangleCount() != 1 {
		t.Errorf("Triangle() has %d triangles, want 1", tri.TriangleCount())
	}
}

func TestCube(t *testing.T) {
	cube := Cube()

	if err := cube.Validate(); err != nil {
		t.Fatalf("Cube() is invalid: %v", err)
	}
	if len(cube.Vertices) != 8 {
		t.Errorf("Cube() has %d vertices, want 8", len(cube.Vertices))
	}
	if len(cube.Indices) != 36 {
		t.Errorf("Cube() has %d indices, want 36", len(cube.Indices))
	}
	if cube.TriangleCount() != 12 {
		t.Errorf("Cube() has %d triangles, want 12", cube.TriangleCount())
	}

	// Every vertex should be used by at least one triangle.
	used := make(map[uint32]bool)
	for _, idx := range cube.Indices {
		used[idx] = true
	}
	for i := 0; i < len(cube.Vertices); i++ {
		if !used[uint32(i)] {
			t.Errorf("vertex %d is not referenced by any triangle", i)
		}
	}
}
