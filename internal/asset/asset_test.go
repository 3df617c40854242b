package asset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/mesh"
)

const cubeOBJ = `# unit cube
o Cube
v -0.5 -0.5 0.5
v 0.5 -0.5 0.5
v 0.5 0.5 0.5
v -0.5 0.5 0.5
v -0.5 -0.5 -0.5
v 0.5 -0.5 -0.5
v 0.5 0.5 -0.5
v -0.5 0.5 -0.5
f 1 2 3 4
f 2 6 7 3
f 6 5 8 7
f 5 1 4 8
f 4 3 7 8
f 5 6 2 1
`

const triangleOBJ = `o Tri
v -0.5 -0.5 0
v -0.5 0.5 0
v 0.5 0.5 0
f 3 2 1
`

const pointsOBJ = `o Points
v 0 0 0
v 1 0 0
v 0 1 0
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

func TestLoadOBJCube(t *testing.T) {
	path := writeFixture(t, "cube.obj", cubeOBJ)

	data, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Six quad faces fan-triangulate into 12 triangles.
	if len(data.Vertices) != 8 {
		t.Errorf("cube vertices = %d, want 8", len(data.Vertices))
	}
	if len(data.Indices) != 36 {
		t.Errorf("cube indices = %d, want 36", len(data.Indices))
	}
	if data.TriangleCount() != 12 {
		t.Errorf("cube triangles = %d, want 12", data.TriangleCount())
	}
	for i, idx := range data.Indices {
		if idx >= 8 {
			t.Fatalf("index %d at position %d out of range", idx, i)
		}
	}
}

func TestLoadOBJTriangle(t *testing.T) {
	path := writeFixture(t, "tri.obj", triangleOBJ)

	data, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(data.Vertices) != 3 || len(data.Indices) != 3 {
		t.Errorf("triangle mesh = %d vertices / %d indices, want 3/3", len(data.Vertices), len(data.Indices))
	}
}

func TestLoadOBJWindingPreserved(t *testing.T) {
	path := writeFixture(t, "tri.obj", triangleOBJ)

	data, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// The face is "f 3 2 1": the first emitted vertex must be the
	// third one in the file.
	want := mesh.Vertex{X: 0.5, Y: 0.5, Z: 0}
	if data.Vertices[data.Indices[0]] != want {
		t.Errorf("first corner = %v, want %v", data.Vertices[data.Indices[0]], want)
	}
}

func TestLoadOBJNoFaces(t *testing.T) {
	path := writeFixture(t, "points.obj", pointsOBJ)

	_, err := Load(path, Options{})
	if !errors.Is(err, ErrNoMesh) {
		t.Errorf("Load() error = %v, want ErrNoMesh", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.obj"), Options{})
	if err == nil {
		t.Error("Load() of missing file succeeded, want error")
	}
	if errors.Is(err, ErrNoMesh) {
		t.Error("missing file reported as ErrNoMesh")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFixture(t, "model.fbx", "not a real model")

	_, err := Load(path, Options{})
	if err == nil {
		t.Error("Load() of unsupported format succeeded, want error")
	}
}

func TestLoadBuiltins(t *testing.T) {
	cube, err := Load("cube", Options{})
	if err != nil {
		t.Fatalf("Load(cube) error: %v", err)
	}
	if len(cube.Vertices) != 8 || len(cube.Indices) != 36 {
		t.Errorf("builtin cube = %d vertices / %d indices, want 8/36", len(cube.Vertices), len(cube.Indices))
	}

	tri, err := Load("triangle", Options{})
	if err != nil {
		t.Fatalf("Load(triangle) error: %v", err)
	}
	if tri.TriangleCount() != 1 {
		t.Errorf("builtin triangle = %d triangles, want 1", tri.TriangleCount())
	}
}

func writeGLB(t *testing.T, name string, positions [][3]float32, indices []uint32, mode gltf.PrimitiveMode) string {
	t.Helper()

	doc := gltf.NewDocument()
	prim := &gltf.Primitive{
		Mode: mode,
		Attributes: gltf.PrimitiveAttributes{
			gltf.POSITION: modeler.WritePosition(doc, positions),
		},
	}
	if indices != nil {
		prim.Indices = gltf.Index(modeler.WriteIndices(doc, indices))
	}
	doc.Meshes = []*gltf.Mesh{{Name: name, Primitives: []*gltf.Primitive{prim}}}

	path := filepath.Join(t.TempDir(), name+".glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

func cubePositions() [][3]float32 {
	cube := mesh.Cube()
	positions := make([][3]float32, len(cube.Vertices))
	for i, v := range cube.Vertices {
		positions[i] = [3]float32{v.X, v.Y, v.Z}
	}
	return positions
}

func TestLoadGLBCube(t *testing.T) {
	path := writeGLB(t, "cube", cubePositions(), mesh.Cube().Indices, gltf.PrimitiveTriangles)

	data, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(data.Vertices) != 8 {
		t.Errorf("cube vertices = %d, want 8", len(data.Vertices))
	}
	if len(data.Indices) != 36 {
		t.Errorf("cube indices = %d, want 36", len(data.Indices))
	}

	// Positions survive the round trip.
	want := mesh.Cube().Vertices[0]
	if data.Vertices[0] != want {
		t.Errorf("vertex 0 = %v, want %v", data.Vertices[0], want)
	}
}

func TestLoadGLBUnindexed(t *testing.T) {
	positions := [][3]float32{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0, 0.5, 0}}
	path := writeGLB(t, "tri", positions, nil, gltf.PrimitiveTriangles)

	data, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(data.Indices) != 3 {
		t.Fatalf("unindexed triangle indices = %d, want 3", len(data.Indices))
	}
	for i, idx := range data.Indices {
		if idx != uint32(i) {
			t.Errorf("index %d = %d, want sequential", i, idx)
		}
	}
}

func TestLoadGLBNoTrianglePrimitives(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	path := writeGLB(t, "points", positions, nil, gltf.PrimitivePoints)

	_, err := Load(path, Options{})
	if !errors.Is(err, ErrNoMesh) {
		t.Errorf("Load() error = %v, want ErrNoMesh", err)
	}
}

// A document whose POSITION attribute names an accessor the file does
// not define. The accessor table is empty on purpose.
const badAccessorGLTF = `{
  "asset": {"version": "2.0"},
  "meshes": [{"primitives": [{"attributes": {"POSITION": 7}}]}],
  "accessors": []
}`

func TestLoadGLTFPositionAccessorOutOfRange(t *testing.T) {
	path := writeFixture(t, "bad.gltf", badAccessorGLTF)

	_, err := Load(path, Options{})
	if err == nil {
		t.Fatal("Load() of corrupt glTF succeeded, want error")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("Load() error = %v, want accessor range error", err)
	}
}

func TestLoadGLBIndexAccessorOutOfRange(t *testing.T) {
	doc := gltf.NewDocument()
	prim := &gltf.Primitive{
		Mode: gltf.PrimitiveTriangles,
		Attributes: gltf.PrimitiveAttributes{
			gltf.POSITION: modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}),
		},
		Indices: gltf.Index(99),
	}
	doc.Meshes = []*gltf.Mesh{{Name: "bad", Primitives: []*gltf.Primitive{prim}}}

	path := filepath.Join(t.TempDir(), "bad.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}

	_, err := Load(path, Options{})
	if err == nil {
		t.Fatal("Load() with out-of-range index accessor succeeded, want error")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("Load() error = %v, want accessor range error", err)
	}
}
