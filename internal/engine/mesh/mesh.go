// Package mesh defines the CPU-side triangle mesh representation.
package mesh

import "fmt"

// Vertex is a single mesh vertex: three contiguous 32-bit floats with
// no padding, matching the GPU attribute layout exactly.
type Vertex struct {
	X, Y, Z float32
}

// Data holds a triangulated mesh before it is uploaded to the GPU.
// Vertices are referenced by the Indices list, three indices per
// triangle, in the winding order of the source asset.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (d *Data) TriangleCount() int {
	return len(d.Indices) / 3
}

// Validate checks that the mesh is non-empty, that the index list
// describes whole triangles, and that every index references an
// existing vertex.
func (d *Data) Validate() error {
	if len(d.Vertices) == 0 {
		return fmt.Errorf("mesh has no vertices")
	}
	if len(d.Indices) == 0 {
		return fmt.Errorf("mesh has no indices")
	}
	if len(d.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(d.Indices))
	}
	for i, idx := range d.Indices {
		if int(idx) >= len(d.Vertices) {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, len(d.Vertices))
		}
	}
	return nil
}
