package asset

import (
	"fmt"

	"github.com/g3n/engine/loader/obj"

	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/mesh"
)

// loadOBJ extracts the first object with faces from a Wavefront OBJ
// file. Faces with more than three corners are fan-triangulated.
func loadOBJ(path string) (*mesh.Data, error) {
	dec, err := obj.Decode(path, "")
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	for i := range dec.Objects {
		object := &dec.Objects[i]
		if len(object.Faces) == 0 {
			continue
		}
		data, err := buildObjectMesh(dec, object)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		if data != nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("loading %s: %w", path, ErrNoMesh)
}

// buildObjectMesh converts one OBJ object into mesh data. The decoder
// keeps a single vertex pool shared by all objects in the file, so
// vertices are remapped to a compact list holding only the ones this
// object references. Returns nil data when the object has no whole
// triangles.
func buildObjectMesh(dec *obj.Decoder, object *obj.Object) (*mesh.Data, error) {
	data := &mesh.Data{}
	remap := make(map[int]uint32)

	mapVertex := func(vi int) (uint32, error) {
		if idx, ok := remap[vi]; ok {
			return idx, nil
		}
		if vi < 0 || (vi+1)*3 > len(dec.Vertices) {
			return 0, fmt.Errorf("vertex index %d out of range", vi)
		}
		idx := uint32(len(data.Vertices))
		data.Vertices = append(data.Vertices, mesh.Vertex{
			X: dec.Vertices[vi*3],
			Y: dec.Vertices[vi*3+1],
			Z: dec.Vertices[vi*3+2],
		})
		remap[vi] = idx
		return idx, nil
	}

	for _, face := range object.Faces {
		if len(face.Vertices) < 3 {
			continue
		}
		// Fan-triangulate: (0,1,2), (0,2,3), ... preserves winding.
		for k := 1; k+1 < len(face.Vertices); k++ {
			for _, vi := range [3]int{face.Vertices[0], face.Vertices[k], face.Vertices[k+1]} {
				idx, err := mapVertex(vi)
				if err != nil {
					return nil, err
				}
				data.Indices = append(data.Indices, idx)
			}
		}
	}

	if len(data.Indices) == 0 {
		return nil, nil
	}
	return data, nil
}
