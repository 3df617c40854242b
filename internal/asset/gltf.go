package asset

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/mesh"
)

// loadGLTF extracts the first triangle primitive from a glTF or GLB
// file. Primitives with other topologies are skipped.
func loadGLTF(path string) (*mesh.Data, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			data, err := readPrimitive(doc, prim, posIdx)
			if err != nil {
				return nil, fmt.Errorf("decoding %s: %w", path, err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("loading %s: %w", path, ErrNoMesh)
}

// readPrimitive reads one triangle primitive. Accessor references come
// from the file, so they are range-checked before use.
func readPrimitive(doc *gltf.Document, prim *gltf.Primitive, posIdx int) (*mesh.Data, error) {
	if posIdx < 0 || posIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("position accessor %d out of range", posIdx)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}

	data := &mesh.Data{Vertices: make([]mesh.Vertex, len(positions))}
	for i, p := range positions {
		data.Vertices[i] = mesh.Vertex{X: p[0], Y: p[1], Z: p[2]}
	}

	if prim.Indices != nil {
		idxAcc := *prim.Indices
		if idxAcc < 0 || idxAcc >= len(doc.Accessors) {
			return nil, fmt.Errorf("index accessor %d out of range", idxAcc)
		}
		indices, err := modeler.ReadIndices(doc, doc.Accessors[idxAcc], nil)
		if err != nil {
			return nil, fmt.Errorf("reading indices: %w", err)
		}
		data.Indices = indices
	} else {
		// Unindexed geometry: consecutive vertex triples form triangles.
		data.Indices = make([]uint32, len(positions))
		for i := range data.Indices {
			data.Indices[i] = uint32(i)
		}
	}
	return data, nil
}
