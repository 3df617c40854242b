// Package asset loads triangulated meshes from model files.
package asset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/mesh"
)

// ErrNoMesh is returned when a model file contains no sub-mesh with
// triangle geometry.
var ErrNoMesh = errors.New("no mesh geometry found")

// Options controls how assets are imported.
type Options struct {
	// FlipUVs mirrors texture coordinates vertically for formats
	// whose UV origin is top-left. Vertex positions are unaffected,
	// so wireframe rendering looks the same either way.
	FlipUVs bool
}

// Load reads the model at path and extracts its first sub-mesh as
// vertex and index lists. The format is chosen by file extension:
// Wavefront OBJ (.obj) and glTF 2.0 (.gltf, .glb) are supported. The
// names "triangle" and "cube" return built-in meshes without touching
// the filesystem.
func Load(path string, opts Options) (*mesh.Data, error) {
	switch path {
	case "triangle":
		return mesh.Triangle(), nil
	case "cube":
		return mesh.Cube(), nil
	}

	var (
		data *mesh.Data
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		data, err = loadOBJ(path)
	case ".gltf", ".glb":
		data, err = loadGLTF(path)
	default:
		return nil, fmt.Errorf("unsupported model format %q", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return data, nil
}
