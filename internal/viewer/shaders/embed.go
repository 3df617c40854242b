// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WireframeVertexShader is the vertex shader for wireframe mesh rendering.
//
//go:embed wireframe.vert
var WireframeVertexShader string

// WireframeFragmentShader is the fragment shader for wireframe mesh rendering.
//
//go:embed wireframe.frag
var WireframeFragmentShader string
