// Package camera provides the camera used for 3D rendering.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/transform"
)

// Camera is a fixed look-at camera with a perspective projection.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	FOV  float32 // Vertical field of view, degrees
	Near float32
	Far  float32
}

// Default returns a camera at the origin looking down -Z.
func Default() Camera {
	return Camera{
		Eye:    mgl32.Vec3{0, 0, 0},
		Target: mgl32.Vec3{0, 0, -1},
		Up:     mgl32.Vec3{0, 1, 0},
		FOV:    45,
		Near:   0.1,
		Far:    100,
	}
}

// View returns the view matrix for this camera.
func (c Camera) View() mgl32.Mat4 {
	return transform.View(c.Eye, c.Target, c.Up)
}

// Projection returns the projection matrix for the given aspect
// ratio. It is recomputed on every call, so a resized viewport is
// reflected in the very next frame.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return transform.Perspective(c.FOV, aspect, c.Near, c.Far)
}
