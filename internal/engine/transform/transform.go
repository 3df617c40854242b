// Package transform builds the model, view and projection matrices
// used by the render pipeline. All matrices are column-major,
// right-handed, with OpenGL clip-space conventions.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Model composes an object's model matrix from its position,
// orientation (Euler angles in radians) and scale. Transforms are
// right-multiplied in the fixed order translate, scale, rotate Z,
// rotate X, rotate Y. Reordering the rotations changes the result.
func Model(position, orientation, scale mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	m = m.Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
	m = m.Mul4(mgl32.HomogRotate3DZ(orientation.Z()))
	m = m.Mul4(mgl32.HomogRotate3DX(orientation.X()))
	m = m.Mul4(mgl32.HomogRotate3DY(orientation.Y()))
	return m
}

// View returns the view matrix for a camera at eye looking at target.
func View(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, target, up)
}

// Perspective returns a perspective projection matrix. The field of
// view is the vertical angle in degrees.
func Perspective(fovDeg, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
}
