package viewer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/csulb-cecs449-2025sp/modern-3d-template/internal/engine/transform"
)

// Object is a mesh instance placed in the scene.
type Object struct {
	Position    mgl32.Vec3
	Orientation mgl32.Vec3
	Scale       mgl32.Vec3
}

// ModelMatrix composes the object's current model matrix.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	return transform.Model(o.Position, o.Orientation, o.Scale)
}

// Animation spins and drifts an object by fixed per-frame increments.
// The increments are per frame, not per second, so apparent speed
// tracks the display refresh rate.
type Animation struct {
	SpinY  float32
	DriftZ float32
}

// Step advances the object by one frame.
func (a Animation) Step(obj *Object) {
	obj.Orientation[1] += a.SpinY
	obj.Position[2] += a.DriftZ
}
