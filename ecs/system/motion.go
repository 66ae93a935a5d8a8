package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/ecs"
	"github.com/milk9111/lightshow/ecs/component"
)

// MotionSystem integrates free bodies (pos += vel, one tick per frame) and
// reflects them off the bounds.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	settings, ok := settingsOf(w)
	if !ok {
		return
	}

	ents, bodies := freeBodies(w)
	for i := range bodies {
		b := &bodies[i]
		b.Position = b.Position.Add(b.Velocity)
		Bounce(b, settings.Width, settings.Height, settings.Restitution)
	}
	storeBodies(w, ents, bodies)
}

// Bounce reflects and damps each velocity component whose axis left
// [0, bound], then clamps the body back inside. It reports whether a wall
// was hit.
func Bounce(b *component.Body, width, height, restitution float64) bool {
	hit := false
	if b.Position.X+b.Radius > width || b.Position.X-b.Radius < 0 {
		b.Velocity.X = -b.Velocity.X * restitution
		hit = true
	}
	if b.Position.Y+b.Radius > height || b.Position.Y-b.Radius < 0 {
		b.Velocity.Y = -b.Velocity.Y * restitution
		hit = true
	}
	ClampToBounds(b, width, height)
	return hit
}

// ClampToBounds moves b into [r, bound-r] on both axes.
func ClampToBounds(b *component.Body, width, height float64) {
	b.Position = cp.Vector{
		X: cp.Clamp(b.Position.X, b.Radius, width-b.Radius),
		Y: cp.Clamp(b.Position.Y, b.Radius, height-b.Radius),
	}
}
