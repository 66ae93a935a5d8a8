package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/ecs"
	"github.com/milk9111/lightshow/ecs/component"
)

// fallbackNormal separates bodies whose centres coincide exactly.
var fallbackNormal = cp.Vector{X: 1, Y: 0}

// Contact describes one overlapping pair after ResolveCollision ran.
type Contact struct {
	// Normal points from the first body to the second.
	Normal cp.Vector
	// Depth is the penetration removed by the positional correction.
	Depth float64
	// Impact is |v1 - v2| before the impulse.
	Impact float64
	// Resolved is true when an impulse was exchanged. Pairs whose centres
	// coincide only get pushed apart.
	Resolved bool
}

// CollisionSystem resolves every overlapping pair of free bodies once per
// tick and publishes a CollisionEvent for each overlapping pair.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	settings, ok := settingsOf(w)
	if !ok || !settings.ParticleCollisions {
		return
	}

	ents, bodies := freeBodies(w)
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := &bodies[i], &bodies[j]
			if !cp.NewBBForCircle(a.Position, a.Radius).Intersects(cp.NewBBForCircle(b.Position, b.Radius)) {
				continue
			}
			contact, ok := ResolveCollision(a, b, settings.Restitution)
			if !ok {
				continue
			}
			ClampToBounds(a, settings.Width, settings.Height)
			ClampToBounds(b, settings.Width, settings.Height)
			w.Events().Push(ecs.Event{
				Type: ecs.EventCollision,
				Data: ecs.CollisionEvent{A: ents[i], B: ents[j], Point: a.Position, Impact: contact.Impact},
			})
		}
	}
	storeBodies(w, ents, bodies)
}

// ResolveCollision separates two overlapping discs symmetrically along the
// contact normal and exchanges an impulse scaled by restitution. The impulse
// is applied to every overlapping pair, including one that is already
// separating. Momentum is conserved for any restitution; kinetic energy does
// not grow for restitution in [0, 1]. It reports false when the discs do not
// overlap.
func ResolveCollision(a, b *component.Body, restitution float64) (Contact, bool) {
	d := b.Position.Sub(a.Position)
	dist := d.Length()
	sum := a.Radius + b.Radius
	if dist >= sum {
		return Contact{}, false
	}

	if dist == 0 {
		half := fallbackNormal.Mult(sum / 2)
		impact := a.Velocity.Sub(b.Velocity).Length()
		a.Position = a.Position.Sub(half)
		b.Position = b.Position.Add(half)
		return Contact{Normal: fallbackNormal, Depth: sum, Impact: impact}, true
	}

	n := d.Mult(1 / dist)
	overlap := 0.5 * (dist - sum)
	a.Position = a.Position.Add(n.Mult(overlap))
	b.Position = b.Position.Sub(n.Mult(overlap))

	rel := a.Velocity.Sub(b.Velocity)
	p := 2 * rel.Dot(n) / (a.Mass + b.Mass)
	a.Velocity = a.Velocity.Sub(n.Mult(p * b.Mass * restitution))
	b.Velocity = b.Velocity.Add(n.Mult(p * a.Mass * restitution))
	return Contact{Normal: n, Depth: -2 * overlap, Impact: rel.Length(), Resolved: true}, true
}
