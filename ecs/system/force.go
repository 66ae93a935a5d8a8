package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/common"
	"github.com/milk9111/lightshow/ecs"
	"github.com/milk9111/lightshow/ecs/component"
)

// forcePointBodyMass stands in for the body's mass when a force point pulls
// on it, so force-point acceleration does not depend on body size.
const forcePointBodyMass = 1.0

// ForceSystem applies constant gravity, body-body gravity and force points to
// every free body's velocity.
type ForceSystem struct{}

func NewForceSystem() *ForceSystem {
	return &ForceSystem{}
}

func (s *ForceSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	settings, ok := settingsOf(w)
	if !ok {
		return
	}

	// Sources include pinned bodies; receivers do not.
	srcEnts, sources := ecs.Collect(w, component.BodyComponent)
	_, points := ecs.Collect(w, component.ForcePointComponent)
	ents, bodies := freeBodies(w)

	for i := range bodies {
		b := &bodies[i]
		b.Velocity.Y += settings.GravityY

		if settings.MutualGravity {
			for j, other := range sources {
				if srcEnts[j] == ents[i] {
					continue
				}
				b.Velocity = b.Velocity.Add(BodyPull(*b, other, settings.G))
			}
		}
		for _, fp := range points {
			b.Velocity = b.Velocity.Add(ForcePointPull(*b, fp, settings.G))
		}
	}

	storeBodies(w, ents, bodies)
}

// BodyPull returns the velocity change body a receives from body b in one
// tick. Bodies that touch or overlap exert nothing.
func BodyPull(a, b component.Body, g float64) cp.Vector {
	force, angle, ok := inverseSquare(a.Position, b.Position, a.Radius+b.Radius, g*a.Mass*b.Mass)
	if !ok {
		return cp.Vector{}
	}
	return common.Polar(force, angle).Mult(1 / a.Mass)
}

// ForcePointPull returns the velocity change a body receives from a force
// point in one tick. Negative strengths push.
func ForcePointPull(a component.Body, p component.ForcePoint, g float64) cp.Vector {
	force, angle, ok := inverseSquare(a.Position, p.Position, a.Radius+p.Radius, g*forcePointBodyMass*p.Mass*p.Strength)
	if !ok {
		return cp.Vector{}
	}
	return common.Polar(force, angle).Mult(1 / forcePointBodyMass)
}

// inverseSquare returns numerator/dist^2 and the direction from -> to. It
// reports false when the two discs touch, which also covers dist == 0.
func inverseSquare(from, to cp.Vector, contact, numerator float64) (float64, float64, bool) {
	d := to.Sub(from)
	distSq := d.LengthSq()
	if distSq <= contact*contact {
		return 0, 0, false
	}
	return numerator / distSq, math.Atan2(d.Y, d.X), true
}
