package tool

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/common"
	"github.com/milk9111/lightshow/ecs"
	"github.com/milk9111/lightshow/prefabs"
	"github.com/milk9111/lightshow/sim"
)

type Tool int

const (
	ToolParticle Tool = iota
	ToolAttractor
	ToolRepulsor
	ToolBlackHole
)

// All lists the tools in panel and hotkey order.
var All = []Tool{ToolParticle, ToolAttractor, ToolRepulsor, ToolBlackHole}

func (t Tool) String() string {
	switch t {
	case ToolParticle:
		return "Particle"
	case ToolAttractor:
		return "Attractor"
	case ToolRepulsor:
		return "Repulsor"
	case ToolBlackHole:
		return "Black hole"
	default:
		return "Unknown"
	}
}

var blackHoleColor = color.NRGBA{A: 0xff}

// clickSpeed is the velocity range of a particle spawned by a plain click
// when the preset disables drag launching.
const clickSpeed = 10.0

// Apply runs t for a mouse drag from start to end. Bodies and force points
// are placed at end; a particle launches with the drag scaled by
// spec.LaunchScale.
func Apply(s *sim.Simulation, t Tool, spec prefabs.ToolSpec, start, end cp.Vector, rng *rand.Rand) (ecs.Entity, error) {
	switch t {
	case ToolParticle:
		radius := spec.MinRadius
		if spec.MaxRadius > spec.MinRadius {
			radius += rng.Float64() * (spec.MaxRadius - spec.MinRadius)
		}
		vel := end.Sub(start).Mult(spec.LaunchScale)
		if spec.LaunchScale == 0 {
			vel = cp.Vector{
				X: (rng.Float64() - 0.5) * clickSpeed,
				Y: (rng.Float64() - 0.5) * clickSpeed,
			}
		}
		c := spec.ParticleColor.ColorOr(common.RandomHue(rng))
		return s.SpawnBody(end, vel, radius, c, sim.BodyOptions{})
	case ToolAttractor:
		return s.PlaceForcePoint(end, spec.ForceStrength)
	case ToolRepulsor:
		return s.PlaceForcePoint(end, -spec.ForceStrength)
	case ToolBlackHole:
		mass := spec.BlackHoleMass
		return s.SpawnBody(end, cp.Vector{}, common.RadiusForMass(mass), blackHoleColor, sim.BodyOptions{
			Pinned: true,
			Mass:   mass,
		})
	default:
		return 0, fmt.Errorf("tool: unknown tool %d", int(t))
	}
}
