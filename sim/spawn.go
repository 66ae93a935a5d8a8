package sim

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/common"
	"github.com/milk9111/lightshow/ecs/component"
	"github.com/milk9111/lightshow/ecs/system"
)

// BodyOptions tweaks a spawned body.
type BodyOptions struct {
	// Pinned bodies never move or collide but still attract when mutual
	// gravity is on.
	Pinned bool
	// Mass overrides the radius-derived mass when positive.
	Mass float64
}

// MassForRadius is the single place body mass is derived: factor * r^2.
func MassForRadius(radius, factor float64) float64 {
	return factor * radius * radius
}

// NewForcePoint derives radius (|strength|/5) and mass (radius*20) from
// strength.
func NewForcePoint(pos cp.Vector, strength float64) (component.ForcePoint, error) {
	if strength == 0 || !finite(strength) {
		return component.ForcePoint{}, fmt.Errorf("sim: force point strength %v: %w", strength, ErrInvalidStrength)
	}
	if !common.Finite(pos) {
		return component.ForcePoint{}, fmt.Errorf("sim: force point at %v: %w", pos, ErrOutOfBounds)
	}
	radius := math.Abs(strength) / 5
	return component.ForcePoint{
		Position: pos,
		Strength: strength,
		Radius:   radius,
		Mass:     radius * 20,
	}, nil
}

// NewBody validates the spawn request against p and builds the component.
func NewBody(p Params, pos, vel cp.Vector, radius float64, c color.NRGBA, opts BodyOptions) (component.Body, error) {
	if !positive(radius) {
		return component.Body{}, fmt.Errorf("sim: body radius %v: %w", radius, ErrInvalidRadius)
	}
	if 2*radius > p.Width || 2*radius > p.Height {
		return component.Body{}, fmt.Errorf("sim: body radius %v does not fit %vx%v: %w", radius, p.Width, p.Height, ErrInvalidRadius)
	}
	if !common.Finite(pos) || pos.X < 0 || pos.Y < 0 || pos.X > p.Width || pos.Y > p.Height {
		return component.Body{}, fmt.Errorf("sim: body at %v: %w", pos, ErrOutOfBounds)
	}
	if !common.Finite(vel) {
		return component.Body{}, fmt.Errorf("sim: body velocity %v: %w", vel, ErrInvalidParams)
	}

	mass := MassForRadius(radius, p.MassFactor)
	if opts.Mass != 0 {
		if !positive(opts.Mass) {
			return component.Body{}, fmt.Errorf("sim: body mass %v: %w", opts.Mass, ErrInvalidMass)
		}
		mass = opts.Mass
	}
	if !positive(mass) {
		return component.Body{}, fmt.Errorf("sim: body mass %v: %w", mass, ErrInvalidMass)
	}
	if opts.Pinned {
		vel = cp.Vector{}
	}

	b := component.Body{
		Position: pos,
		Velocity: vel,
		Radius:   radius,
		Mass:     mass,
		Color:    c,
	}
	// Spawns on the edge start inside, like after a wall contact.
	system.ClampToBounds(&b, p.Width, p.Height)
	return b, nil
}
