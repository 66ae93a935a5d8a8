package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Body is a moving, mass-bearing disc.
type Body struct {
	Position cp.Vector
	Velocity cp.Vector
	Radius   float64
	Mass     float64
	Color    color.NRGBA
}

// Momentum returns m*v.
func (b Body) Momentum() cp.Vector {
	return b.Velocity.Mult(b.Mass)
}

// KineticEnergy returns m*|v|^2/2.
func (b Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * b.Velocity.LengthSq()
}

var BodyComponent = NewComponent[Body]()
