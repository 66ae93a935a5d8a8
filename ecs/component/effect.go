package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

const (
	ShockwaveStartRadius = 5.0
	ShockwaveGrowth      = 1.0
	ShockwaveDecay       = 0.04

	SparkDecay    = 0.05
	SparkMaxSpeed = 4.0
)

// Effect is a transient visual left behind by a collision. The set of
// implementations is closed: *Shockwave and *Spark.
type Effect interface {
	Alive() bool
	isEffect()
}

// Shockwave is an expanding ring.
type Shockwave struct {
	Position  cp.Vector
	Radius    float64
	MaxRadius float64
	Color     color.NRGBA
	Life      float64
}

func NewShockwave(pos cp.Vector, maxRadius float64, c color.NRGBA) *Shockwave {
	return &Shockwave{
		Position:  pos,
		Radius:    ShockwaveStartRadius,
		MaxRadius: maxRadius,
		Color:     c,
		Life:      1,
	}
}

func (s *Shockwave) Alive() bool { return s != nil && s.Life > 0 }
func (*Shockwave) isEffect()     {}

// Spark is a small dot flying away from an impact.
type Spark struct {
	Position cp.Vector
	Velocity cp.Vector
	Color    color.NRGBA
	Life     float64
}

func NewSpark(pos, vel cp.Vector, c color.NRGBA) *Spark {
	return &Spark{Position: pos, Velocity: vel, Color: c, Life: 1}
}

func (s *Spark) Alive() bool { return s != nil && s.Life > 0 }
func (*Spark) isEffect()     {}

var EffectComponent = NewComponent[Effect]()
