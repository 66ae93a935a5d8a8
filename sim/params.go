package sim

import (
	"fmt"
	"math"

	"github.com/milk9111/lightshow/ecs/component"
)

// Params are the global simulation parameters.
type Params = component.Settings

const (
	DefaultWidth          = 1280
	DefaultHeight         = 720
	DefaultGravityY       = 0.1
	DefaultG              = 1.0
	DefaultRestitution    = 0.8
	DefaultTrailDecay     = 0.1
	DefaultMassFactor     = 0.1
	DefaultSparkThreshold = 15.0
	DefaultSparkCount     = 10
)

// DefaultParams returns the light-show defaults.
func DefaultParams() Params {
	return Params{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		GravityY:           DefaultGravityY,
		G:                  DefaultG,
		Restitution:        DefaultRestitution,
		TrailDecay:         DefaultTrailDecay,
		MassFactor:         DefaultMassFactor,
		ParticleCollisions: true,
		Effects:            true,
		SparkThreshold:     DefaultSparkThreshold,
		SparkCount:         DefaultSparkCount,
	}
}

// ValidateParams checks p and returns an ErrInvalidParams wrap naming the
// first bad field.
func ValidateParams(p Params) error {
	bad := func(field string, v any) error {
		return fmt.Errorf("%w: %s = %v", ErrInvalidParams, field, v)
	}
	switch {
	case !positive(p.Width):
		return bad("width", p.Width)
	case !positive(p.Height):
		return bad("height", p.Height)
	case !finite(p.GravityY):
		return bad("gravity_y", p.GravityY)
	case !finite(p.G):
		return bad("g", p.G)
	case !finite(p.Restitution) || p.Restitution < 0 || p.Restitution > 1:
		return bad("restitution", p.Restitution)
	case !finite(p.TrailDecay) || p.TrailDecay < 0 || p.TrailDecay > 1:
		return bad("trail_decay", p.TrailDecay)
	case !positive(p.MassFactor):
		return bad("mass_factor", p.MassFactor)
	case !finite(p.SparkThreshold) || p.SparkThreshold < 0:
		return bad("spark_threshold", p.SparkThreshold)
	case p.SparkCount < 0:
		return bad("spark_count", p.SparkCount)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func positive(f float64) bool {
	return finite(f) && f > 0
}
