package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Lerp interpolates from a to b by t.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Finite reports whether v has no NaN or infinite component.
func Finite(v cp.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Polar returns the vector of length mag pointing at angle (radians).
func Polar(mag, angle float64) cp.Vector {
	return cp.Vector{X: mag * math.Cos(angle), Y: mag * math.Sin(angle)}
}

// RadiusForMass inverts the sandbox sizing rule r = 2*sqrt(m/pi).
func RadiusForMass(m float64) float64 {
	if m <= 0 {
		return 0
	}
	return 2 * math.Sqrt(m/math.Pi)
}
