package component

import "github.com/jakecoffman/cp"

// ForcePoint is a stationary inverse-square source. Positive strength
// attracts, negative repels. Radius and Mass are derived from Strength when
// the point is placed and never change afterwards.
type ForcePoint struct {
	Position cp.Vector
	Strength float64
	Radius   float64
	Mass     float64
}

// Attractor reports whether the point pulls bodies in.
func (f ForcePoint) Attractor() bool {
	return f.Strength > 0
}

var ForcePointComponent = NewComponent[ForcePoint]()
