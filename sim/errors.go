package sim

import "errors"

var (
	ErrInvalidRadius   = errors.New("sim: radius must be positive and finite")
	ErrInvalidMass     = errors.New("sim: mass must be positive and finite")
	ErrInvalidStrength = errors.New("sim: strength must be non-zero and finite")
	ErrOutOfBounds     = errors.New("sim: position outside the simulation bounds")
	ErrInvalidParams   = errors.New("sim: invalid parameters")
)
