package physics

import "errors"

var (
	ErrZeroDirection   = errors.New("physics: zero direction vector")
	ErrInvalidCardinal = errors.New("physics: invalid cardinal")
	ErrZeroLengthRay   = errors.New("physics: ray length must be positive")
	ErrInvalidHalfSize = errors.New("physics: half size must be positive")
	ErrEmptyComposite  = errors.New("physics: composite has no parts")
	ErrNilShape        = errors.New("physics: shape is nil")
)
