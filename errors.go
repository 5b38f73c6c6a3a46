package measure

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor or clamp is given
	// bounds that violate its invariant (negative arc size, max < min).
	ErrInvalidArgument = errors.New("measure: invalid argument")

	// ErrUnrecognizedUnit is returned when a unit enum value or unit name
	// is outside the known set for its quantity.
	ErrUnrecognizedUnit = errors.New("measure: unrecognized unit")
)
