package validators

import "errors"

var (
	// ErrUnsupportedType is returned when Validate receives a value it has no
	// rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when a field scope names a field the value
	// does not have.
	ErrUnknownField = errors.New("unknown field for validation")
)
