package crypto

import "errors"

var (
	// ErrNoPrimitiveAvailable is returned by HashPassword when no primitive in
	// the engine's chain is available.
	ErrNoPrimitiveAvailable = errors.New("no digest primitive available")

	// ErrUnknownAlgorithm is returned at construction time when configuration
	// names a digest primitive or cipher that does not exist.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInvalidArgon2Params is returned when Argon2 parameters are unusable.
	ErrInvalidArgon2Params = errors.New("invalid argon2 parameters")
)
