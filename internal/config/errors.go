package config

import "errors"

// ErrInvalidConfig is returned by [GetStructuredConfig] when the merged
// configuration breaks a rule.
var ErrInvalidConfig = errors.New("invalid configuration")
