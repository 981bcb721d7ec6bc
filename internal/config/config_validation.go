// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// `validate` tags and that the selected store backend has a location.
func (cfg *StructuredConfig) validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return fmt.Errorf("%w: %s must satisfy %s %s", ErrInvalidConfig, ve[0].Namespace(), ve[0].Tag(), ve[0].Param())
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch cfg.Storage.Driver {
	case DriverFile:
		if cfg.Storage.File.Path == "" {
			return fmt.Errorf("%w: storage file path is empty", ErrInvalidConfig)
		}
	case DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: sqlite dsn is empty", ErrInvalidConfig)
		}
	}

	return nil
}
