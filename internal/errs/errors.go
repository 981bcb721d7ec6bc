// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package errs defines the error taxonomy shared by every core package of
// team-vault.
//
// There are exactly four kinds of failure. Each concrete error returned by the
// core wraps one of the sentinel kinds below, so callers classify failures with
// [errors.Is] and never by message text:
//
//	ErrValidation       bad input, rejected with no state change
//	ErrAuth             unknown email, wrong password, disabled account, no access
//	ErrDecryption       wrong passphrase or corrupt bundle (indistinguishable)
//	ErrInvalidSnapshot  malformed snapshot, merge aborted before any write
//
// None of them is fatal: they are values returned to the caller.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the kind of every input-validation failure (bad email,
	// short password, missing field).
	ErrValidation = errors.New("validation failed")

	// ErrAuth is the kind of every authentication or authorization failure.
	// Its message deliberately does not say whether the email or the password
	// was wrong.
	ErrAuth = errors.New("invalid email or password")

	// ErrDecryption is returned verbatim for any decryption failure. It never
	// wraps the underlying cause to avoid acting as a padding/passphrase oracle.
	ErrDecryption = errors.New("decryption failed")

	// ErrInvalidSnapshot is the kind of every structural snapshot failure.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// ErrAccountDisabled is returned by login for accounts with status "disabled".
// It is an [ErrAuth].
var ErrAccountDisabled = fmt.Errorf("%w: account is disabled", ErrAuth)

// ValidationError describes which field was rejected and why.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

// Unwrap makes every *ValidationError match [ErrValidation].
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SnapshotError reports why an incoming snapshot was rejected.
type SnapshotError struct {
	Reason string
	Err    error
}

// NewSnapshotError returns a *SnapshotError. cause may be nil.
func NewSnapshotError(reason string, cause error) *SnapshotError {
	return &SnapshotError{Reason: reason, Err: cause}
}

func (e *SnapshotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrInvalidSnapshot, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidSnapshot, e.Reason)
}

// Unwrap makes every *SnapshotError match [ErrInvalidSnapshot] as well as
// its cause.
func (e *SnapshotError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidSnapshot, e.Err}
	}
	return []error{ErrInvalidSnapshot}
}
