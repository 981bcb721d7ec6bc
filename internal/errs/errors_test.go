package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_IsValidation(t *testing.T) {
	err := fmt.Errorf("register: %w", NewValidationError("email", "must be a valid email address"))

	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrAuth)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)
	assert.Contains(t, err.Error(), "must be a valid email address")
}

func TestValidationError_NoField(t *testing.T) {
	err := NewValidationError("", "nothing to save")
	assert.Equal(t, "validation failed: nothing to save", err.Error())
}

func TestSnapshotError_UnwrapsKindAndCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewSnapshotError("malformed JSON", cause)

	assert.ErrorIs(t, err, ErrInvalidSnapshot)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "malformed JSON")
}

func TestAccountDisabled_IsAuth(t *testing.T) {
	assert.ErrorIs(t, ErrAccountDisabled, ErrAuth)
}
