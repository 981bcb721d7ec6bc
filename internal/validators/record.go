package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
// They are the Go field names of the model structs.
const (
	FieldEmail        = "Email"
	FieldName         = "Name"
	FieldPasswordHash = "PasswordHash"
	FieldRole         = "Role"
	FieldStatus       = "Status"

	FieldID         = "ID"
	FieldTitle      = "Title"
	FieldInviteCode = "InviteCode"
	FieldCreatedBy  = "CreatedBy"
	FieldMembers    = "Members"
	FieldPasswords  = "Passwords"
)

// RecordValidator validates the vault's record types (users, password
// entries, teams and members) against their struct tags.
type RecordValidator struct {
	v *validator.Validate
}

// NewRecordValidator returns a RecordValidator. Field errors are reported by
// their JSON names, so they line up with what the user typed or what a
// snapshot file contains.
func NewRecordValidator() *RecordValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &RecordValidator{v: v}
}

// Validate implements [Validator]. When fields are given only those fields
// are checked.
func (r *RecordValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value := value.(type) {
	case models.User, *models.User,
		models.PasswordEntry, *models.PasswordEntry,
		models.Team, *models.Team,
		models.Member, *models.Member:
		return r.validateStruct(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (r *RecordValidator) validateStruct(value any, fields ...string) error {
	if len(fields) > 0 {
		t := reflect.Indirect(reflect.ValueOf(value)).Type()
		for _, f := range fields {
			if _, ok := t.FieldByName(f); !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
	}

	var err error
	if len(fields) > 0 {
		err = r.v.StructPartial(value, fields...)
	} else {
		err = r.v.Struct(value)
	}
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return toValidationError(ve[0])
	}
	return errs.NewValidationError("", err.Error())
}

// toValidationError converts a single FieldError into the shared error type.
// The field is reported by its namespace without the root type, e.g.
// "members[1].email".
func toValidationError(fe validator.FieldError) *errs.ValidationError {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	var reason string
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "email":
		reason = "must be a valid email"
	case "len":
		reason = fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		reason = fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		reason = fmt.Sprintf("must be one of: %s", fe.Param())
	case "alphanum":
		reason = "must contain only letters and digits"
	case "hexadecimal":
		reason = "must be hexadecimal"
	default:
		reason = fmt.Sprintf("failed validation (%s)", fe.Tag())
	}

	return errs.NewValidationError(field, reason)
}
