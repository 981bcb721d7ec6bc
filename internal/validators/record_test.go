package validators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() models.User {
	return models.User{
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: "abcdef0123",
		PasswordSalt: "00ff",
		CreatedAt:    time.Now(),
		Role:         models.RoleUser,
		Status:       models.StatusActive,
	}
}

func validTeam() models.Team {
	return models.Team{
		ID:         "t1",
		Name:       "Ops",
		InviteCode: "ABCD1234",
		CreatedBy:  "alice@example.com",
		Members:    []models.Member{{Email: "alice@example.com", Name: "Alice", Role: models.MemberRoleAdmin}},
		Passwords:  []models.PasswordEntry{{ID: "p1", Title: "db"}},
	}
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)

	var ve *errs.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, field, ve.Field)
	assert.NotEmpty(t, ve.Reason)
}

func TestRecordValidator_User(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validUser()))
	u := validUser()
	require.NoError(t, v.Validate(ctx, &u))

	tests := []struct {
		name   string
		mutate func(*models.User)
		field  string
	}{
		{name: "missing email", mutate: func(u *models.User) { u.Email = "" }, field: "email"},
		{name: "bad email", mutate: func(u *models.User) { u.Email = "not-an-email" }, field: "email"},
		{name: "missing name", mutate: func(u *models.User) { u.Name = "" }, field: "name"},
		{name: "non-hex hash", mutate: func(u *models.User) { u.PasswordHash = "zzz" }, field: "passwordHash"},
		{name: "missing salt", mutate: func(u *models.User) { u.PasswordSalt = "" }, field: "passwordSalt"},
		{name: "bad role", mutate: func(u *models.User) { u.Role = "root" }, field: "role"},
		{name: "bad status", mutate: func(u *models.User) { u.Status = "banned" }, field: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)
			requireFieldError(t, v.Validate(ctx, u), tt.field)
		})
	}
}

func TestRecordValidator_FieldScope(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	// registration input has no hash yet
	u := models.User{Email: "bob@example.com", Name: "Bob"}
	assert.NoError(t, v.Validate(ctx, u, FieldEmail, FieldName))

	u.Email = "bob"
	requireFieldError(t, v.Validate(ctx, u, FieldEmail, FieldName), "email")

	err := v.Validate(ctx, u, "Nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRecordValidator_PasswordEntry(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PasswordEntry{ID: "1", Title: "GitHub"}))
	requireFieldError(t, v.Validate(ctx, models.PasswordEntry{ID: "1"}), "title")
	requireFieldError(t, v.Validate(ctx, &models.PasswordEntry{Title: "x"}), "id")
}

func TestRecordValidator_Team(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validTeam()))

	tests := []struct {
		name   string
		mutate func(*models.Team)
		field  string
	}{
		{name: "short invite code", mutate: func(t *models.Team) { t.InviteCode = "ABC" }, field: "inviteCode"},
		{name: "invite code with symbols", mutate: func(t *models.Team) { t.InviteCode = "ABCD-123" }, field: "inviteCode"},
		{name: "member email", mutate: func(t *models.Team) {
			t.Members = append(t.Members, models.Member{Email: "bad", Role: models.MemberRoleMember})
		}, field: "members[1].email"},
		{name: "member role", mutate: func(t *models.Team) { t.Members[0].Role = "owner" }, field: "members[0].role"},
		{name: "team password title", mutate: func(t *models.Team) { t.Passwords[0].Title = "" }, field: "passwords[0].title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := validTeam()
			tt.mutate(&team)
			requireFieldError(t, v.Validate(ctx, team), tt.field)
		})
	}
}

func TestRecordValidator_UnsupportedType(t *testing.T) {
	v := NewRecordValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.Snapshot{}), ErrUnsupportedType)
}
