package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/internal/service"
	"github.com/MKhiriev/team-vault/internal/store"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "bare auth", err: errs.ErrAuth, want: MsgInvalidLoginPassword},
		{name: "disabled", err: errs.ErrAccountDisabled, want: MsgAccountDisabled},
		{name: "admin only wins over auth", err: service.ErrAdminOnly, want: MsgAdminOnly},
		{name: "not a member", err: fmt.Errorf("get team: %w", service.ErrNotTeamMember), want: MsgAccessDenied},
		{name: "email taken", err: service.ErrEmailTaken, want: MsgLoginAlreadyExists},
		{name: "already member", err: service.ErrAlreadyMember, want: MsgAlreadyMember},
		{name: "invite code", err: service.ErrInvalidInviteCode, want: MsgInvalidInviteCode},
		{name: "password not found", err: service.ErrPasswordNotFound, want: MsgDataNotFound},
		{name: "team not found", err: fmt.Errorf("get team: %w", store.ErrTeamNotFound), want: MsgTeamNotFound},
		{name: "user not found", err: fmt.Errorf("user lookup failed: %w", store.ErrUserNotFound), want: MsgUserNotFound},
		{name: "decryption", err: errs.ErrDecryption, want: MsgDecryptionFailed},
		{
			name: "validation detail",
			err:  errs.NewValidationError("password", "must be at least 8 characters"),
			want: errs.NewValidationError("password", "must be at least 8 characters").Error(),
		},
		{
			name: "snapshot detail",
			err:  errs.NewSnapshotError(`missing "teams"`, nil),
			want: errs.NewSnapshotError(`missing "teams"`, nil).Error(),
		},
		{name: "unknown", err: errors.New("disk on fire"), want: "disk on fire"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}
