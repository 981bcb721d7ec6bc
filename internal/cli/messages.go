// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"

	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/internal/service"
	"github.com/MKhiriev/team-vault/internal/store"
)

// User-facing messages for the failures a command can end with.
const (
	// MsgInvalidLoginPassword is shown for an unknown email or a wrong
	// password; the two are never told apart.
	MsgInvalidLoginPassword = "invalid email or password"

	// MsgAccountDisabled is shown when an administrator disabled the account.
	MsgAccountDisabled = "this account is disabled, ask an administrator"

	// MsgAdminOnly is shown for administrative commands run by a non-admin.
	MsgAdminOnly = "only administrators can do this"

	// MsgAccessDenied is shown when the user is not a member of the team.
	MsgAccessDenied = "access denied: you are not a member of this team"

	// MsgLoginAlreadyExists is shown when registering a taken email.
	MsgLoginAlreadyExists = "an account with this email already exists"

	// MsgAlreadyMember is shown when joining a team twice.
	MsgAlreadyMember = "you are already a member of this team"

	// MsgInvalidInviteCode is shown when no team uses the invite code.
	MsgInvalidInviteCode = "invalid invite code"

	// MsgDataNotFound is shown when a password id is not visible to the user.
	MsgDataNotFound = "password not found"

	// MsgTeamNotFound is shown for an unknown team id.
	MsgTeamNotFound = "team not found"

	// MsgUserNotFound is shown for an unknown account email.
	MsgUserNotFound = "user not found"

	// MsgDecryptionFailed is shown for a wrong passphrase or a damaged
	// encrypted file.
	MsgDecryptionFailed = "could not decrypt: wrong passphrase or corrupted file"
)

var messages = []struct {
	err error
	msg string
}{
	{errs.ErrAccountDisabled, MsgAccountDisabled},
	{service.ErrAdminOnly, MsgAdminOnly},
	{service.ErrNotTeamMember, MsgAccessDenied},
	{service.ErrEmailTaken, MsgLoginAlreadyExists},
	{service.ErrAlreadyMember, MsgAlreadyMember},
	{service.ErrInvalidInviteCode, MsgInvalidInviteCode},
	{service.ErrPasswordNotFound, MsgDataNotFound},
	{store.ErrTeamNotFound, MsgTeamNotFound},
	{store.ErrUserNotFound, MsgUserNotFound},
	{errs.ErrDecryption, MsgDecryptionFailed},
	{errs.ErrAuth, MsgInvalidLoginPassword},
}

// Describe turns err into the message printed to the user. Validation and
// snapshot errors carry their own detail and are shown as they are.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var se *errs.SnapshotError
	if errors.As(err, &se) {
		return se.Error()
	}

	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}
