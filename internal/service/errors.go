package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/team-vault/internal/errs"
)

var (
	// ErrInvalidSession is returned when a call needs a logged-in user and
	// the session is nil or was destroyed by Logout.
	ErrInvalidSession = fmt.Errorf("%w: not logged in", errs.ErrAuth)

	// ErrAdminOnly is returned when a non-admin tries an administrative
	// operation.
	ErrAdminOnly = fmt.Errorf("%w: administrator role required", errs.ErrAuth)

	// ErrNotTeamMember is returned when the session user is not a member of
	// the team being accessed.
	ErrNotTeamMember = fmt.Errorf("%w: not a member of this team", errs.ErrAuth)

	// ErrEmailTaken is returned by Register for an email that already has an
	// account.
	ErrEmailTaken = fmt.Errorf("%w: email is already registered", errs.ErrValidation)

	// ErrAlreadyMember is returned by JoinTeam when the user is already in the
	// team.
	ErrAlreadyMember = fmt.Errorf("%w: already a member of this team", errs.ErrValidation)

	// ErrInvalidInviteCode is returned by JoinTeam when no live team uses the
	// code.
	ErrInvalidInviteCode = fmt.Errorf("%w: invalid invite code", errs.ErrValidation)

	// ErrPasswordNotFound is returned when no visible entry has the requested
	// id.
	ErrPasswordNotFound = errors.New("password not found")

	// ErrInviteCodeExhausted is returned when no free invite code was found
	// within the retry budget.
	ErrInviteCodeExhausted = errors.New("could not generate a unique invite code")
)
