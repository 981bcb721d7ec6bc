// Package store is the record store: users, personal password lists and
// teams with their members and shared passwords.
//
// Two backends implement [Repository]: a JSON document kept in a single file
// (the default, and byte-compatible with an exported snapshot) and a SQLite
// database. Every write is atomic: either all of it becomes visible and
// durable, or none of it does.
package store

import (
	"context"

	"github.com/MKhiriev/team-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores user accounts keyed by lowercased email.
type UserRepository interface {
	// GetUser returns the user with email (matched case-insensitively) or
	// ErrUserNotFound.
	GetUser(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
	// SaveUser inserts or fully replaces the user with the same email.
	SaveUser(ctx context.Context, user models.User) error
}

// PasswordRepository stores personal password lists.
type PasswordRepository interface {
	// GetPasswords returns the owner's entries in insertion order. An owner
	// with no entries gets an empty slice.
	GetPasswords(ctx context.Context, ownerEmail string) ([]models.PasswordEntry, error)

	// SavePassword upserts entry by id into the owner's list. Updating keeps
	// the stored createdAt; updatedAt is always set to the current time.
	SavePassword(ctx context.Context, ownerEmail string, entry models.PasswordEntry) (models.PasswordEntry, error)

	// DeletePassword removes the entry; a missing entry is not an error.
	DeletePassword(ctx context.Context, ownerEmail, id string) error
}

// TeamRepository stores teams, their members and their shared passwords.
type TeamRepository interface {
	GetTeam(ctx context.Context, id string) (models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)

	// FindTeamByInviteCode matches the code case-insensitively.
	FindTeamByInviteCode(ctx context.Context, code string) (models.Team, error)

	// CreateTeam inserts a new team and records its id in the teams list of
	// every member that has an account.
	CreateTeam(ctx context.Context, team models.Team) error

	// AddTeamMember appends member to the team and the team id to the
	// member's account, in one atomic step.
	AddTeamMember(ctx context.Context, teamID string, member models.Member) error

	// SaveTeamPassword and DeleteTeamPassword mirror the personal variants,
	// addressed by (teamID, entry id). Both fail with ErrTeamNotFound for an
	// unknown team.
	SaveTeamPassword(ctx context.Context, teamID string, entry models.PasswordEntry) (models.PasswordEntry, error)
	DeleteTeamPassword(ctx context.Context, teamID, id string) error
}

// Repository is the complete record store.
type Repository interface {
	UserRepository
	PasswordRepository
	TeamRepository

	// State returns a deep copy of everything in the store.
	State(ctx context.Context) (models.State, error)

	// ApplyMergePlan performs every write of plan in a single atomic step.
	ApplyMergePlan(ctx context.Context, plan models.MergePlan) error

	Close() error
}
