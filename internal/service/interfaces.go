// Package service implements the use cases of the vault on top of a
// [store.Repository]: accounts and sessions, personal and team passwords,
// snapshot export/import with the merge engine, and file based sync.
//
// Every call acting on behalf of a user takes the caller's *models.Session
// explicitly; the package holds no login state of its own.
package service

import (
	"context"

	"github.com/MKhiriev/team-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages accounts and sessions.
type AuthService interface {
	// Register creates an account and logs it in. The first account of a
	// store becomes an administrator.
	// Returns *errs.ValidationError for bad input and ErrEmailTaken for a
	// duplicate email.
	Register(ctx context.Context, email, name, password string) (*models.Session, error)

	// Login verifies the credentials and opens a session. Unknown email and
	// wrong password both return errs.ErrAuth; a disabled account returns
	// errs.ErrAccountDisabled.
	Login(ctx context.Context, email, password string) (*models.Session, error)

	// Logout destroys the session, wiping its master key.
	Logout(sess *models.Session)

	// ChangePassword re-hashes the master password with a fresh salt. The
	// old session is destroyed and a new one is returned.
	ChangePassword(ctx context.Context, sess *models.Session, current, next string) (*models.Session, error)

	// SetUserStatus enables or disables another account. Admin only.
	SetUserStatus(ctx context.Context, sess *models.Session, email, status string) error

	// ListUsers returns public profiles of every account. Admin only.
	ListUsers(ctx context.Context, sess *models.Session) ([]models.PublicProfile, error)
}

// VaultService manages the personal passwords of the session user and the
// combined password listing.
type VaultService interface {
	// ListPasswords returns the personal and team passwords visible to the
	// user, narrowed by filter.
	ListPasswords(ctx context.Context, sess *models.Session, filter models.PasswordFilter) (models.PasswordListing, error)

	// GetPassword finds a personal or team entry visible to the user.
	GetPassword(ctx context.Context, sess *models.Session, id string) (models.PasswordEntry, error)

	// SavePassword creates (empty ID) or updates a personal entry.
	SavePassword(ctx context.Context, sess *models.Session, entry models.PasswordEntry) (models.PasswordEntry, error)

	// DeletePassword removes a personal entry. Unknown ids are ignored.
	DeletePassword(ctx context.Context, sess *models.Session, id string) error
}

// TeamService manages teams, membership and team passwords. Team passwords
// are only reachable by members.
type TeamService interface {
	CreateTeam(ctx context.Context, sess *models.Session, name string) (models.Team, error)
	JoinTeam(ctx context.Context, sess *models.Session, inviteCode string) (models.Team, error)
	ListTeams(ctx context.Context, sess *models.Session) ([]models.Team, error)
	GetTeam(ctx context.Context, sess *models.Session, teamID string) (models.Team, error)

	SaveTeamPassword(ctx context.Context, sess *models.Session, teamID string, entry models.PasswordEntry) (models.PasswordEntry, error)
	DeleteTeamPassword(ctx context.Context, sess *models.Session, teamID, id string) error
}

// MergeService computes how an incoming snapshot is folded into a store.
type MergeService interface {
	// BuildMergePlan is pure: it reads local and incoming and returns the
	// writes to apply together with their summary.
	BuildMergePlan(ctx context.Context, local models.State, incoming models.Snapshot) (models.MergePlan, models.MergeResult, error)
}

// SnapshotService exports the store and merges snapshots into it.
type SnapshotService interface {
	Export(ctx context.Context) (models.Snapshot, error)

	// ExportJSON returns the indented canonical JSON of Export.
	ExportJSON(ctx context.Context) ([]byte, error)

	// Import parses data and merges it. An invalid snapshot is rejected
	// whole with *errs.SnapshotError and nothing is written.
	Import(ctx context.Context, data []byte) (models.MergeResult, error)

	// Merge folds an already parsed snapshot into the store.
	Merge(ctx context.Context, snapshot models.Snapshot) (models.MergeResult, error)

	// ExportEncrypted seals the snapshot under passphrase, or under the
	// session master key when passphrase is empty.
	ExportEncrypted(ctx context.Context, sess *models.Session, passphrase string) (models.CipherBundle, error)

	// ImportEncrypted opens a JSON encoded bundle and imports its snapshot.
	ImportEncrypted(ctx context.Context, bundle []byte, passphrase string) (models.MergeResult, error)
}

// FileSyncService keeps the store and a shared snapshot file in step.
type FileSyncService interface {
	// Load merges the snapshot at path into the store. A missing file is
	// an empty result.
	Load(ctx context.Context, path string) (models.MergeResult, error)

	// Save writes the store to path atomically.
	Save(ctx context.Context, path string) error

	// Sync is Load followed by Save.
	Sync(ctx context.Context, path string) (models.MergeResult, error)
}

// IDGenerator hands out unique record identifiers.
type IDGenerator interface {
	Generate() string
}
