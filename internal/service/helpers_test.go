package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/team-vault/internal/config"
	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/store"
	"github.com/MKhiriev/team-vault/models"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

// testAppConfig keeps Argon2id cheap enough for unit tests.
func testAppConfig() config.App {
	return config.App{
		DigestAlgorithm:   "argon2id",
		CipherAlgorithm:   "aes-256-gcm",
		MinPasswordLength: 8,
		Argon2:            config.Argon2{Time: 1, MemoryKiB: 8 * 1024, Threads: 1},
	}
}

func newMemoryRepo(t *testing.T) store.Repository {
	t.Helper()
	repo, err := store.NewFileRepository(store.MemoryPath, logger.Nop())
	require.NoError(t, err)
	return repo
}

func newTestServices(t *testing.T, repo store.Repository) *Services {
	t.Helper()
	svc, err := NewServices(repo, testAppConfig(), logger.Nop())
	require.NoError(t, err)
	return svc
}

func sessionFor(email, name, role string) *models.Session {
	return models.NewSession(models.PublicProfile{Email: email, Name: name, Role: role}, "master-key-"+email, testNow)
}

func testEntry(id, title string) models.PasswordEntry {
	return models.PasswordEntry{
		ID:        id,
		Title:     title,
		Username:  "user-" + id,
		Password:  "secret-" + id,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func testUser(email string) models.User {
	return models.User{
		Email:        email,
		Name:         "Name of " + email,
		PasswordHash: "ab12",
		PasswordSalt: "cd34",
		CreatedAt:    testNow,
		Teams:        []string{},
		Role:         models.RoleUser,
		Status:       models.StatusActive,
	}
}

func testTeam(id, code string, members ...string) models.Team {
	t := models.Team{
		ID:         id,
		Name:       "Team " + id,
		InviteCode: code,
		CreatedBy:  "creator@example.com",
		CreatedAt:  testNow,
		Members:    []models.Member{},
		Passwords:  []models.PasswordEntry{},
	}
	for i, email := range members {
		role := models.MemberRoleMember
		if i == 0 {
			role = models.MemberRoleAdmin
		}
		t.Members = append(t.Members, models.Member{Email: email, Name: email, Role: role})
	}
	return t
}

func snapshotOf(users []models.User, passwords map[string][]models.PasswordEntry, teams ...models.Team) models.Snapshot {
	st := models.NewState()
	for _, u := range users {
		st.Users[models.NormalizeEmail(u.Email)] = u
	}
	for owner, list := range passwords {
		st.Passwords[owner] = list
	}
	for _, t := range teams {
		st.Teams[t.ID] = t
	}
	return st.Snapshot(testNow)
}

func entryIDs(entries []models.PasswordEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func memberEmails(members []models.Member) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Email
	}
	return out
}

func mustState(t *testing.T, repo store.Repository) models.State {
	t.Helper()
	st, err := repo.State(context.Background())
	require.NoError(t, err)
	return st
}
