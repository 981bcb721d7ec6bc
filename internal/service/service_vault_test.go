package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/mock"
	"github.com/MKhiriev/team-vault/internal/store"
	"github.com/MKhiriev/team-vault/internal/validators"
	"github.com/MKhiriev/team-vault/models"
)

// vaultFixture gives alice two personal entries and membership in two of
// three teams.
func vaultFixture(t *testing.T) (VaultService, *models.Session, store.Repository) {
	t.Helper()
	ctx := context.Background()
	repo := newMemoryRepo(t)

	github := testEntry("p1", "GitHub")
	github.URL = "https://github.com"
	_, err := repo.SavePassword(ctx, "alice@example.com", github)
	require.NoError(t, err)
	_, err = repo.SavePassword(ctx, "alice@example.com", testEntry("p2", "Mail"))
	require.NoError(t, err)
	_, err = repo.SavePassword(ctx, "bob@example.com", testEntry("b1", "Bob's bank"))
	require.NoError(t, err)

	ops := testTeam("ops", "OPS00001", "alice@example.com", "bob@example.com")
	ops.Passwords = []models.PasswordEntry{testEntry("o1", "Prod DB"), testEntry("o2", "GitHub org")}
	dev := testTeam("dev", "DEV00001", "bob@example.com", "Alice@Example.com")
	dev.Passwords = []models.PasswordEntry{testEntry("d1", "Staging")}
	hr := testTeam("hr", "HR000001", "bob@example.com")
	hr.Passwords = []models.PasswordEntry{testEntry("h1", "Payroll")}
	for _, tm := range []models.Team{ops, dev, hr} {
		for i := range tm.Passwords {
			tm.Passwords[i].TeamID = tm.ID
		}
		require.NoError(t, repo.CreateTeam(ctx, tm))
	}

	svc := newTestServices(t, repo)
	return svc.VaultService, sessionFor("alice@example.com", "Alice", models.RoleUser), repo
}

func TestVaultService_ListPasswords(t *testing.T) {
	vault, alice, _ := vaultFixture(t)

	tests := []struct {
		name         string
		filter       models.PasswordFilter
		wantPersonal []string
		wantTeam     []string
		wantCounts   [2]int
	}{
		{
			name:         "everything",
			filter:       models.PasswordFilter{},
			wantPersonal: []string{"p1", "p2"},
			wantTeam:     []string{"d1", "o1", "o2"},
			wantCounts:   [2]int{2, 3},
		},
		{
			name:         "personal view",
			filter:       models.PasswordFilter{View: models.FilterPersonal},
			wantPersonal: []string{"p1", "p2"},
			wantTeam:     []string{},
			wantCounts:   [2]int{2, 3},
		},
		{
			name:         "team view of one team",
			filter:       models.PasswordFilter{View: models.FilterTeam, TeamID: "ops"},
			wantPersonal: []string{},
			wantTeam:     []string{"o1", "o2"},
			wantCounts:   [2]int{2, 2},
		},
		{
			name:         "query matches title and url case-insensitively",
			filter:       models.PasswordFilter{Query: "GITHUB"},
			wantPersonal: []string{"p1"},
			wantTeam:     []string{"o2"},
			wantCounts:   [2]int{2, 3},
		},
		{
			name:         "query by username",
			filter:       models.PasswordFilter{Query: "user-d1"},
			wantPersonal: []string{},
			wantTeam:     []string{"d1"},
			wantCounts:   [2]int{2, 3},
		},
		{
			name:         "team of which alice is not a member",
			filter:       models.PasswordFilter{TeamID: "hr"},
			wantPersonal: []string{"p1", "p2"},
			wantTeam:     []string{},
			wantCounts:   [2]int{2, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := vault.ListPasswords(context.Background(), alice, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPersonal, entryIDs(listing.Personal))
			assert.ElementsMatch(t, tt.wantTeam, entryIDs(listing.Team))
			assert.Equal(t, tt.wantCounts[0], listing.PersonalCount)
			assert.Equal(t, tt.wantCounts[1], listing.TeamCount)
			assert.Equal(t, tt.wantCounts[0]+tt.wantCounts[1], listing.AllCount())
		})
	}
}

func TestVaultService_GetPassword(t *testing.T) {
	ctx := context.Background()
	vault, alice, _ := vaultFixture(t)

	got, err := vault.GetPassword(ctx, alice, "p2")
	require.NoError(t, err)
	assert.Equal(t, "Mail", got.Title)

	got, err = vault.GetPassword(ctx, alice, "d1")
	require.NoError(t, err)
	assert.Equal(t, "dev", got.TeamID)

	for _, hidden := range []string{"b1", "h1", "nope"} {
		_, err = vault.GetPassword(ctx, alice, hidden)
		assert.ErrorIs(t, err, ErrPasswordNotFound, hidden)
	}
}

func TestVaultService_SavePassword(t *testing.T) {
	ctx := context.Background()
	vault, alice, repo := vaultFixture(t)

	created, err := vault.SavePassword(ctx, alice, models.PasswordEntry{Title: "New", Password: "pw", TeamID: "ops"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.TeamID, "personal entries never carry a team")
	assert.False(t, created.CreatedAt.IsZero())

	created.Title = "Renamed"
	updated, err := vault.SavePassword(ctx, alice, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	list, err := repo.GetPasswords(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", created.ID}, entryIDs(list))
	assert.Equal(t, "Renamed", list[2].Title)

	_, err = vault.SavePassword(ctx, alice, models.PasswordEntry{Password: "no title"})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestVaultService_DeletePassword(t *testing.T) {
	ctx := context.Background()
	vault, alice, repo := vaultFixture(t)

	require.NoError(t, vault.DeletePassword(ctx, alice, "p1"))
	require.NoError(t, vault.DeletePassword(ctx, alice, "p1"), "deleting twice is fine")
	// bob's entry is out of reach
	require.NoError(t, vault.DeletePassword(ctx, alice, "b1"))

	list, err := repo.GetPasswords(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, entryIDs(list))
	list, err = repo.GetPasswords(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, entryIDs(list))
}

func TestVaultService_RequiresSession(t *testing.T) {
	ctx := context.Background()
	vault, alice, _ := vaultFixture(t)
	alice.Destroy()

	_, err := vault.ListPasswords(ctx, alice, models.PasswordFilter{})
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = vault.GetPassword(ctx, nil, "p1")
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = vault.SavePassword(ctx, alice, testEntry("x", "x"))
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.ErrorIs(t, vault.DeletePassword(ctx, alice, "p1"), ErrInvalidSession)
}

func TestVaultService_UsesIDGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	passwords := mock.NewMockPasswordRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	ids.EXPECT().Generate().Return("fixed-id")
	passwords.EXPECT().SavePassword(gomock.Any(), "alice@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, e models.PasswordEntry) (models.PasswordEntry, error) {
			assert.Equal(t, "fixed-id", e.ID)
			return e, nil
		})

	vault := NewVaultService(passwords, mock.NewMockTeamRepository(ctrl), ids, validators.NewRecordValidator(), logger.Nop())
	saved, err := vault.SavePassword(context.Background(), sessionFor("alice@example.com", "Alice", models.RoleUser), models.PasswordEntry{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", saved.ID)
}

func TestVaultService_ListTeamsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	passwords := mock.NewMockPasswordRepository(ctrl)
	teams := mock.NewMockTeamRepository(ctrl)
	boom := errors.New("boom")

	passwords.EXPECT().GetPasswords(gomock.Any(), "alice@example.com").Return(nil, nil)
	teams.EXPECT().ListTeams(gomock.Any()).Return(nil, boom)

	vault := NewVaultService(passwords, teams, mock.NewMockIDGenerator(ctrl), validators.NewRecordValidator(), logger.Nop())
	_, err := vault.ListPasswords(context.Background(), sessionFor("alice@example.com", "Alice", models.RoleUser), models.PasswordFilter{})
	assert.ErrorIs(t, err, boom)
}
