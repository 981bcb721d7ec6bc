package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/mock"
	"github.com/MKhiriev/team-vault/internal/store"
	"github.com/MKhiriev/team-vault/internal/utils"
	"github.com/MKhiriev/team-vault/internal/validators"
	"github.com/MKhiriev/team-vault/models"
)

type teamFixture struct {
	svc   *Services
	repo  store.Repository
	alice *models.Session
	bob   *models.Session
}

func newTeamFixture(t *testing.T) teamFixture {
	t.Helper()
	ctx := context.Background()
	repo := newMemoryRepo(t)
	svc := newTestServices(t, repo)

	alice, err := svc.AuthService.Register(ctx, "alice@example.com", "Alice", "correct horse")
	require.NoError(t, err)
	bob, err := svc.AuthService.Register(ctx, "bob@example.com", "Bob", "battery staple")
	require.NoError(t, err)
	return teamFixture{svc: svc, repo: repo, alice: alice, bob: bob}
}

func TestTeamService_CreateTeam(t *testing.T) {
	ctx := context.Background()
	f := newTeamFixture(t)

	team, err := f.svc.TeamService.CreateTeam(ctx, f.alice, "Ops")
	require.NoError(t, err)
	assert.NotEmpty(t, team.ID)
	assert.Equal(t, "Ops", team.Name)
	assert.Len(t, team.InviteCode, models.InviteCodeLength)
	assert.Equal(t, "alice@example.com", team.CreatedBy)
	require.Len(t, team.Members, 1)
	assert.Equal(t, models.Member{Email: "alice@example.com", Name: "Alice", Role: models.MemberRoleAdmin}, team.Members[0])
	assert.NotNil(t, team.Passwords)

	user, err := f.repo.GetUser(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{team.ID}, user.Teams)

	_, err = f.svc.TeamService.CreateTeam(ctx, f.alice, "")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestTeamService_JoinTeam(t *testing.T) {
	ctx := context.Background()
	f := newTeamFixture(t)
	team, err := f.svc.TeamService.CreateTeam(ctx, f.alice, "Ops")
	require.NoError(t, err)

	// codes are typed by people
	joined, err := f.svc.TeamService.JoinTeam(ctx, f.bob, "  "+strings.ToLower(team.InviteCode)+" ")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, memberEmails(joined.Members))
	assert.Equal(t, models.MemberRoleMember, joined.Members[1].Role)

	user, err := f.repo.GetUser(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Contains(t, user.Teams, team.ID)

	_, err = f.svc.TeamService.JoinTeam(ctx, f.bob, team.InviteCode)
	assert.ErrorIs(t, err, ErrAlreadyMember)
	_, err = f.svc.TeamService.JoinTeam(ctx, f.alice, team.InviteCode)
	assert.ErrorIs(t, err, ErrAlreadyMember)

	for _, code := range []string{"", "   ", "NOPE0000"} {
		_, err = f.svc.TeamService.JoinTeam(ctx, f.bob, code)
		assert.ErrorIs(t, err, ErrInvalidInviteCode, "code %q", code)
		assert.ErrorIs(t, err, errs.ErrValidation)
	}

	stored, err := f.repo.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Members, 2)
}

func TestTeamService_MembersOnly(t *testing.T) {
	ctx := context.Background()
	f := newTeamFixture(t)
	team, err := f.svc.TeamService.CreateTeam(ctx, f.alice, "Ops")
	require.NoError(t, err)

	teams, err := f.svc.TeamService.ListTeams(ctx, f.bob)
	require.NoError(t, err)
	assert.Empty(t, teams)

	_, err = f.svc.TeamService.GetTeam(ctx, f.bob, team.ID)
	assert.ErrorIs(t, err, ErrNotTeamMember)
	_, err = f.svc.TeamService.SaveTeamPassword(ctx, f.bob, team.ID, models.PasswordEntry{Title: "x"})
	assert.ErrorIs(t, err, ErrNotTeamMember)
	assert.ErrorIs(t, f.svc.TeamService.DeleteTeamPassword(ctx, f.bob, team.ID, "x"), errs.ErrAuth)

	_, err = f.svc.TeamService.GetTeam(ctx, f.alice, "missing")
	assert.ErrorIs(t, err, store.ErrTeamNotFound)

	teams, err = f.svc.TeamService.ListTeams(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, team.ID, teams[0].ID)
}

func TestTeamService_TeamPasswords(t *testing.T) {
	ctx := context.Background()
	f := newTeamFixture(t)
	team, err := f.svc.TeamService.CreateTeam(ctx, f.alice, "Ops")
	require.NoError(t, err)
	_, err = f.svc.TeamService.JoinTeam(ctx, f.bob, team.InviteCode)
	require.NoError(t, err)

	saved, err := f.svc.TeamService.SaveTeamPassword(ctx, f.bob, team.ID, models.PasswordEntry{Title: "Prod DB", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, team.ID, saved.TeamID)

	// alice sees what bob saved, through the vault listing too
	got, err := f.svc.VaultService.GetPassword(ctx, f.alice, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Prod DB", got.Title)

	listing, err := f.svc.VaultService.ListPasswords(ctx, f.alice, models.PasswordFilter{View: models.FilterTeam})
	require.NoError(t, err)
	assert.Equal(t, []string{saved.ID}, entryIDs(listing.Team))

	_, err = f.svc.TeamService.SaveTeamPassword(ctx, f.alice, team.ID, models.PasswordEntry{})
	assert.ErrorIs(t, err, errs.ErrValidation)

	require.NoError(t, f.svc.TeamService.DeleteTeamPassword(ctx, f.alice, team.ID, saved.ID))
	stored, err := f.repo.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Passwords)
}

func TestTeamService_RequiresSession(t *testing.T) {
	ctx := context.Background()
	f := newTeamFixture(t)

	_, err := f.svc.TeamService.CreateTeam(ctx, nil, "Ops")
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = f.svc.TeamService.JoinTeam(ctx, nil, "ABCD1234")
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = f.svc.TeamService.ListTeams(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestTeamService_InviteCodeRetries(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	require.NoError(t, repo.CreateTeam(ctx, testTeam("old", "TAKEN001", "bob@example.com")))

	ctrl := gomock.NewController(t)
	gen := mock.NewMockCredentialGenerator(ctrl)
	gomock.InOrder(
		gen.EXPECT().GenerateInviteCode().Return("TAKEN001", nil),
		gen.EXPECT().GenerateInviteCode().Return("FREE0001", nil),
	)

	svc := NewTeamService(repo, gen, utils.NewUUIDGenerator(), validators.NewRecordValidator(), logger.Nop())
	team, err := svc.CreateTeam(ctx, sessionFor("alice@example.com", "Alice", models.RoleUser), "Ops")
	require.NoError(t, err)
	assert.Equal(t, "FREE0001", team.InviteCode)
}

func TestTeamService_InviteCodeExhausted(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	require.NoError(t, repo.CreateTeam(ctx, testTeam("old", "TAKEN001", "bob@example.com")))

	ctrl := gomock.NewController(t)
	gen := mock.NewMockCredentialGenerator(ctrl)
	gen.EXPECT().GenerateInviteCode().Return("TAKEN001", nil).Times(maxInviteCodeAttempts)

	svc := NewTeamService(repo, gen, utils.NewUUIDGenerator(), validators.NewRecordValidator(), logger.Nop())
	_, err := svc.CreateTeam(ctx, sessionFor("alice@example.com", "Alice", models.RoleUser), "Ops")
	assert.ErrorIs(t, err, ErrInviteCodeExhausted)

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestTeamService_JoinStoreFailures(t *testing.T) {
	ctx := context.Background()
	alice := sessionFor("alice@example.com", "Alice", models.RoleUser)
	boom := errors.New("boom")

	t.Run("lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		teams := mock.NewMockTeamRepository(ctrl)
		teams.EXPECT().FindTeamByInviteCode(gomock.Any(), "ABCD1234").Return(models.Team{}, boom)

		svc := NewTeamService(teams, mock.NewMockCredentialGenerator(ctrl), mock.NewMockIDGenerator(ctrl), validators.NewRecordValidator(), logger.Nop())
		_, err := svc.JoinTeam(ctx, alice, "abcd1234")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("member added concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		teams := mock.NewMockTeamRepository(ctrl)
		teams.EXPECT().FindTeamByInviteCode(gomock.Any(), "ABCD1234").Return(testTeam("t1", "ABCD1234", "bob@example.com"), nil)
		teams.EXPECT().AddTeamMember(gomock.Any(), "t1", gomock.Any()).Return(store.ErrMemberExists)

		svc := NewTeamService(teams, mock.NewMockCredentialGenerator(ctrl), mock.NewMockIDGenerator(ctrl), validators.NewRecordValidator(), logger.Nop())
		_, err := svc.JoinTeam(ctx, alice, "ABCD1234")
		assert.ErrorIs(t, err, ErrAlreadyMember)
	})
}
