package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mergeInto builds and applies a plan against the repository, the way
// SnapshotService.Merge does.
func mergeInto(t *testing.T, svc *Services, snap models.Snapshot) models.MergeResult {
	t.Helper()
	result, err := svc.SnapshotService.Merge(context.Background(), snap)
	require.NoError(t, err)
	return result
}

func TestBuildMergePlan_PasswordUnionLocalWins(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	svc := newTestServices(t, repo)

	// B already has id1 (edited differently) and a unique id3
	bID1 := testEntry("id1", "B's GitHub")
	_, err := repo.SavePassword(ctx, "b@example.com", bID1)
	require.NoError(t, err)
	_, err = repo.SavePassword(ctx, "b@example.com", testEntry("id3", "B only"))
	require.NoError(t, err)

	// A exports id1 and id2
	incoming := snapshotOf(nil, map[string][]models.PasswordEntry{
		"b@example.com": {testEntry("id1", "A's GitHub"), testEntry("id2", "A's Mail")},
	})

	result := mergeInto(t, svc, incoming)
	assert.Equal(t, 1, result.PasswordsAdded)
	assert.Equal(t, 1, result.PasswordsSkipped)

	got := mustState(t, repo).Passwords["b@example.com"]
	require.Equal(t, []string{"id1", "id3", "id2"}, entryIDs(got))
	assert.Equal(t, "B's GitHub", got[0].Title, "local copy of a shared id wins")
	assert.Equal(t, "B only", got[1].Title)
	assert.Equal(t, "A's Mail", got[2].Title)
}

func TestBuildMergePlan_UnknownTeamInsertedVerbatim(t *testing.T) {
	repo := newMemoryRepo(t)
	svc := newTestServices(t, repo)

	tm := testTeam("t1", "ABCD1234", "a@example.com", "b@example.com")
	tm.Passwords = []models.PasswordEntry{testEntry("tp1", "Prod DB"), testEntry("tp2", "Staging")}

	result := mergeInto(t, svc, snapshotOf(nil, nil, tm))
	assert.Equal(t, 1, result.TeamsAdded)

	got := mustState(t, repo).Teams["t1"]
	assert.Equal(t, tm.Name, got.Name)
	assert.Equal(t, tm.InviteCode, got.InviteCode)
	assert.Equal(t, tm.CreatedBy, got.CreatedBy)
	assert.True(t, tm.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, tm.Members, got.Members)
	require.Equal(t, []string{"tp1", "tp2"}, entryIDs(got.Passwords))
	assert.Equal(t, "Prod DB", got.Passwords[0].Title)
	assert.Equal(t, "t1", got.Passwords[0].TeamID)
}

func TestBuildMergePlan_SecondImportAddsOnlyNewMember(t *testing.T) {
	repo := newMemoryRepo(t)
	svc := newTestServices(t, repo)

	first := testTeam("t1", "ABCD1234", "a@example.com", "b@example.com")
	mergeInto(t, svc, snapshotOf(nil, nil, first))

	second := testTeam("t1", "ABCD1234", "A@Example.com", "b@example.com", "c@example.com")
	second.Members[1].Role = models.MemberRoleAdmin // differing role is ignored

	result := mergeInto(t, svc, snapshotOf(nil, nil, second))
	assert.Equal(t, 1, result.MembersAdded)
	assert.Zero(t, result.TeamsAdded)

	got := mustState(t, repo).Teams["t1"]
	assert.Equal(t, []string{"a@example.com", "b@example.com", "c@example.com"}, memberEmails(got.Members))
	assert.Equal(t, models.MemberRoleMember, got.Members[1].Role)
}

func TestBuildMergePlan_Idempotent(t *testing.T) {
	repo := newMemoryRepo(t)
	svc := newTestServices(t, repo)

	tm := testTeam("t1", "ABCD1234", "a@example.com")
	tm.Passwords = []models.PasswordEntry{testEntry("tp1", "shared")}
	snap := snapshotOf(
		[]models.User{testUser("a@example.com"), testUser("b@example.com")},
		map[string][]models.PasswordEntry{"a@example.com": {testEntry("p1", "one"), testEntry("p2", "two")}},
		tm,
	)

	first := mergeInto(t, svc, snap)
	assert.True(t, first.Changed())
	afterFirst := mustState(t, repo)

	second := mergeInto(t, svc, snap)
	assert.False(t, second.Changed())
	assert.Equal(t, 2, second.PasswordsSkipped)
	assert.Equal(t, afterFirst, mustState(t, repo))
}

func TestBuildMergePlan_NeverRemovesOrOverwritesEntries(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo(t)
	svc := newTestServices(t, repo)

	_, err := repo.SavePassword(ctx, "a@example.com", testEntry("p1", "local"))
	require.NoError(t, err)
	local := testTeam("t1", "ABCD1234", "a@example.com")
	require.NoError(t, repo.CreateTeam(ctx, local))
	_, err = repo.SaveTeamPassword(ctx, "t1", testEntry("tp1", "local team"))
	require.NoError(t, err)
	before := mustState(t, repo)

	// incoming knows neither the local entries nor the local member
	other := testTeam("t1", "ZZZZ0000", "x@example.com")
	other.Name = "renamed"
	other.Passwords = []models.PasswordEntry{testEntry("tp1", "remote team"), testEntry("tp2", "remote")}
	mergeInto(t, svc, snapshotOf(nil, map[string][]models.PasswordEntry{
		"a@example.com": {testEntry("p1", "remote")},
	}, other))

	after := mustState(t, repo)
	for owner, list := range before.Passwords {
		assert.Equal(t, list, after.Passwords[owner][:len(list)])
	}
	for id, tm := range before.Teams {
		got := after.Teams[id]
		assert.Equal(t, tm.Name, got.Name)
		assert.Equal(t, tm.InviteCode, got.InviteCode)
		assert.Equal(t, tm.Members, got.Members[:len(tm.Members)])
		assert.Equal(t, tm.Passwords, got.Passwords[:len(tm.Passwords)])
	}
	assert.Equal(t, []string{"tp1", "tp2"}, entryIDs(after.Teams["t1"].Passwords))
}

func TestBuildMergePlan_Users(t *testing.T) {
	m := NewMergeService(logger.Nop())

	local := models.NewState()
	same := testUser("same@example.com")
	changed := testUser("changed@example.com")
	local.Users[same.Email] = same
	local.Users[changed.Email] = changed

	updated := changed
	updated.Status = models.StatusDisabled
	updated.Name = "New Name"
	snap := snapshotOf([]models.User{same, updated, testUser("new@example.com")}, nil)

	plan, result, err := m.BuildMergePlan(context.Background(), local, snap)
	require.NoError(t, err)
	assert.Equal(t, 1, result.UsersAdded)
	assert.Equal(t, 1, result.UsersUpdated)
	require.Len(t, plan.Users, 2)
	assert.Equal(t, "changed@example.com", plan.Users[0].Email)
	assert.Equal(t, "New Name", plan.Users[0].Name, "incoming record replaces the local one whole")
	assert.Equal(t, "new@example.com", plan.Users[1].Email)
}

func TestBuildMergePlan_DedupesIncoming(t *testing.T) {
	m := NewMergeService(logger.Nop())

	tm := testTeam("t1", "ABCD1234", "a@example.com", "A@EXAMPLE.COM")
	tm.Passwords = []models.PasswordEntry{testEntry("x", "first"), testEntry("x", "second")}
	snap := snapshotOf(nil, map[string][]models.PasswordEntry{
		"a@example.com": {testEntry("p", "first"), testEntry("p", "second")},
	}, tm)

	plan, result, err := m.BuildMergePlan(context.Background(), models.NewState(), snap)
	require.NoError(t, err)

	require.Len(t, plan.Passwords["a@example.com"], 1)
	assert.Equal(t, "first", plan.Passwords["a@example.com"][0].Title)
	assert.Equal(t, 1, result.PasswordsSkipped)

	require.Len(t, plan.Teams, 1)
	assert.Len(t, plan.Teams[0].Members, 1)
	require.Len(t, plan.Teams[0].Passwords, 1)
	assert.Equal(t, "first", plan.Teams[0].Passwords[0].Title)
}

func TestBuildMergePlan_InviteCodeConflict(t *testing.T) {
	m := NewMergeService(logger.Nop())

	local := models.NewState()
	local.Teams["t1"] = testTeam("t1", "ABCD1234", "a@example.com")

	snap := snapshotOf(nil, nil, testTeam("t2", "abcd1234", "b@example.com"), testTeam("t3", "QWER5678", "c@example.com"))

	plan, result, err := m.BuildMergePlan(context.Background(), local, snap)
	require.NoError(t, err)
	assert.Len(t, plan.Teams, 2, "conflicting teams are still inserted")
	assert.Equal(t, []string{"t2"}, result.InviteCodeConflicts)
}

func TestBuildMergePlan_Deterministic(t *testing.T) {
	m := NewMergeService(logger.Nop())
	snap := snapshotOf(
		[]models.User{testUser("c@example.com"), testUser("a@example.com"), testUser("b@example.com")},
		nil,
		testTeam("t3", "CCCC3333", "a@example.com"), testTeam("t1", "AAAA1111", "a@example.com"), testTeam("t2", "BBBB2222", "a@example.com"),
	)

	first, _, err := m.BuildMergePlan(context.Background(), models.NewState(), snap)
	require.NoError(t, err)
	for range 5 {
		again, _, err := m.BuildMergePlan(context.Background(), models.NewState(), snap)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "a@example.com", first.Users[0].Email)
	assert.Equal(t, "t1", first.Teams[0].ID)
}

func TestBuildMergePlan_Cancelled(t *testing.T) {
	m := NewMergeService(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := m.BuildMergePlan(ctx, models.NewState(), snapshotOf([]models.User{testUser("a@example.com")}, nil))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildMergePlan_EmptySnapshotIsEmptyPlan(t *testing.T) {
	m := NewMergeService(logger.Nop())
	local := models.NewState()
	local.Users["a@example.com"] = testUser("a@example.com")

	plan, result, err := m.BuildMergePlan(context.Background(), local, snapshotOf(nil, nil))
	require.NoError(t, err)
	assert.True(t, plan.Empty())
	assert.False(t, result.Changed())
}
