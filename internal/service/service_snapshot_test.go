package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/mock"
	"github.com/MKhiriev/team-vault/internal/validators"
	"github.com/MKhiriev/team-vault/models"
)

// seedVault fills a fresh in-memory vault with one user, a personal entry
// and a team.
func seedVault(t *testing.T) (*Services, models.Snapshot) {
	t.Helper()
	svc := newTestServices(t, newMemoryRepo(t))

	tm := testTeam("t1", "ABCD1234", "a@example.com")
	tm.Passwords = []models.PasswordEntry{testEntry("tp1", "Prod DB")}
	seed := snapshotOf(
		[]models.User{testUser("a@example.com")},
		map[string][]models.PasswordEntry{"a@example.com": {testEntry("p1", "GitHub")}},
		tm,
	)
	_, err := svc.SnapshotService.Merge(context.Background(), seed)
	require.NoError(t, err)
	return svc, seed
}

// sameRecords compares two snapshots by their JSON content, ignoring the
// export time.
func sameRecords(t *testing.T, want, got models.Snapshot) {
	t.Helper()
	want.ExportedAt, got.ExportedAt = testNow, testNow
	a, err := EncodeSnapshot(want)
	require.NoError(t, err)
	b, err := EncodeSnapshot(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestSnapshotService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src, _ := seedVault(t)

	data, err := src.SnapshotService.ExportJSON(ctx)
	require.NoError(t, err)

	dst := newTestServices(t, newMemoryRepo(t))
	result, err := dst.SnapshotService.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 1, result.UsersAdded)
	assert.Equal(t, 1, result.PasswordsAdded)
	assert.Equal(t, 1, result.TeamsAdded)

	want, err := src.SnapshotService.Export(ctx)
	require.NoError(t, err)
	got, err := dst.SnapshotService.Export(ctx)
	require.NoError(t, err)
	sameRecords(t, want, got)
}

func TestSnapshotService_ImportRejectsWithoutWriting(t *testing.T) {
	ctx := context.Background()
	svc, _ := seedVault(t)
	before, err := svc.SnapshotService.Export(ctx)
	require.NoError(t, err)

	// the first user is fine, the second entry is broken
	bad := snapshotOf(
		[]models.User{testUser("new@example.com")},
		map[string][]models.PasswordEntry{"new@example.com": {testEntry("n1", "ok"), {ID: "n2"}}},
	)
	data, err := EncodeSnapshot(bad)
	require.NoError(t, err)

	_, err = svc.SnapshotService.Import(ctx, data)
	require.ErrorIs(t, err, errs.ErrInvalidSnapshot)

	after, err := svc.SnapshotService.Export(ctx)
	require.NoError(t, err)
	sameRecords(t, before, after)
}

func TestSnapshotService_ExportStampsTime(t *testing.T) {
	svc := newTestServices(t, newMemoryRepo(t))
	snap, err := svc.SnapshotService.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.SnapshotVersion, snap.Version)
	assert.False(t, snap.ExportedAt.IsZero())
	assert.NotNil(t, snap.Users)
	assert.NotNil(t, snap.Passwords)
	assert.NotNil(t, snap.Teams)
}

func TestSnapshotService_EncryptedRoundTrip(t *testing.T) {
	ctx := context.Background()
	src, _ := seedVault(t)
	sess := sessionFor("a@example.com", "A", models.RoleAdmin)

	bundle, err := src.SnapshotService.ExportEncrypted(ctx, sess, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "aes-256-gcm", bundle.Algorithm)
	assert.NotContains(t, bundle.Encrypted, "GitHub")

	data, err := json.Marshal(bundle)
	require.NoError(t, err)

	t.Run("wrong passphrase", func(t *testing.T) {
		dst := newTestServices(t, newMemoryRepo(t))
		_, err := dst.SnapshotService.ImportEncrypted(ctx, data, "battery staple")
		assert.ErrorIs(t, err, errs.ErrDecryption)

		got, err := dst.SnapshotService.Export(ctx)
		require.NoError(t, err)
		assert.Empty(t, got.Users)
	})

	t.Run("right passphrase", func(t *testing.T) {
		dst := newTestServices(t, newMemoryRepo(t))
		result, err := dst.SnapshotService.ImportEncrypted(ctx, data, "correct horse")
		require.NoError(t, err)
		assert.Equal(t, 1, result.TeamsAdded)

		want, err := src.SnapshotService.Export(ctx)
		require.NoError(t, err)
		got, err := dst.SnapshotService.Export(ctx)
		require.NoError(t, err)
		sameRecords(t, want, got)
	})
}

func TestSnapshotService_ExportEncryptedDefaultsToMasterKey(t *testing.T) {
	ctx := context.Background()
	src, _ := seedVault(t)
	sess := sessionFor("a@example.com", "A", models.RoleAdmin)

	bundle, err := src.SnapshotService.ExportEncrypted(ctx, sess, "")
	require.NoError(t, err)
	data, err := json.Marshal(bundle)
	require.NoError(t, err)

	dst := newTestServices(t, newMemoryRepo(t))
	_, err = dst.SnapshotService.ImportEncrypted(ctx, data, sess.MasterKey())
	require.NoError(t, err)

	sess.Destroy()
	_, err = src.SnapshotService.ExportEncrypted(ctx, sess, "")
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.ErrorIs(t, err, errs.ErrAuth)
}

func TestSnapshotService_ImportEncryptedGarbage(t *testing.T) {
	svc := newTestServices(t, newMemoryRepo(t))
	for _, data := range []string{"", "not json", `{}`, `{"encrypted":"", "salt":"00", "iv":"AA=="}`, `{"encrypted":"AAAA", "salt":"zz", "iv":"AA=="}`} {
		_, err := svc.SnapshotService.ImportEncrypted(context.Background(), []byte(data), "pass")
		assert.ErrorIs(t, err, errs.ErrDecryption, "input %q", data)
	}
}

func TestSnapshotService_MergeEmptyPlanSkipsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	merger := mock.NewMockMergeService(ctrl)

	local := models.NewState()
	incoming := models.NewState().Snapshot(testNow)

	repo.EXPECT().State(gomock.Any()).Return(local, nil)
	merger.EXPECT().BuildMergePlan(gomock.Any(), local, incoming).
		Return(models.MergePlan{}, models.MergeResult{PasswordsSkipped: 3}, nil)
	// no ApplyMergePlan expected

	svc := NewSnapshotService(repo, merger, nil, validators.NewRecordValidator(), logger.Nop())
	result, err := svc.Merge(context.Background(), incoming)
	require.NoError(t, err)
	assert.Equal(t, 3, result.PasswordsSkipped)
}

func TestSnapshotService_MergeFailures(t *testing.T) {
	boom := errors.New("boom")
	plan := models.MergePlan{Users: []models.User{testUser("a@example.com")}}

	tests := []struct {
		name  string
		setup func(repo *mock.MockRepository, merger *mock.MockMergeService)
		want  error
	}{
		{
			name: "state read fails",
			setup: func(repo *mock.MockRepository, merger *mock.MockMergeService) {
				repo.EXPECT().State(gomock.Any()).Return(models.State{}, boom)
			},
			want: boom,
		},
		{
			name: "plan fails",
			setup: func(repo *mock.MockRepository, merger *mock.MockMergeService) {
				repo.EXPECT().State(gomock.Any()).Return(models.NewState(), nil)
				merger.EXPECT().BuildMergePlan(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.MergePlan{}, models.MergeResult{}, context.Canceled)
			},
			want: context.Canceled,
		},
		{
			name: "apply fails",
			setup: func(repo *mock.MockRepository, merger *mock.MockMergeService) {
				repo.EXPECT().State(gomock.Any()).Return(models.NewState(), nil)
				merger.EXPECT().BuildMergePlan(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(plan, models.MergeResult{UsersAdded: 1}, nil)
				repo.EXPECT().ApplyMergePlan(gomock.Any(), plan).Return(boom)
			},
			want: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRepository(ctrl)
			merger := mock.NewMockMergeService(ctrl)
			tt.setup(repo, merger)

			svc := NewSnapshotService(repo, merger, nil, validators.NewRecordValidator(), logger.Nop())
			result, err := svc.Merge(context.Background(), models.NewState().Snapshot(testNow))
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, result)
		})
	}
}
