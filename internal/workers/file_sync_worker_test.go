package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/team-vault/internal/mock"
	"github.com/MKhiriev/team-vault/models"
)

func TestFileSyncWorker_RunsImmediatelyAndOnTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := mock.NewMockFileSyncService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rounds atomic.Int32
	syncer.EXPECT().Sync(gomock.Any(), "/shared/db.json").
		DoAndReturn(func(context.Context, string) (models.MergeResult, error) {
			if rounds.Add(1) == 3 {
				cancel()
			}
			return models.MergeResult{PasswordsAdded: 1}, nil
		}).MinTimes(3)

	w := NewFileSyncWorker(syncer, "/shared/db.json", 10*time.Millisecond)
	var added atomic.Int32
	w.OnResult = func(r models.MergeResult) { added.Add(int32(r.PasswordsAdded)) }

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.GreaterOrEqual(t, added.Load(), int32(3))
}

func TestFileSyncWorker_KeepsGoingAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := mock.NewMockFileSyncService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		syncer.EXPECT().Sync(gomock.Any(), "db.json").Return(models.MergeResult{}, errors.New("disk busy")),
		syncer.EXPECT().Sync(gomock.Any(), "db.json").DoAndReturn(func(context.Context, string) (models.MergeResult, error) {
			cancel()
			return models.MergeResult{}, nil
		}),
	)

	w := NewFileSyncWorker(syncer, "db.json", 5*time.Millisecond)
	var results atomic.Int32
	w.OnResult = func(models.MergeResult) { results.Add(1) }

	assert.NoError(t, w.Run(ctx))
	assert.Equal(t, int32(1), results.Load())
}

func TestNewFileSyncWorker_DefaultInterval(t *testing.T) {
	w := NewFileSyncWorker(nil, "db.json", 0)
	assert.Equal(t, DefaultSyncInterval, w.interval)
}
