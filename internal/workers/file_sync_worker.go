package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/service"
	"github.com/MKhiriev/team-vault/models"
)

// DefaultSyncInterval is used when a FileSyncWorker is given no interval.
const DefaultSyncInterval = 30 * time.Second

// FileSyncWorker calls FileSyncService.Sync against one path on a ticker.
// A failed round is logged and retried on the next tick.
type FileSyncWorker struct {
	syncer   service.FileSyncService
	path     string
	interval time.Duration

	// OnResult, when set, receives the result of every successful round.
	OnResult func(models.MergeResult)
}

func NewFileSyncWorker(syncer service.FileSyncService, path string, interval time.Duration) *FileSyncWorker {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &FileSyncWorker{syncer: syncer, path: path, interval: interval}
}

// Run implements Worker. The first round runs immediately.
func (w *FileSyncWorker) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info().Str("path", w.path).Dur("interval", w.interval).Msg("file sync started")

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		w.round(ctx)

		select {
		case <-ctx.Done():
		case <-t.C:
		}
		if ctx.Err() != nil {
			log.Info().Str("path", w.path).Msg("file sync stopped")
			return nil
		}
	}
}

func (w *FileSyncWorker) round(ctx context.Context) {
	result, err := w.syncer.Sync(ctx, w.path)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.FromContext(ctx).Err(err).
				Str("func", "FileSyncWorker.Run").
				Str("path", w.path).
				Msg("sync round failed")
		}
		return
	}
	if w.OnResult != nil {
		w.OnResult(result)
	}
}
