package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/utils"
	"github.com/MKhiriev/team-vault/models"
)

// fileSyncService is the concrete implementation of FileSyncService. It is
// the auto-sync path: the shared file is merged in and then rewritten with
// the merged store, so every device that syncs against it converges.
type fileSyncService struct {
	snapshots SnapshotService
	logger    *logger.Logger
}

// NewFileSyncService constructs a FileSyncService on top of snapshots.
func NewFileSyncService(snapshots SnapshotService, log *logger.Logger) FileSyncService {
	return &fileSyncService{snapshots: snapshots, logger: log}
}

// Load implements FileSyncService. Cancelling ctx during the read leaves
// the store untouched.
func (f *fileSyncService) Load(ctx context.Context, path string) (models.MergeResult, error) {
	log := logger.FromContext(ctx)

	data, err := utils.ReadFileContext(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", path).Msg("sync file does not exist yet")
		return models.MergeResult{}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "fileSyncService.Load").Str("path", path).Msg("failed to read sync file")
		return models.MergeResult{}, fmt.Errorf("read sync file: %w", err)
	}

	return f.snapshots.Import(ctx, data)
}

// Save implements FileSyncService.
func (f *fileSyncService) Save(ctx context.Context, path string) error {
	data, err := f.snapshots.ExportJSON(ctx)
	if err != nil {
		return err
	}

	if err = utils.WriteFileAtomic(ctx, path, data, 0o600); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileSyncService.Save").Str("path", path).Msg("failed to write sync file")
		return fmt.Errorf("write sync file: %w", err)
	}
	return nil
}

// Sync implements FileSyncService.
func (f *fileSyncService) Sync(ctx context.Context, path string) (models.MergeResult, error) {
	result, err := f.Load(ctx, path)
	if err != nil {
		return models.MergeResult{}, err
	}
	if err = f.Save(ctx, path); err != nil {
		return result, err
	}
	return result, nil
}
