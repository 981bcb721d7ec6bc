package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/team-vault/internal/config"
	"github.com/MKhiriev/team-vault/internal/logger"
)

// NewRepository opens the store backend selected by cfg.Driver:
//   - "file": the JSON document at cfg.File.Path (":memory:" keeps it in
//     memory only);
//   - "sqlite": the database at cfg.DB.DSN, migrated to the latest schema.
func NewRepository(ctx context.Context, cfg config.Storage, log *logger.Logger) (Repository, error) {
	log.Debug().Str("driver", cfg.Driver).Msg("opening record store")

	switch cfg.Driver {
	case config.DriverFile, "":
		repo, err := NewFileRepository(cfg.File.Path, log)
		if err != nil {
			return nil, fmt.Errorf("file store: %w", err)
		}
		return repo, nil

	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return NewSQLiteRepository(db, log), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
