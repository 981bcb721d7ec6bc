package service

import (
	"fmt"

	"github.com/MKhiriev/team-vault/internal/config"
	"github.com/MKhiriev/team-vault/internal/crypto"
	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/store"
	"github.com/MKhiriev/team-vault/internal/utils"
	"github.com/MKhiriev/team-vault/internal/validators"
)

// Services aggregates every use case of the vault over one repository.
type Services struct {
	AuthService     AuthService
	VaultService    VaultService
	TeamService     TeamService
	MergeService    MergeService
	SnapshotService SnapshotService
	FileSyncService FileSyncService

	Generator crypto.CredentialGenerator
}

// NewServices wires the services with the crypto primitives selected by cfg.
func NewServices(repo store.Repository, cfg config.App, log *logger.Logger) (*Services, error) {
	params := Argon2Params(cfg.Argon2)

	digest, err := crypto.NewDigestEngineFor(cfg.DigestAlgorithm, params)
	if err != nil {
		return nil, fmt.Errorf("digest engine: %w", err)
	}
	cipher, err := crypto.NewSymmetricCipher(cfg.CipherAlgorithm, params)
	if err != nil {
		return nil, fmt.Errorf("symmetric cipher: %w", err)
	}

	validator := validators.NewRecordValidator()
	generator := crypto.NewGenerator()
	ids := utils.NewUUIDGenerator()

	merger := NewMergeService(log)
	snapshots := NewSnapshotService(repo, merger, cipher, validator, log)

	return &Services{
		AuthService:     NewAuthService(repo, digest, validator, cfg, log),
		VaultService:    NewVaultService(repo, repo, ids, validator, log),
		TeamService:     NewTeamService(repo, generator, ids, validator, log),
		MergeService:    merger,
		SnapshotService: snapshots,
		FileSyncService: NewFileSyncService(snapshots, log),
		Generator:       generator,
	}, nil
}

// Argon2Params converts the configured Argon2id costs into crypto
// parameters with a 256-bit key.
func Argon2Params(cfg config.Argon2) crypto.Argon2Params {
	return crypto.Argon2Params{
		Time:    cfg.Time,
		Memory:  cfg.MemoryKiB,
		Threads: cfg.Threads,
		KeyLen:  32,
	}
}
