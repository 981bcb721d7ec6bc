package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/team-vault/internal/crypto"
	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/store"
	"github.com/MKhiriev/team-vault/internal/validators"
	"github.com/MKhiriev/team-vault/models"
)

// snapshotService is the concrete implementation of SnapshotService.
type snapshotService struct {
	repo      store.Repository
	merger    MergeService
	cipher    crypto.SymmetricCipher
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time
}

// NewSnapshotService constructs a SnapshotService over repo.
func NewSnapshotService(repo store.Repository, merger MergeService, cipher crypto.SymmetricCipher, validator validators.Validator, log *logger.Logger) SnapshotService {
	return &snapshotService{
		repo:      repo,
		merger:    merger,
		cipher:    cipher,
		validator: validator,
		logger:    log,
		now:       time.Now,
	}
}

func (s *snapshotService) Export(ctx context.Context) (models.Snapshot, error) {
	st, err := s.repo.State(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "snapshotService.Export").Msg("failed to read store")
		return models.Snapshot{}, fmt.Errorf("read store: %w", err)
	}
	return st.Snapshot(s.now().UTC()), nil
}

func (s *snapshotService) ExportJSON(ctx context.Context) ([]byte, error) {
	snap, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	return EncodeSnapshot(snap)
}

func (s *snapshotService) Import(ctx context.Context, data []byte) (models.MergeResult, error) {
	snap, err := ParseSnapshot(ctx, data, s.validator)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "snapshotService.Import").Msg("snapshot rejected")
		return models.MergeResult{}, err
	}
	return s.Merge(ctx, snap)
}

func (s *snapshotService) Merge(ctx context.Context, snapshot models.Snapshot) (models.MergeResult, error) {
	log := logger.FromContext(ctx)

	local, err := s.repo.State(ctx)
	if err != nil {
		log.Err(err).Str("func", "snapshotService.Merge").Msg("failed to read store")
		return models.MergeResult{}, fmt.Errorf("read store: %w", err)
	}

	plan, result, err := s.merger.BuildMergePlan(ctx, local, snapshot)
	if err != nil {
		return models.MergeResult{}, fmt.Errorf("build merge plan: %w", err)
	}
	if plan.Empty() {
		log.Debug().Str("func", "snapshotService.Merge").Msg("snapshot already merged")
		return result, nil
	}

	if err = s.repo.ApplyMergePlan(ctx, plan); err != nil {
		log.Err(err).Str("func", "snapshotService.Merge").Msg("failed to apply merge plan")
		return models.MergeResult{}, fmt.Errorf("apply merge plan: %w", err)
	}

	log.Info().
		Int("users_added", result.UsersAdded).
		Int("users_updated", result.UsersUpdated).
		Int("passwords_added", result.PasswordsAdded).
		Int("teams_added", result.TeamsAdded).
		Int("members_added", result.MembersAdded).
		Int("team_passwords_added", result.TeamPasswordsAdded).
		Msg("snapshot merged")

	return result, nil
}

func (s *snapshotService) ExportEncrypted(ctx context.Context, sess *models.Session, passphrase string) (models.CipherBundle, error) {
	if passphrase == "" {
		if !sess.Valid() {
			return models.CipherBundle{}, ErrInvalidSession
		}
		passphrase = sess.MasterKey()
	}

	snap, err := s.Export(ctx)
	if err != nil {
		return models.CipherBundle{}, err
	}

	bundle, err := s.cipher.Encrypt(snap, passphrase)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "snapshotService.ExportEncrypted").Msg("failed to encrypt snapshot")
		return models.CipherBundle{}, fmt.Errorf("encrypt snapshot: %w", err)
	}
	return bundle, nil
}

func (s *snapshotService) ImportEncrypted(ctx context.Context, data []byte, passphrase string) (models.MergeResult, error) {
	var bundle models.CipherBundle
	if err := json.Unmarshal(data, &bundle); err != nil || bundle.Encrypted == "" {
		return models.MergeResult{}, errs.ErrDecryption
	}

	var plaintext json.RawMessage
	if err := s.cipher.Decrypt(bundle, passphrase, &plaintext); err != nil {
		logger.FromContext(ctx).Warn().Str("func", "snapshotService.ImportEncrypted").Msg("could not decrypt snapshot")
		return models.MergeResult{}, err
	}

	return s.Import(ctx, plaintext)
}
