package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/store"
	"github.com/MKhiriev/team-vault/internal/validators"
	"github.com/MKhiriev/team-vault/models"
)

// vaultService is the concrete implementation of VaultService.
type vaultService struct {
	passwords store.PasswordRepository
	teams     store.TeamRepository
	ids       IDGenerator
	validator validators.Validator
	logger    *logger.Logger
}

// NewVaultService constructs a VaultService. ids assigns identifiers to
// new entries.
func NewVaultService(passwords store.PasswordRepository, teams store.TeamRepository, ids IDGenerator, validator validators.Validator, log *logger.Logger) VaultService {
	return &vaultService{
		passwords: passwords,
		teams:     teams,
		ids:       ids,
		validator: validator,
		logger:    log,
	}
}

// ListPasswords implements VaultService.
//
// Counts are taken before the view and query are applied, like the badges
// of a sidebar; the team count honours filter.TeamID.
func (v *vaultService) ListPasswords(ctx context.Context, sess *models.Session, filter models.PasswordFilter) (models.PasswordListing, error) {
	if err := requireSession(sess); err != nil {
		return models.PasswordListing{}, err
	}

	personal, err := v.passwords.GetPasswords(ctx, sess.Email())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.ListPasswords").Msg("failed to load personal passwords")
		return models.PasswordListing{}, fmt.Errorf("load personal passwords: %w", err)
	}

	teams, err := memberTeams(ctx, v.teams, sess.Email())
	if err != nil {
		return models.PasswordListing{}, err
	}
	team := make([]models.PasswordEntry, 0)
	for _, t := range teams {
		if filter.TeamID != "" && t.ID != filter.TeamID {
			continue
		}
		team = append(team, t.Passwords...)
	}

	listing := models.PasswordListing{
		PersonalCount: len(personal),
		TeamCount:     len(team),
		Personal:      make([]models.PasswordEntry, 0),
		Team:          make([]models.PasswordEntry, 0),
	}

	view := filter.View
	if view == "" {
		view = models.FilterAll
	}
	if view == models.FilterAll || view == models.FilterPersonal {
		listing.Personal = matching(personal, filter.Query)
	}
	if view == models.FilterAll || view == models.FilterTeam {
		listing.Team = matching(team, filter.Query)
	}

	return listing, nil
}

// GetPassword implements VaultService.
func (v *vaultService) GetPassword(ctx context.Context, sess *models.Session, id string) (models.PasswordEntry, error) {
	if err := requireSession(sess); err != nil {
		return models.PasswordEntry{}, err
	}

	personal, err := v.passwords.GetPasswords(ctx, sess.Email())
	if err != nil {
		return models.PasswordEntry{}, fmt.Errorf("load personal passwords: %w", err)
	}
	for _, e := range personal {
		if e.ID == id {
			return e, nil
		}
	}

	teams, err := memberTeams(ctx, v.teams, sess.Email())
	if err != nil {
		return models.PasswordEntry{}, err
	}
	for _, t := range teams {
		if i := t.FindPassword(id); i >= 0 {
			return t.Passwords[i], nil
		}
	}

	return models.PasswordEntry{}, ErrPasswordNotFound
}

// SavePassword implements VaultService.
func (v *vaultService) SavePassword(ctx context.Context, sess *models.Session, entry models.PasswordEntry) (models.PasswordEntry, error) {
	if err := requireSession(sess); err != nil {
		return models.PasswordEntry{}, err
	}

	if entry.ID == "" {
		entry.ID = v.ids.Generate()
	}
	entry.TeamID = ""
	if err := v.validator.Validate(ctx, entry); err != nil {
		return models.PasswordEntry{}, err
	}

	saved, err := v.passwords.SavePassword(ctx, sess.Email(), entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultService.SavePassword").
			Str("id", entry.ID).
			Msg("failed to save password")
		return models.PasswordEntry{}, fmt.Errorf("save password: %w", err)
	}
	return saved, nil
}

// DeletePassword implements VaultService.
func (v *vaultService) DeletePassword(ctx context.Context, sess *models.Session, id string) error {
	if err := requireSession(sess); err != nil {
		return err
	}

	if err := v.passwords.DeletePassword(ctx, sess.Email(), id); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultService.DeletePassword").
			Str("id", id).
			Msg("failed to delete password")
		return fmt.Errorf("delete password: %w", err)
	}
	return nil
}

func matching(entries []models.PasswordEntry, query string) []models.PasswordEntry {
	out := make([]models.PasswordEntry, 0, len(entries))
	for _, e := range entries {
		if e.Matches(query) {
			out = append(out, e)
		}
	}
	return out
}

// memberTeams returns the teams that list email as a member.
func memberTeams(ctx context.Context, teams store.TeamRepository, email string) ([]models.Team, error) {
	all, err := teams.ListTeams(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "memberTeams").Msg("failed to list teams")
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]models.Team, 0, len(all))
	for _, t := range all {
		if t.HasMember(email) {
			out = append(out, t)
		}
	}
	return out, nil
}
