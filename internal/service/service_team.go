package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/team-vault/internal/crypto"
	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/store"
	"github.com/MKhiriev/team-vault/internal/validators"
	"github.com/MKhiriev/team-vault/models"
)

// maxInviteCodeAttempts bounds the search for an unused invite code.
const maxInviteCodeAttempts = 10

// teamService is the concrete implementation of TeamService.
type teamService struct {
	teams     store.TeamRepository
	generator crypto.CredentialGenerator
	ids       IDGenerator
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time
}

// NewTeamService constructs a TeamService.
func NewTeamService(teams store.TeamRepository, generator crypto.CredentialGenerator, ids IDGenerator, validator validators.Validator, log *logger.Logger) TeamService {
	return &teamService{
		teams:     teams,
		generator: generator,
		ids:       ids,
		validator: validator,
		logger:    log,
		now:       time.Now,
	}
}

// CreateTeam implements TeamService. The creator becomes the team's admin.
func (s *teamService) CreateTeam(ctx context.Context, sess *models.Session, name string) (models.Team, error) {
	if err := requireSession(sess); err != nil {
		return models.Team{}, err
	}
	log := logger.FromContext(ctx)

	code, err := s.uniqueInviteCode(ctx)
	if err != nil {
		log.Err(err).Str("func", "teamService.CreateTeam").Msg("no invite code available")
		return models.Team{}, err
	}

	profile := sess.Profile()
	team := models.Team{
		ID:         s.ids.Generate(),
		Name:       name,
		InviteCode: code,
		CreatedBy:  sess.Email(),
		CreatedAt:  s.now().UTC(),
		Members: []models.Member{{
			Email: sess.Email(),
			Name:  profile.Name,
			Role:  models.MemberRoleAdmin,
		}},
		Passwords: []models.PasswordEntry{},
	}
	if err = s.validator.Validate(ctx, team); err != nil {
		return models.Team{}, err
	}

	if err = s.teams.CreateTeam(ctx, team); err != nil {
		log.Err(err).Str("func", "teamService.CreateTeam").Msg("failed to create team")
		return models.Team{}, fmt.Errorf("create team: %w", err)
	}

	log.Info().Str("team_id", team.ID).Str("by", sess.Email()).Msg("team created")
	return team, nil
}

func (s *teamService) uniqueInviteCode(ctx context.Context) (string, error) {
	for range maxInviteCodeAttempts {
		code, err := s.generator.GenerateInviteCode()
		if err != nil {
			return "", fmt.Errorf("generate invite code: %w", err)
		}

		_, err = s.teams.FindTeamByInviteCode(ctx, code)
		if errors.Is(err, store.ErrTeamNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("look up invite code: %w", err)
		}
	}
	return "", ErrInviteCodeExhausted
}

// JoinTeam implements TeamService.
func (s *teamService) JoinTeam(ctx context.Context, sess *models.Session, inviteCode string) (models.Team, error) {
	if err := requireSession(sess); err != nil {
		return models.Team{}, err
	}

	code := models.NormalizeInviteCode(inviteCode)
	if code == "" {
		return models.Team{}, ErrInvalidInviteCode
	}

	team, err := s.teams.FindTeamByInviteCode(ctx, code)
	if errors.Is(err, store.ErrTeamNotFound) {
		return models.Team{}, ErrInvalidInviteCode
	}
	if err != nil {
		return models.Team{}, fmt.Errorf("look up invite code: %w", err)
	}
	if team.HasMember(sess.Email()) {
		return models.Team{}, ErrAlreadyMember
	}

	member := models.Member{
		Email: sess.Email(),
		Name:  sess.Profile().Name,
		Role:  models.MemberRoleMember,
	}
	if err = s.teams.AddTeamMember(ctx, team.ID, member); err != nil {
		if errors.Is(err, store.ErrMemberExists) {
			return models.Team{}, ErrAlreadyMember
		}
		logger.FromContext(ctx).Err(err).Str("func", "teamService.JoinTeam").Str("team_id", team.ID).Msg("failed to add member")
		return models.Team{}, fmt.Errorf("add member: %w", err)
	}

	team.Members = append(team.Members, member)
	logger.FromContext(ctx).Info().Str("team_id", team.ID).Str("email", member.Email).Msg("member joined team")
	return team, nil
}

// ListTeams implements TeamService.
func (s *teamService) ListTeams(ctx context.Context, sess *models.Session) ([]models.Team, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	return memberTeams(ctx, s.teams, sess.Email())
}

// GetTeam implements TeamService.
func (s *teamService) GetTeam(ctx context.Context, sess *models.Session, teamID string) (models.Team, error) {
	if err := requireSession(sess); err != nil {
		return models.Team{}, err
	}

	team, err := s.teams.GetTeam(ctx, teamID)
	if err != nil {
		return models.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !team.HasMember(sess.Email()) {
		return models.Team{}, ErrNotTeamMember
	}
	return team, nil
}

// SaveTeamPassword implements TeamService.
func (s *teamService) SaveTeamPassword(ctx context.Context, sess *models.Session, teamID string, entry models.PasswordEntry) (models.PasswordEntry, error) {
	if _, err := s.GetTeam(ctx, sess, teamID); err != nil {
		return models.PasswordEntry{}, err
	}

	if entry.ID == "" {
		entry.ID = s.ids.Generate()
	}
	entry.TeamID = teamID
	if err := s.validator.Validate(ctx, entry); err != nil {
		return models.PasswordEntry{}, err
	}

	saved, err := s.teams.SaveTeamPassword(ctx, teamID, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "teamService.SaveTeamPassword").
			Str("team_id", teamID).
			Str("id", entry.ID).
			Msg("failed to save team password")
		return models.PasswordEntry{}, fmt.Errorf("save team password: %w", err)
	}
	return saved, nil
}

// DeleteTeamPassword implements TeamService.
func (s *teamService) DeleteTeamPassword(ctx context.Context, sess *models.Session, teamID, id string) error {
	if _, err := s.GetTeam(ctx, sess, teamID); err != nil {
		return err
	}

	if err := s.teams.DeleteTeamPassword(ctx, teamID, id); err != nil {
		return fmt.Errorf("delete team password: %w", err)
	}
	return nil
}
