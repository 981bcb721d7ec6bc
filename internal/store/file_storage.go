// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/internal/utils"
	"github.com/MKhiriev/team-vault/models"
)

// MemoryPath makes the document store keep its state in memory only.
const MemoryPath = ":memory:"

// fileStorage keeps the whole store in memory and mirrors it to a single
// JSON document shaped like an exported snapshot.
//
// Writes go through update, which mutates a copy of the state, persists the
// copy and only then swaps it in; a failed write leaves the store unchanged.
type fileStorage struct {
	path     string
	inMemory bool
	logger   *logger.Logger
	now      func() time.Time

	mu    sync.RWMutex
	state models.State
}

// NewFileRepository opens (or lazily creates) the document store at path.
func NewFileRepository(path string, log *logger.Logger) (Repository, error) {
	return newFileStorage(path, log)
}

func newFileStorage(path string, log *logger.Logger) (*fileStorage, error) {
	if path == "" {
		path = MemoryPath
	}

	s := &fileStorage{
		path:     path,
		inMemory: path == MemoryPath,
		logger:   log,
		now:      time.Now,
		state:    models.NewState(),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read store file: %w", err)
	}

	var snap models.Snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode store file: %w", err)
	}

	st := snap.State()
	if st.Users == nil {
		st.Users = make(map[string]models.User)
	}
	if st.Passwords == nil {
		st.Passwords = make(map[string][]models.PasswordEntry)
	}
	if st.Teams == nil {
		st.Teams = make(map[string]models.Team)
	}
	s.state = st

	s.logger.Debug().
		Str("path", s.path).
		Int("users", len(st.Users)).
		Int("teams", len(st.Teams)).
		Msg("record store loaded")

	return nil
}

// persist writes st to a temporary file next to the store and renames it
// over the old document.
func (s *fileStorage) persist(ctx context.Context, st models.State) error {
	if s.inMemory {
		return nil
	}

	payload, err := json.MarshalIndent(st.Snapshot(s.now()), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode store: %w", ErrPersisting, err)
	}

	if err = utils.WriteFileAtomic(ctx, s.path, payload, 0o600); err != nil {
		return fmt.Errorf("%w: write store file: %w", ErrPersisting, err)
	}
	return nil
}

// update runs fn against a copy of the state and commits the copy when both
// fn and persisting succeed.
func (s *fileStorage) update(ctx context.Context, fn func(st *models.State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.persist(ctx, next); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fileStorage.update").
			Str("path", s.path).
			Msg("failed to persist record store")
		return err
	}

	s.state = next
	return nil
}

func (s *fileStorage) GetUser(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.state.Users[models.NormalizeEmail(email)]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u.Clone(), nil
}

func (s *fileStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.state.Users))
	for _, u := range s.state.Users {
		users = append(users, u.Clone())
	}
	sortUsers(users)
	return users, nil
}

func (s *fileStorage) CountUsers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.state.Users), nil
}

func (s *fileStorage) SaveUser(ctx context.Context, user models.User) error {
	return s.update(ctx, func(st *models.State) error {
		st.Users[models.NormalizeEmail(user.Email)] = user.Clone()
		return nil
	})
}

func (s *fileStorage) GetPasswords(ctx context.Context, ownerEmail string) ([]models.PasswordEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.state.Passwords[models.NormalizeEmail(ownerEmail)]
	out := make([]models.PasswordEntry, len(list))
	copy(out, list)
	return out, nil
}

func (s *fileStorage) SavePassword(ctx context.Context, ownerEmail string, entry models.PasswordEntry) (models.PasswordEntry, error) {
	key := models.NormalizeEmail(ownerEmail)
	entry.TeamID = ""

	var stored models.PasswordEntry
	err := s.update(ctx, func(st *models.State) error {
		st.Passwords[key], stored = upsertEntry(st.Passwords[key], entry, s.now())
		return nil
	})
	return stored, err
}

func (s *fileStorage) DeletePassword(ctx context.Context, ownerEmail, id string) error {
	key := models.NormalizeEmail(ownerEmail)

	return s.update(ctx, func(st *models.State) error {
		if list, ok := st.Passwords[key]; ok {
			st.Passwords[key] = removeEntry(list, id)
		}
		return nil
	})
}

func (s *fileStorage) GetTeam(ctx context.Context, id string) (models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.state.Teams[id]
	if !ok {
		return models.Team{}, ErrTeamNotFound
	}
	return t.Clone(), nil
}

func (s *fileStorage) ListTeams(ctx context.Context) ([]models.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]models.Team, 0, len(s.state.Teams))
	for _, t := range s.state.Teams {
		teams = append(teams, t.Clone())
	}
	sortTeams(teams)
	return teams, nil
}

func (s *fileStorage) FindTeamByInviteCode(ctx context.Context, code string) (models.Team, error) {
	teams, err := s.ListTeams(ctx)
	if err != nil {
		return models.Team{}, err
	}

	code = models.NormalizeInviteCode(code)
	for _, t := range teams {
		if models.NormalizeInviteCode(t.InviteCode) == code {
			return t, nil
		}
	}
	return models.Team{}, ErrTeamNotFound
}

func (s *fileStorage) CreateTeam(ctx context.Context, team models.Team) error {
	return s.update(ctx, func(st *models.State) error {
		if _, ok := st.Teams[team.ID]; ok {
			return ErrTeamExists
		}
		st.Teams[team.ID] = team.Clone()

		for _, m := range team.Members {
			key := models.NormalizeEmail(m.Email)
			if u, ok := st.Users[key]; ok {
				u.Teams = addTeamID(u.Teams, team.ID)
				st.Users[key] = u
			}
		}
		return nil
	})
}

func (s *fileStorage) AddTeamMember(ctx context.Context, teamID string, member models.Member) error {
	return s.update(ctx, func(st *models.State) error {
		t, ok := st.Teams[teamID]
		if !ok {
			return ErrTeamNotFound
		}
		if t.HasMember(member.Email) {
			return ErrMemberExists
		}
		t.Members = append(t.Members, member)
		st.Teams[teamID] = t

		key := models.NormalizeEmail(member.Email)
		if u, ok := st.Users[key]; ok {
			u.Teams = addTeamID(u.Teams, teamID)
			st.Users[key] = u
		}
		return nil
	})
}

func (s *fileStorage) SaveTeamPassword(ctx context.Context, teamID string, entry models.PasswordEntry) (models.PasswordEntry, error) {
	entry.TeamID = teamID

	var stored models.PasswordEntry
	err := s.update(ctx, func(st *models.State) error {
		t, ok := st.Teams[teamID]
		if !ok {
			return ErrTeamNotFound
		}
		t.Passwords, stored = upsertEntry(t.Passwords, entry, s.now())
		st.Teams[teamID] = t
		return nil
	})
	return stored, err
}

func (s *fileStorage) DeleteTeamPassword(ctx context.Context, teamID, id string) error {
	return s.update(ctx, func(st *models.State) error {
		t, ok := st.Teams[teamID]
		if !ok {
			return ErrTeamNotFound
		}
		t.Passwords = removeEntry(t.Passwords, id)
		st.Teams[teamID] = t
		return nil
	})
}

func (s *fileStorage) State(ctx context.Context) (models.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone(), nil
}

func (s *fileStorage) ApplyMergePlan(ctx context.Context, plan models.MergePlan) error {
	now := s.now()
	return s.update(ctx, func(st *models.State) error {
		for _, u := range plan.Users {
			st.Users[models.NormalizeEmail(u.Email)] = u.Clone()
		}
		for owner, entries := range plan.Passwords {
			key := models.NormalizeEmail(owner)
			st.Passwords[key] = append(st.Passwords[key], stampEntries(entries, now)...)
		}
		for _, t := range plan.Teams {
			t = t.Clone()
			t.Passwords = stampEntries(t.Passwords, now)
			st.Teams[t.ID] = t
		}
		for teamID, members := range plan.Members {
			t, ok := st.Teams[teamID]
			if !ok {
				return fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
			}
			t.Members = append(t.Members, members...)
			st.Teams[teamID] = t
		}
		for teamID, entries := range plan.TeamPasswords {
			t, ok := st.Teams[teamID]
			if !ok {
				return fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
			}
			t.Passwords = append(t.Passwords, stampEntries(entries, now)...)
			st.Teams[teamID] = t
		}
		return nil
	})
}

func (s *fileStorage) Close() error {
	return nil
}
