// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/Masterminds/semver/v3"

	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/internal/validators"
	"github.com/MKhiriev/team-vault/models"
)

// SupportedSnapshotVersions is the semver constraint an incoming snapshot's
// version must satisfy.
const SupportedSnapshotVersions = "^1"

var snapshotKeys = []string{"version", "exportedAt", "users", "passwords", "teams"}

// ParseSnapshot decodes and checks an incoming snapshot.
//
// All five top-level keys must be present, the version must satisfy
// [SupportedSnapshotVersions], every record must pass v, users must be keyed
// by their lowercased email and teams by their id. The returned snapshot is
// normalized: owner keys are lowercased, nil lists are empty and team
// entries carry their team id. Any failure is a *errs.SnapshotError.
func ParseSnapshot(ctx context.Context, data []byte, v validators.Validator) (models.Snapshot, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return models.Snapshot{}, errs.NewSnapshotError("malformed JSON", err)
	}
	for _, key := range snapshotKeys {
		raw, ok := top[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return models.Snapshot{}, errs.NewSnapshotError(fmt.Sprintf("missing %q", key), nil)
		}
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, errs.NewSnapshotError("malformed records", err)
	}

	if err := checkVersion(snap.Version); err != nil {
		return models.Snapshot{}, err
	}

	users, err := normalizeUsers(ctx, snap.Users, v)
	if err != nil {
		return models.Snapshot{}, err
	}
	passwords, err := normalizePasswords(ctx, snap.Passwords, v)
	if err != nil {
		return models.Snapshot{}, err
	}
	teams, err := normalizeTeams(ctx, snap.Teams, v)
	if err != nil {
		return models.Snapshot{}, err
	}

	snap.Users, snap.Passwords, snap.Teams = users, passwords, teams
	return snap, nil
}

func checkVersion(version string) error {
	ver, err := semver.NewVersion(version)
	if err != nil {
		return errs.NewSnapshotError(fmt.Sprintf("bad version %q", version), err)
	}
	constraint, err := semver.NewConstraint(SupportedSnapshotVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(ver) {
		return errs.NewSnapshotError(fmt.Sprintf("unsupported version %q", version), nil)
	}
	return nil
}

func normalizeUsers(ctx context.Context, in map[string]models.User, v validators.Validator) (map[string]models.User, error) {
	out := make(map[string]models.User, len(in))
	for _, key := range slices.Sorted(maps.Keys(in)) {
		u := in[key]
		if err := v.Validate(ctx, u); err != nil {
			return nil, errs.NewSnapshotError(fmt.Sprintf("users[%s]", key), err)
		}
		email := models.NormalizeEmail(u.Email)
		if models.NormalizeEmail(key) != email {
			return nil, errs.NewSnapshotError(fmt.Sprintf("users[%s]: key does not match email %q", key, u.Email), nil)
		}
		if _, dup := out[email]; dup {
			return nil, errs.NewSnapshotError(fmt.Sprintf("users[%s]: duplicate email", key), nil)
		}
		if u.Teams == nil {
			u.Teams = []string{}
		}
		out[email] = u
	}
	return out, nil
}

func normalizePasswords(ctx context.Context, in map[string][]models.PasswordEntry, v validators.Validator) (map[string][]models.PasswordEntry, error) {
	out := make(map[string][]models.PasswordEntry, len(in))
	for _, key := range slices.Sorted(maps.Keys(in)) {
		owner := models.NormalizeEmail(key)
		for i, e := range in[key] {
			if err := v.Validate(ctx, e); err != nil {
				return nil, errs.NewSnapshotError(fmt.Sprintf("passwords[%s][%d]", key, i), err)
			}
			e.TeamID = ""
			out[owner] = append(out[owner], e)
		}
		if out[owner] == nil {
			out[owner] = []models.PasswordEntry{}
		}
	}
	return out, nil
}

func normalizeTeams(ctx context.Context, in map[string]models.Team, v validators.Validator) (map[string]models.Team, error) {
	out := make(map[string]models.Team, len(in))
	for _, key := range slices.Sorted(maps.Keys(in)) {
		t := in[key]
		if t.Members == nil {
			t.Members = []models.Member{}
		}
		if t.Passwords == nil {
			t.Passwords = []models.PasswordEntry{}
		}
		if err := v.Validate(ctx, t); err != nil {
			return nil, errs.NewSnapshotError(fmt.Sprintf("teams[%s]", key), err)
		}
		if key != t.ID {
			return nil, errs.NewSnapshotError(fmt.Sprintf("teams[%s]: key does not match id %q", key, t.ID), nil)
		}
		for i := range t.Passwords {
			t.Passwords[i].TeamID = t.ID
		}
		out[key] = t
	}
	return out, nil
}

// EncodeSnapshot renders snap as indented canonical JSON.
func EncodeSnapshot(snap models.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}
