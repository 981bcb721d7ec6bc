// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/internal/validators"
	"github.com/MKhiriev/team-vault/models"
)

// rawSnapshot encodes snap into a generic map so single keys can be broken.
func rawSnapshot(t *testing.T, snap models.Snapshot) map[string]any {
	t.Helper()
	data, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	return raw
}

func encodeRaw(t *testing.T, raw map[string]any) []byte {
	t.Helper()
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	return data
}

func validSnapshot() models.Snapshot {
	tm := testTeam("t1", "ABCD1234", "a@example.com")
	tm.Passwords = []models.PasswordEntry{testEntry("tp1", "Prod DB")}
	return snapshotOf(
		[]models.User{testUser("a@example.com")},
		map[string][]models.PasswordEntry{"a@example.com": {testEntry("p1", "GitHub")}},
		tm,
	)
}

func TestParseSnapshot_Valid(t *testing.T) {
	data, err := EncodeSnapshot(validSnapshot())
	require.NoError(t, err)

	snap, err := ParseSnapshot(context.Background(), data, validators.NewRecordValidator())
	require.NoError(t, err)

	assert.Equal(t, models.SnapshotVersion, snap.Version)
	assert.True(t, testNow.Equal(snap.ExportedAt))
	assert.Contains(t, snap.Users, "a@example.com")
	assert.Equal(t, []string{"p1"}, entryIDs(snap.Passwords["a@example.com"]))
	assert.Equal(t, "t1", snap.Teams["t1"].Passwords[0].TeamID)
}

func TestParseSnapshot_Normalizes(t *testing.T) {
	raw := rawSnapshot(t, validSnapshot())

	passwords := raw["passwords"].(map[string]any)
	passwords["Mixed@Example.COM"] = passwords["a@example.com"]
	delete(passwords, "a@example.com")

	users := raw["users"].(map[string]any)
	u := users["a@example.com"].(map[string]any)
	delete(u, "teams")
	delete(u, "role")
	delete(u, "status")

	teams := raw["teams"].(map[string]any)
	tm := teams["t1"].(map[string]any)
	delete(tm, "passwords")

	snap, err := ParseSnapshot(context.Background(), encodeRaw(t, raw), validators.NewRecordValidator())
	require.NoError(t, err)

	assert.Contains(t, snap.Passwords, "mixed@example.com")
	assert.NotContains(t, snap.Passwords, "Mixed@Example.COM")

	got := snap.Users["a@example.com"]
	assert.NotNil(t, got.Teams)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.Equal(t, models.StatusActive, got.Status)

	assert.NotNil(t, snap.Teams["t1"].Passwords)
	assert.Empty(t, snap.Teams["t1"].Passwords)
}

func TestParseSnapshot_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw map[string]any)
	}{
		{
			name:   "missing users",
			mutate: func(raw map[string]any) { delete(raw, "users") },
		},
		{
			name:   "missing version",
			mutate: func(raw map[string]any) { delete(raw, "version") },
		},
		{
			name:   "null teams",
			mutate: func(raw map[string]any) { raw["teams"] = nil },
		},
		{
			name:   "users is a list",
			mutate: func(raw map[string]any) { raw["users"] = []any{} },
		},
		{
			name:   "unsupported major version",
			mutate: func(raw map[string]any) { raw["version"] = "2.0" },
		},
		{
			name:   "garbage version",
			mutate: func(raw map[string]any) { raw["version"] = "latest" },
		},
		{
			name: "user key differs from email",
			mutate: func(raw map[string]any) {
				users := raw["users"].(map[string]any)
				users["b@example.com"] = users["a@example.com"]
				delete(users, "a@example.com")
			},
		},
		{
			name: "user with bad email",
			mutate: func(raw map[string]any) {
				users := raw["users"].(map[string]any)
				users["a@example.com"].(map[string]any)["email"] = "not-an-email"
			},
		},
		{
			name: "entry without title",
			mutate: func(raw map[string]any) {
				list := raw["passwords"].(map[string]any)["a@example.com"].([]any)
				delete(list[0].(map[string]any), "title")
			},
		},
		{
			name: "team key differs from id",
			mutate: func(raw map[string]any) {
				teams := raw["teams"].(map[string]any)
				teams["other"] = teams["t1"]
				delete(teams, "t1")
			},
		},
		{
			name: "team with short invite code",
			mutate: func(raw map[string]any) {
				raw["teams"].(map[string]any)["t1"].(map[string]any)["inviteCode"] = "ABC"
			},
		},
		{
			name: "member with bad role",
			mutate: func(raw map[string]any) {
				tm := raw["teams"].(map[string]any)["t1"].(map[string]any)
				tm["members"].([]any)[0].(map[string]any)["role"] = "owner"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawSnapshot(t, validSnapshot())
			tt.mutate(raw)

			_, err := ParseSnapshot(context.Background(), encodeRaw(t, raw), validators.NewRecordValidator())
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidSnapshot)

			var se *errs.SnapshotError
			assert.ErrorAs(t, err, &se)
		})
	}
}

func TestParseSnapshot_MalformedJSON(t *testing.T) {
	for _, data := range []string{"", "{", "[]", `"snapshot"`} {
		_, err := ParseSnapshot(context.Background(), []byte(data), validators.NewRecordValidator())
		assert.ErrorIs(t, err, errs.ErrInvalidSnapshot, "input %q", data)
	}
}

func TestParseSnapshot_RecordErrorKeepsValidationCause(t *testing.T) {
	raw := rawSnapshot(t, validSnapshot())
	raw["users"].(map[string]any)["a@example.com"].(map[string]any)["name"] = ""

	_, err := ParseSnapshot(context.Background(), encodeRaw(t, raw), validators.NewRecordValidator())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)
}

func TestParseSnapshot_AcceptsMinorVersions(t *testing.T) {
	for _, version := range []string{"1", "1.0", "1.4", "1.0.2"} {
		raw := rawSnapshot(t, validSnapshot())
		raw["version"] = version

		_, err := ParseSnapshot(context.Background(), encodeRaw(t, raw), validators.NewRecordValidator())
		assert.NoError(t, err, "version %s", version)
	}
}

func TestEncodeSnapshot_HasAllKeys(t *testing.T) {
	data, err := EncodeSnapshot(models.NewState().Snapshot(testNow))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range snapshotKeys {
		assert.Contains(t, raw, key)
	}
	assert.JSONEq(t, `{}`, string(raw["users"]))
	assert.JSONEq(t, `"1.0"`, string(raw["version"]))
}
