// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/team-vault/models"
)

// Password entries live in two tables with the same shape, scoped by a
// different column.
const (
	personalEntries = "passwords"
	personalScope   = "owner_email"
	teamEntries     = "team_passwords"
	teamScope       = "team_id"
)

var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var (
	userColumns   = []string{"email", "name", "password_hash", "password_salt", "created_at", "teams", "role", "status"}
	entryColumns  = []string{"id", "title", "username", "password", "url", "notes", "created_at", "updated_at"}
	teamColumns   = []string{"id", "name", "invite_code", "created_by", "created_at"}
	memberColumns = []string{"team_id", "email", "name", "role"}
)

func buildGetUserQuery(email string) (string, []any, error) {
	return sqlBuilder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email_key": models.NormalizeEmail(email)}).
		ToSql()
}

func buildListUsersQuery() (string, []any, error) {
	return sqlBuilder.
		Select(userColumns...).
		From("users").
		OrderBy("created_at", "email_key").
		ToSql()
}

func buildCountUsersQuery() (string, []any, error) {
	return sqlBuilder.Select("COUNT(*)").From("users").ToSql()
}

func buildUpsertUserQuery(u models.User) (string, []any, error) {
	teams := u.Teams
	if teams == nil {
		teams = []string{}
	}
	teamsJSON, err := json.Marshal(teams)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlBuilder.
		Insert("users").
		Columns(append([]string{"email_key"}, userColumns...)...).
		Values(models.NormalizeEmail(u.Email), u.Email, u.Name, u.PasswordHash, u.PasswordSalt, u.CreatedAt, string(teamsJSON), u.Role, u.Status).
		Suffix(onConflictUpdate([]string{"email_key"}, userColumns)).
		ToSql()
}

func buildGetUserTeamsQuery(email string) (string, []any, error) {
	return sqlBuilder.
		Select("teams").
		From("users").
		Where(sq.Eq{"email_key": models.NormalizeEmail(email)}).
		ToSql()
}

func buildSetUserTeamsQuery(email string, teams []string) (string, []any, error) {
	teamsJSON, err := json.Marshal(teams)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlBuilder.
		Update("users").
		Set("teams", string(teamsJSON)).
		Where(sq.Eq{"email_key": models.NormalizeEmail(email)}).
		ToSql()
}

// buildGetEntriesQuery selects entries of the given scopes in insertion
// order. No scopes selects the whole table.
func buildGetEntriesQuery(table, scopeColumn string, scopes ...string) (string, []any, error) {
	q := sqlBuilder.
		Select(append([]string{scopeColumn}, entryColumns...)...).
		From(table).
		OrderBy("rowid")
	if len(scopes) > 0 {
		q = q.Where(sq.Eq{scopeColumn: scopes})
	}
	return q.ToSql()
}

// buildUpsertEntryQuery inserts or updates an entry, leaving created_at of
// an existing row alone, and returns the stored created_at.
func buildUpsertEntryQuery(table, scopeColumn, scope string, e models.PasswordEntry) (string, []any, error) {
	updatable := []string{"title", "username", "password", "url", "notes", "updated_at"}

	return sqlBuilder.
		Insert(table).
		Columns(append([]string{scopeColumn}, entryColumns...)...).
		Values(scope, e.ID, e.Title, e.Username, e.Password, e.URL, e.Notes, e.CreatedAt, e.UpdatedAt).
		Suffix(onConflictUpdate([]string{scopeColumn, "id"}, updatable) + " RETURNING created_at").
		ToSql()
}

// buildInsertEntryQuery inserts an entry verbatim; an existing id is kept.
func buildInsertEntryQuery(table, scopeColumn, scope string, e models.PasswordEntry) (string, []any, error) {
	return sqlBuilder.
		Insert(table).
		Columns(append([]string{scopeColumn}, entryColumns...)...).
		Values(scope, e.ID, e.Title, e.Username, e.Password, e.URL, e.Notes, e.CreatedAt, e.UpdatedAt).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

func buildDeleteEntryQuery(table, scopeColumn, scope, id string) (string, []any, error) {
	return sqlBuilder.
		Delete(table).
		Where(sq.Eq{scopeColumn: scope, "id": id}).
		ToSql()
}

func buildGetTeamsQuery(ids ...string) (string, []any, error) {
	q := sqlBuilder.
		Select(teamColumns...).
		From("teams").
		OrderBy("created_at", "id")
	if len(ids) > 0 {
		q = q.Where(sq.Eq{"id": ids})
	}
	return q.ToSql()
}

func buildFindTeamIDByInviteCodeQuery(code string) (string, []any, error) {
	return sqlBuilder.
		Select("id").
		From("teams").
		Where(sq.Eq{"UPPER(invite_code)": models.NormalizeInviteCode(code)}).
		OrderBy("created_at", "id").
		Limit(1).
		ToSql()
}

func buildTeamExistsQuery(id string) (string, []any, error) {
	return sqlBuilder.
		Select("1").
		From("teams").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertTeamQuery(t models.Team) (string, []any, error) {
	return sqlBuilder.
		Insert("teams").
		Columns(teamColumns...).
		Values(t.ID, t.Name, t.InviteCode, t.CreatedBy, t.CreatedAt).
		ToSql()
}

func buildGetMembersQuery(teamIDs ...string) (string, []any, error) {
	q := sqlBuilder.
		Select(memberColumns...).
		From("team_members").
		OrderBy("rowid")
	if len(teamIDs) > 0 {
		q = q.Where(sq.Eq{"team_id": teamIDs})
	}
	return q.ToSql()
}

func buildMemberExistsQuery(teamID, email string) (string, []any, error) {
	return sqlBuilder.
		Select("1").
		From("team_members").
		Where(sq.Eq{"team_id": teamID, "email_key": models.NormalizeEmail(email)}).
		ToSql()
}

func buildInsertMemberQuery(teamID string, m models.Member) (string, []any, error) {
	return sqlBuilder.
		Insert("team_members").
		Columns("team_id", "email_key", "email", "name", "role").
		Values(teamID, models.NormalizeEmail(m.Email), m.Email, m.Name, m.Role).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

// onConflictUpdate renders an SQLite upsert clause overwriting columns.
func onConflictUpdate(conflict, columns []string) string {
	sets := make([]string, len(columns))
	for i, c := range columns {
		sets[i] = c + " = excluded." + c
	}
	return fmt.Sprintf("ON CONFLICT(%s) DO UPDATE SET %s",
		strings.Join(conflict, ", "), strings.Join(sets, ", "))
}

// timeOrNow returns t, or now when t is zero.
func timeOrNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}
