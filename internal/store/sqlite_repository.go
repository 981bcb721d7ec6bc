package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/models"
)

// sqliteRepository is the SQLite-backed implementation of [Repository].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext]; multi-statement writes run inside [WithTx].
type sqliteRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteRepository constructs a [Repository] backed by db, which must
// already be migrated.
func NewSQLiteRepository(db *DB, log *logger.Logger) Repository {
	return &sqliteRepository{DB: db, logger: log, now: time.Now}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (models.User, error) {
	var (
		u     models.User
		teams string
	)
	if err := row.Scan(&u.Email, &u.Name, &u.PasswordHash, &u.PasswordSalt, &u.CreatedAt, &teams, &u.Role, &u.Status); err != nil {
		return models.User{}, err
	}
	if err := json.Unmarshal([]byte(teams), &u.Teams); err != nil {
		return models.User{}, fmt.Errorf("decode teams of %s: %w", u.Email, err)
	}
	return u, nil
}

func scanEntry(row scanner) (string, models.PasswordEntry, error) {
	var (
		scope string
		e     models.PasswordEntry
	)
	err := row.Scan(&scope, &e.ID, &e.Title, &e.Username, &e.Password, &e.URL, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	return scope, e, err
}

func (r *sqliteRepository) GetUser(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserQuery(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	u, err := scanUser(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteRepository.GetUser").
			Str("email", email).
			Msg("failed to get user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return u, nil
}

func (r *sqliteRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.listUsers(ctx, r.DB)
}

func (r *sqliteRepository) listUsers(ctx context.Context, db DBTX) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteRepository.ListUsers").Msg("failed to query users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "sqliteRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *sqliteRepository) CountUsers(ctx context.Context) (int, error) {
	query, args, err := buildCountUsersQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteRepository.CountUsers").Msg("failed to count users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

func (r *sqliteRepository) SaveUser(ctx context.Context, user models.User) error {
	return r.saveUser(ctx, r.DB, user)
}

func (r *sqliteRepository) saveUser(ctx context.Context, db DBTX, user models.User) error {
	query, args, err := buildUpsertUserQuery(user)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteRepository.SaveUser").
			Str("email", user.Email).
			Msg("failed to upsert user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// addUserTeam appends teamID to the teams list of email, if such a user
// exists.
func (r *sqliteRepository) addUserTeam(ctx context.Context, db DBTX, email, teamID string) error {
	query, args, err := buildGetUserTeamsQuery(email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw string
	err = db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var teams []string
	if err := json.Unmarshal([]byte(raw), &teams); err != nil {
		return fmt.Errorf("decode teams of %s: %w", email, err)
	}
	if slices.Contains(teams, teamID) {
		return nil
	}

	query, args, err = buildSetUserTeamsQuery(email, append(teams, teamID))
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *sqliteRepository) GetPasswords(ctx context.Context, ownerEmail string) ([]models.PasswordEntry, error) {
	grouped, err := r.entries(ctx, r.DB, personalEntries, personalScope, models.NormalizeEmail(ownerEmail))
	if err != nil {
		return nil, err
	}

	list := grouped[models.NormalizeEmail(ownerEmail)]
	if list == nil {
		list = []models.PasswordEntry{}
	}
	return list, nil
}

// entries loads entries of table grouped by scope, in insertion order.
func (r *sqliteRepository) entries(ctx context.Context, db DBTX, table, scopeColumn string, scopes ...string) (map[string][]models.PasswordEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntriesQuery(table, scopeColumn, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteRepository.entries").
			Str("table", table).
			Msg("failed to query password entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.PasswordEntry)
	for rows.Next() {
		scope, e, err := scanEntry(rows)
		if err != nil {
			log.Err(err).
				Str("func", "sqliteRepository.entries").
				Str("table", table).
				Msg("failed to scan password entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if table == teamEntries {
			e.TeamID = scope
		}
		grouped[scope] = append(grouped[scope], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grouped, nil
}

func (r *sqliteRepository) upsertEntry(ctx context.Context, db DBTX, table, scopeColumn, scope string, entry models.PasswordEntry) (models.PasswordEntry, error) {
	now := r.now()
	entry.UpdatedAt = now
	entry.CreatedAt = timeOrNow(entry.CreatedAt, now)

	query, args, err := buildUpsertEntryQuery(table, scopeColumn, scope, entry)
	if err != nil {
		return models.PasswordEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created sqlTime
	if err := db.QueryRowContext(ctx, query, args...).Scan(&created); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteRepository.upsertEntry").
			Str("table", table).
			Str("id", entry.ID).
			Msg("failed to upsert password entry")
		return models.PasswordEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	entry.CreatedAt = created.Time
	return entry, nil
}

func (r *sqliteRepository) deleteEntry(ctx context.Context, db DBTX, table, scopeColumn, scope, id string) error {
	query, args, err := buildDeleteEntryQuery(table, scopeColumn, scope, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteRepository.deleteEntry").
			Str("table", table).
			Str("id", id).
			Msg("failed to delete password entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *sqliteRepository) insertEntries(ctx context.Context, db DBTX, table, scopeColumn, scope string, entries []models.PasswordEntry) error {
	for _, e := range stampEntries(entries, r.now()) {
		query, args, err := buildInsertEntryQuery(table, scopeColumn, scope, e)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: insert %s %s: %w", ErrExecutingStatement, table, e.ID, err)
		}
	}
	return nil
}

func (r *sqliteRepository) SavePassword(ctx context.Context, ownerEmail string, entry models.PasswordEntry) (models.PasswordEntry, error) {
	entry.TeamID = ""
	return r.upsertEntry(ctx, r.DB, personalEntries, personalScope, models.NormalizeEmail(ownerEmail), entry)
}

func (r *sqliteRepository) DeletePassword(ctx context.Context, ownerEmail, id string) error {
	return r.deleteEntry(ctx, r.DB, personalEntries, personalScope, models.NormalizeEmail(ownerEmail), id)
}

func (r *sqliteRepository) GetTeam(ctx context.Context, id string) (models.Team, error) {
	teams, err := r.teams(ctx, r.DB, id)
	if err != nil {
		return models.Team{}, err
	}
	if len(teams) == 0 {
		return models.Team{}, ErrTeamNotFound
	}
	return teams[0], nil
}

func (r *sqliteRepository) ListTeams(ctx context.Context) ([]models.Team, error) {
	return r.teams(ctx, r.DB)
}

// teams loads the teams with ids (all teams when none are given) together
// with their members and passwords.
func (r *sqliteRepository) teams(ctx context.Context, db DBTX, ids ...string) ([]models.Team, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTeamsQuery(ids...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteRepository.teams").Msg("failed to query teams")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.InviteCode, &t.CreatedBy, &t.CreatedAt); err != nil {
			log.Err(err).Str("func", "sqliteRepository.teams").Msg("failed to scan team row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if len(teams) == 0 {
		return teams, nil
	}

	members, err := r.members(ctx, db, ids...)
	if err != nil {
		return nil, err
	}
	passwords, err := r.entries(ctx, db, teamEntries, teamScope, ids...)
	if err != nil {
		return nil, err
	}

	for i := range teams {
		teams[i].Members = members[teams[i].ID]
		if teams[i].Members == nil {
			teams[i].Members = []models.Member{}
		}
		teams[i].Passwords = passwords[teams[i].ID]
		if teams[i].Passwords == nil {
			teams[i].Passwords = []models.PasswordEntry{}
		}
	}
	return teams, nil
}

func (r *sqliteRepository) members(ctx context.Context, db DBTX, teamIDs ...string) (map[string][]models.Member, error) {
	query, args, err := buildGetMembersQuery(teamIDs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteRepository.members").Msg("failed to query team members")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.Member)
	for rows.Next() {
		var (
			teamID string
			m      models.Member
		)
		if err := rows.Scan(&teamID, &m.Email, &m.Name, &m.Role); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		grouped[teamID] = append(grouped[teamID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return grouped, nil
}

func (r *sqliteRepository) FindTeamByInviteCode(ctx context.Context, code string) (models.Team, error) {
	query, args, err := buildFindTeamIDByInviteCodeQuery(code)
	if err != nil {
		return models.Team{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Team{}, ErrTeamNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteRepository.FindTeamByInviteCode").Msg("failed to look up invite code")
		return models.Team{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.GetTeam(ctx, id)
}

func (r *sqliteRepository) teamExists(ctx context.Context, db DBTX, id string) (bool, error) {
	query, args, err := buildTeamExistsQuery(id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return exists(ctx, db, query, args)
}

func exists(ctx context.Context, db DBTX, query string, args []any) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return true, nil
}

// insertTeam writes a team row with its members and passwords.
func (r *sqliteRepository) insertTeam(ctx context.Context, db DBTX, team models.Team) error {
	query, args, err := buildInsertTeamQuery(team)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insert team %s: %w", ErrExecutingStatement, team.ID, err)
	}

	if err := r.insertMembers(ctx, db, team.ID, team.Members); err != nil {
		return err
	}
	return r.insertEntries(ctx, db, teamEntries, teamScope, team.ID, team.Passwords)
}

func (r *sqliteRepository) insertMembers(ctx context.Context, db DBTX, teamID string, members []models.Member) error {
	for _, m := range members {
		query, args, err := buildInsertMemberQuery(teamID, m)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: insert member %s: %w", ErrExecutingStatement, m.Email, err)
		}
	}
	return nil
}

func (r *sqliteRepository) CreateTeam(ctx context.Context, team models.Team) error {
	return WithTx(ctx, r.DB.DB, nil, func(ctx context.Context, tx DBTX) error {
		found, err := r.teamExists(ctx, tx, team.ID)
		if err != nil {
			return err
		}
		if found {
			return ErrTeamExists
		}

		if err := r.insertTeam(ctx, tx, team); err != nil {
			return err
		}
		for _, m := range team.Members {
			if err := r.addUserTeam(ctx, tx, m.Email, team.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sqliteRepository) AddTeamMember(ctx context.Context, teamID string, member models.Member) error {
	return WithTx(ctx, r.DB.DB, nil, func(ctx context.Context, tx DBTX) error {
		found, err := r.teamExists(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if !found {
			return ErrTeamNotFound
		}

		query, args, err := buildMemberExistsQuery(teamID, member.Email)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		isMember, err := exists(ctx, tx, query, args)
		if err != nil {
			return err
		}
		if isMember {
			return ErrMemberExists
		}

		if err := r.insertMembers(ctx, tx, teamID, []models.Member{member}); err != nil {
			return err
		}
		return r.addUserTeam(ctx, tx, member.Email, teamID)
	})
}

func (r *sqliteRepository) SaveTeamPassword(ctx context.Context, teamID string, entry models.PasswordEntry) (models.PasswordEntry, error) {
	entry.TeamID = teamID

	var stored models.PasswordEntry
	err := WithTx(ctx, r.DB.DB, nil, func(ctx context.Context, tx DBTX) error {
		found, err := r.teamExists(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if !found {
			return ErrTeamNotFound
		}

		stored, err = r.upsertEntry(ctx, tx, teamEntries, teamScope, teamID, entry)
		return err
	})
	return stored, err
}

func (r *sqliteRepository) DeleteTeamPassword(ctx context.Context, teamID, id string) error {
	return WithTx(ctx, r.DB.DB, nil, func(ctx context.Context, tx DBTX) error {
		found, err := r.teamExists(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if !found {
			return ErrTeamNotFound
		}
		return r.deleteEntry(ctx, tx, teamEntries, teamScope, teamID, id)
	})
}

func (r *sqliteRepository) State(ctx context.Context) (models.State, error) {
	st := models.NewState()

	err := WithTx(ctx, r.DB.DB, nil, func(ctx context.Context, tx DBTX) error {
		users, err := r.listUsers(ctx, tx)
		if err != nil {
			return err
		}
		for _, u := range users {
			st.Users[models.NormalizeEmail(u.Email)] = u
		}

		passwords, err := r.entries(ctx, tx, personalEntries, personalScope)
		if err != nil {
			return err
		}
		st.Passwords = passwords

		teams, err := r.teams(ctx, tx)
		if err != nil {
			return err
		}
		for _, t := range teams {
			st.Teams[t.ID] = t
		}
		return nil
	})
	if err != nil {
		return models.State{}, err
	}
	return st, nil
}

func (r *sqliteRepository) ApplyMergePlan(ctx context.Context, plan models.MergePlan) error {
	return WithTx(ctx, r.DB.DB, nil, func(ctx context.Context, tx DBTX) error {
		for _, u := range plan.Users {
			if err := r.saveUser(ctx, tx, u); err != nil {
				return err
			}
		}

		for _, owner := range slices.Sorted(maps.Keys(plan.Passwords)) {
			if err := r.insertEntries(ctx, tx, personalEntries, personalScope, models.NormalizeEmail(owner), plan.Passwords[owner]); err != nil {
				return err
			}
		}

		for _, t := range plan.Teams {
			if err := r.insertTeam(ctx, tx, t); err != nil {
				return err
			}
		}

		for _, teamID := range slices.Sorted(maps.Keys(plan.Members)) {
			if err := r.requireTeam(ctx, tx, teamID); err != nil {
				return err
			}
			if err := r.insertMembers(ctx, tx, teamID, plan.Members[teamID]); err != nil {
				return err
			}
		}

		for _, teamID := range slices.Sorted(maps.Keys(plan.TeamPasswords)) {
			if err := r.requireTeam(ctx, tx, teamID); err != nil {
				return err
			}
			if err := r.insertEntries(ctx, tx, teamEntries, teamScope, teamID, plan.TeamPasswords[teamID]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sqliteRepository) requireTeam(ctx context.Context, db DBTX, teamID string) error {
	found, err := r.teamExists(ctx, db, teamID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}
	return nil
}

func (r *sqliteRepository) Close() error {
	return r.DB.Close()
}
