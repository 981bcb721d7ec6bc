package service

import (
	"context"
	"maps"
	"slices"

	"github.com/MKhiriev/team-vault/internal/logger"
	"github.com/MKhiriev/team-vault/models"
)

// mergeService is the concrete implementation of MergeService.
//
// It only reads its inputs and returns a plan; writing the plan is the job
// of store.Repository.ApplyMergePlan. Keys of every map are walked in sorted
// order, so the same inputs always give the same plan.
type mergeService struct {
	logger *logger.Logger
}

// NewMergeService constructs a MergeService.
func NewMergeService(log *logger.Logger) MergeService {
	return &mergeService{logger: log}
}

// BuildMergePlan implements MergeService.
//
// Rules per record kind:
//
//   - Users: an incoming user replaces the local record with the same email
//     as a whole. Records equal to the local copy are left out of the plan.
//   - Personal passwords: union by id per owner. An id already present
//     locally is skipped, so local edits are never overwritten.
//   - Teams: an unknown team is inserted as it is. For a known team, members
//     are unioned by lowercased email (roles of existing members are left
//     alone) and passwords by id, local copy winning.
//
// Duplicates inside the incoming snapshot itself collapse to their first
// occurrence. The plan only adds, so applying it twice changes nothing the
// second time.
func (m *mergeService) BuildMergePlan(ctx context.Context, local models.State, incoming models.Snapshot) (models.MergePlan, models.MergeResult, error) {
	plan := models.MergePlan{
		Passwords:     make(map[string][]models.PasswordEntry),
		Members:       make(map[string][]models.Member),
		TeamPasswords: make(map[string][]models.PasswordEntry),
	}
	var result models.MergeResult

	// ── users ────────────────────────────────────────────────────────────────
	for _, key := range slices.Sorted(maps.Keys(incoming.Users)) {
		if err := ctx.Err(); err != nil {
			return models.MergePlan{}, models.MergeResult{}, err
		}

		u := incoming.Users[key]
		existing, ok := local.Users[models.NormalizeEmail(u.Email)]
		switch {
		case !ok:
			result.UsersAdded++
		case sameUser(existing, u):
			continue
		default:
			result.UsersUpdated++
		}
		plan.Users = append(plan.Users, u)
	}

	// ── personal passwords ───────────────────────────────────────────────────
	for _, key := range slices.Sorted(maps.Keys(incoming.Passwords)) {
		if err := ctx.Err(); err != nil {
			return models.MergePlan{}, models.MergeResult{}, err
		}

		owner := models.NormalizeEmail(key)
		added, skipped := unionEntries(local.Passwords[owner], incoming.Passwords[key])
		for i := range added {
			added[i].TeamID = ""
		}
		if len(added) > 0 {
			plan.Passwords[owner] = append(plan.Passwords[owner], added...)
		}
		result.PasswordsAdded += len(added)
		result.PasswordsSkipped += skipped
	}

	// ── teams ────────────────────────────────────────────────────────────────
	codes := inviteCodeOwners(local.Teams)
	for _, id := range slices.Sorted(maps.Keys(incoming.Teams)) {
		if err := ctx.Err(); err != nil {
			return models.MergePlan{}, models.MergeResult{}, err
		}

		in := incoming.Teams[id]
		existing, ok := local.Teams[id]
		if !ok {
			team := in.Clone()
			team.Members, _ = unionMembers(nil, in.Members)
			team.Passwords, _ = unionEntries(nil, in.Passwords)
			for i := range team.Passwords {
				team.Passwords[i].TeamID = team.ID
			}

			code := models.NormalizeInviteCode(team.InviteCode)
			if owner, taken := codes[code]; taken && owner != team.ID {
				result.InviteCodeConflicts = append(result.InviteCodeConflicts, team.ID)
				logger.FromContext(ctx).Warn().
					Str("func", "mergeService.BuildMergePlan").
					Str("team_id", team.ID).
					Str("conflicts_with", owner).
					Msg("imported team reuses a live invite code")
			} else {
				codes[code] = team.ID
			}

			plan.Teams = append(plan.Teams, team)
			result.TeamsAdded++
			continue
		}

		members, _ := unionMembers(existing.Members, in.Members)
		if len(members) > 0 {
			plan.Members[id] = members
			result.MembersAdded += len(members)
		}

		entries, skipped := unionEntries(existing.Passwords, in.Passwords)
		for i := range entries {
			entries[i].TeamID = id
		}
		if len(entries) > 0 {
			plan.TeamPasswords[id] = entries
		}
		result.TeamPasswordsAdded += len(entries)
		result.TeamPasswordsSkipped += skipped
	}

	return plan, result, nil
}

// unionEntries returns the incoming entries whose id is neither in local nor
// earlier in incoming, and how many were skipped.
func unionEntries(local, incoming []models.PasswordEntry) ([]models.PasswordEntry, int) {
	seen := make(map[string]struct{}, len(local)+len(incoming))
	for _, e := range local {
		seen[e.ID] = struct{}{}
	}

	added := make([]models.PasswordEntry, 0)
	skipped := 0
	for _, e := range incoming {
		if _, ok := seen[e.ID]; ok {
			skipped++
			continue
		}
		seen[e.ID] = struct{}{}
		added = append(added, e)
	}
	return added, skipped
}

// unionMembers is unionEntries for members keyed by lowercased email.
func unionMembers(local, incoming []models.Member) ([]models.Member, int) {
	seen := make(map[string]struct{}, len(local)+len(incoming))
	for _, m := range local {
		seen[models.NormalizeEmail(m.Email)] = struct{}{}
	}

	added := make([]models.Member, 0)
	skipped := 0
	for _, m := range incoming {
		key := models.NormalizeEmail(m.Email)
		if _, ok := seen[key]; ok {
			skipped++
			continue
		}
		seen[key] = struct{}{}
		added = append(added, m)
	}
	return added, skipped
}

// inviteCodeOwners maps every live invite code to its team id.
func inviteCodeOwners(teams map[string]models.Team) map[string]string {
	codes := make(map[string]string, len(teams))
	for _, id := range slices.Sorted(maps.Keys(teams)) {
		code := models.NormalizeInviteCode(teams[id].InviteCode)
		if _, ok := codes[code]; !ok {
			codes[code] = id
		}
	}
	return codes
}

func sameUser(a, b models.User) bool {
	return a.Email == b.Email &&
		a.Name == b.Name &&
		a.PasswordHash == b.PasswordHash &&
		a.PasswordSalt == b.PasswordSalt &&
		a.CreatedAt.Equal(b.CreatedAt) &&
		slices.Equal(a.Teams, b.Teams) &&
		a.Role == b.Role &&
		a.Status == b.Status
}
