package store

import (
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/team-vault/models"
)

// upsertEntry replaces the entry with the same id or appends a new one. It
// returns the new list and the entry as stored.
func upsertEntry(list []models.PasswordEntry, entry models.PasswordEntry, now time.Time) ([]models.PasswordEntry, models.PasswordEntry) {
	entry.UpdatedAt = now

	for i := range list {
		if list[i].ID == entry.ID {
			entry.CreatedAt = list[i].CreatedAt
			out := slices.Clone(list)
			out[i] = entry
			return out, entry
		}
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	return append(slices.Clone(list), entry), entry
}

// stampEntries fills missing timestamps on inserted entries. A zero createdAt
// falls back to updatedAt, then to now; a zero updatedAt takes createdAt.
func stampEntries(entries []models.PasswordEntry, now time.Time) []models.PasswordEntry {
	out := slices.Clone(entries)
	for i := range out {
		out[i].CreatedAt = timeOrNow(out[i].CreatedAt, timeOrNow(out[i].UpdatedAt, now))
		out[i].UpdatedAt = timeOrNow(out[i].UpdatedAt, out[i].CreatedAt)
	}
	return out
}

func removeEntry(list []models.PasswordEntry, id string) []models.PasswordEntry {
	return slices.DeleteFunc(slices.Clone(list), func(e models.PasswordEntry) bool {
		return e.ID == id
	})
}

func addTeamID(teams []string, id string) []string {
	if slices.Contains(teams, id) {
		return teams
	}
	return append(slices.Clone(teams), id)
}

// sortUsers orders users by registration time, then email.
func sortUsers(users []models.User) {
	slices.SortStableFunc(users, func(a, b models.User) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(models.NormalizeEmail(a.Email), models.NormalizeEmail(b.Email))
	})
}

// sortTeams orders teams by creation time, then id.
func sortTeams(teams []models.Team) {
	slices.SortStableFunc(teams, func(a, b models.Team) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
