package models

import (
	"strings"
	"time"
)

// PasswordEntry is a single stored credential.
//
// An entry belongs to exactly one owner: either the personal list of a user
// (keyed by the owner's email) or the password list of a team, in which case
// TeamID is set. ID is opaque and stays the same for the whole lifetime of the
// entry; it is the key used by upserts, deletes and snapshot merges.
//
// Password is kept in plaintext inside the local store. Confidentiality at rest
// is the job of the device; exported snapshots can be encrypted as a whole.
type PasswordEntry struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	URL       string    `json:"url,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	TeamID    string    `json:"teamId,omitempty"`
}

// Matches reports whether query is a case-insensitive substring of the
// entry's title, username or URL. An empty query matches everything.
func (p PasswordEntry) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Username), q) ||
		strings.Contains(strings.ToLower(p.URL), q)
}

// Password list views, as offered by the vault sidebar.
const (
	FilterAll      = "all"
	FilterPersonal = "personal"
	FilterTeam     = "team"
)

// PasswordFilter narrows a password listing.
type PasswordFilter struct {
	// View is one of FilterAll, FilterPersonal, FilterTeam. Empty means FilterAll.
	View string

	// TeamID restricts the team part of the listing to a single team.
	TeamID string

	// Query is matched with [PasswordEntry.Matches].
	Query string
}

// PasswordListing is the result of listing passwords for a user.
type PasswordListing struct {
	Personal []PasswordEntry
	Team     []PasswordEntry

	// Counts are computed before Query is applied, like the sidebar badges.
	PersonalCount int
	TeamCount     int
}

// AllCount returns the number of personal and team passwords together.
func (l PasswordListing) AllCount() int {
	return l.PersonalCount + l.TeamCount
}
