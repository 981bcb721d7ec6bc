package models

import (
	"encoding/json"
	"strings"
	"time"
)

// User roles. The very first account registered in a store becomes
// [RoleAdmin]; every later account is [RoleUser].
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User statuses. A [StatusDisabled] user cannot log in.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// User is a registered account of the vault.
//
// Email is the identity of the user: it is unique in the store and is always
// compared and stored lowercased (see [NormalizeEmail]). Users are never
// hard-deleted; they can only be disabled.
type User struct {
	// Email is the unique, case-insensitive key of the user.
	Email string `json:"email" validate:"required,email"`

	// Name is the display name shown to other team members.
	Name string `json:"name" validate:"required"`

	// PasswordHash is the hex-encoded one-way digest of the master password
	// concatenated with the hex salt.
	PasswordHash string `json:"passwordHash" validate:"required,hexadecimal"`

	// PasswordSalt is the hex-encoded random salt used for PasswordHash.
	PasswordSalt string `json:"passwordSalt" validate:"required,hexadecimal"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"createdAt"`

	// Teams lists identifiers of teams the user created or joined.
	Teams []string `json:"teams"`

	// Role is either RoleAdmin or RoleUser.
	Role string `json:"role" validate:"oneof=admin user"`

	// Status is either StatusActive or StatusDisabled.
	Status string `json:"status" validate:"oneof=active disabled"`
}

// UnmarshalJSON decodes a user and fills in the defaults for the role and
// status fields, which older browser-client exports omit.
func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if p.Role == "" {
		p.Role = RoleUser
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	*u = User(p)
	return nil
}

// Profile returns the public part of the user that may be kept in a session.
func (u User) Profile() PublicProfile {
	teams := make([]string, len(u.Teams))
	copy(teams, u.Teams)
	return PublicProfile{
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		Teams:     teams,
		Role:      u.Role,
	}
}

// IsAdmin reports whether the user has the RoleAdmin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasTeam reports whether teamID is already in the user's team list.
func (u User) HasTeam(teamID string) bool {
	for _, id := range u.Teams {
		if id == teamID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	c := u
	if u.Teams != nil {
		c.Teams = make([]string, len(u.Teams))
		copy(c.Teams, u.Teams)
	}
	return c
}

// PublicProfile is the non-secret view of a user: no hash, no salt.
type PublicProfile struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Teams     []string  `json:"teams"`
	Role      string    `json:"role"`
}

// NormalizeEmail returns the canonical store key for an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
