package models

import (
	"strings"
	"time"
)

// Team member roles.
const (
	MemberRoleAdmin  = "admin"
	MemberRoleMember = "member"
)

// InviteCodeLength is the fixed length of a team invite code.
const InviteCodeLength = 8

// Team is a group of users sharing a password list.
//
// Members never contains two entries with the same lowercased email. Teams
// are never deleted.
type Team struct {
	ID         string          `json:"id" validate:"required"`
	Name       string          `json:"name" validate:"required"`
	InviteCode string          `json:"inviteCode" validate:"required,len=8,alphanum"`
	CreatedBy  string          `json:"createdBy" validate:"required"`
	CreatedAt  time.Time       `json:"createdAt"`
	Members    []Member        `json:"members" validate:"dive"`
	Passwords  []PasswordEntry `json:"passwords" validate:"dive"`
}

// Member is a user's membership record inside a team.
type Member struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role" validate:"oneof=admin member"`
}

// HasMember reports whether email (compared lowercased) is a member.
func (t Team) HasMember(email string) bool {
	key := NormalizeEmail(email)
	for _, m := range t.Members {
		if NormalizeEmail(m.Email) == key {
			return true
		}
	}
	return false
}

// FindPassword returns the index of the team password with id, or -1.
func (t Team) FindPassword(id string) int {
	for i, p := range t.Passwords {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the team.
func (t Team) Clone() Team {
	c := t
	if t.Members != nil {
		c.Members = make([]Member, len(t.Members))
		copy(c.Members, t.Members)
	}
	if t.Passwords != nil {
		c.Passwords = make([]PasswordEntry, len(t.Passwords))
		copy(c.Passwords, t.Passwords)
	}
	return c
}

// NormalizeInviteCode trims and upper-cases a user-typed invite code.
func NormalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
