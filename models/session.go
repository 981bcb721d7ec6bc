package models

import (
	"encoding/json"
	"time"
)

// Session is the explicit, in-memory login state of a user.
//
// A Session is created by a successful login (or registration) and destroyed
// by logout. The host passes it into every call that acts on behalf of the
// user. It carries the master key, the user's plaintext password, which is
// used to derive encryption material for exported snapshots; that key is held
// only inside this value and is never written to durable storage. Marshalling
// a Session emits the public profile only.
type Session struct {
	profile   PublicProfile
	masterKey []byte
	startedAt time.Time
}

// NewSession returns a session for profile holding masterKey.
func NewSession(profile PublicProfile, masterKey string, startedAt time.Time) *Session {
	return &Session{
		profile:   profile,
		masterKey: []byte(masterKey),
		startedAt: startedAt,
	}
}

// Profile returns the logged-in user's public profile.
func (s *Session) Profile() PublicProfile {
	if s == nil {
		return PublicProfile{}
	}
	return s.profile
}

// Email returns the normalized email of the logged-in user.
func (s *Session) Email() string {
	return NormalizeEmail(s.Profile().Email)
}

// IsAdmin reports whether the logged-in user is a store administrator.
func (s *Session) IsAdmin() bool {
	return s.Profile().Role == RoleAdmin
}

// StartedAt returns the login time.
func (s *Session) StartedAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.startedAt
}

// MasterKey returns the master key, or "" for a destroyed session.
func (s *Session) MasterKey() string {
	if s == nil {
		return ""
	}
	return string(s.masterKey)
}

// Valid reports whether the session is usable (not nil, not destroyed).
func (s *Session) Valid() bool {
	return s != nil && len(s.masterKey) > 0 && s.profile.Email != ""
}

// Destroy zeroes the master key and forgets the profile.
func (s *Session) Destroy() {
	if s == nil {
		return
	}
	for i := range s.masterKey {
		s.masterKey[i] = 0
	}
	s.masterKey = nil
	s.profile = PublicProfile{}
}

// MarshalJSON emits only the public profile.
func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Profile())
}
