package models

import "time"

// SnapshotVersion is the version written into every exported snapshot.
const SnapshotVersion = "1.0"

// Snapshot is the export/import unit exchanged between devices.
//
// Its JSON form is the durable interchange contract of the vault:
//
//	{ "version": "1.0",
//	  "exportedAt": <ISO-8601 timestamp>,
//	  "users":     { "<email>": <User>, ... },
//	  "passwords": { "<email>": [ <PasswordEntry>, ... ], ... },
//	  "teams":     { "<teamId>": <Team>, ... } }
type Snapshot struct {
	Version    string                     `json:"version"`
	ExportedAt time.Time                  `json:"exportedAt"`
	Users      map[string]User            `json:"users"`
	Passwords  map[string][]PasswordEntry `json:"passwords"`
	Teams      map[string]Team            `json:"teams"`
}

// State is the complete content of a record store.
type State struct {
	Users     map[string]User
	Passwords map[string][]PasswordEntry
	Teams     map[string]Team
}

// NewState returns an empty state with allocated maps.
func NewState() State {
	return State{
		Users:     make(map[string]User),
		Passwords: make(map[string][]PasswordEntry),
		Teams:     make(map[string]Team),
	}
}

// Snapshot wraps the state into an exportable snapshot stamped with at.
func (s State) Snapshot(at time.Time) Snapshot {
	snap := Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: at,
		Users:      s.Users,
		Passwords:  s.Passwords,
		Teams:      s.Teams,
	}
	if snap.Users == nil {
		snap.Users = map[string]User{}
	}
	if snap.Passwords == nil {
		snap.Passwords = map[string][]PasswordEntry{}
	}
	if snap.Teams == nil {
		snap.Teams = map[string]Team{}
	}
	return snap
}

// State returns the record content of the snapshot.
func (s Snapshot) State() State {
	return State{Users: s.Users, Passwords: s.Passwords, Teams: s.Teams}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := NewState()
	for k, u := range s.Users {
		c.Users[k] = u.Clone()
	}
	for k, list := range s.Passwords {
		cp := make([]PasswordEntry, len(list))
		copy(cp, list)
		c.Passwords[k] = cp
	}
	for k, t := range s.Teams {
		c.Teams[k] = t.Clone()
	}
	return c
}
