package models

// MergePlan is the set of writes needed to merge an incoming snapshot into
// the local store. It only ever adds or overwrites users, and only ever adds
// passwords, teams and members, so applying it cannot remove local data.
type MergePlan struct {
	// Users are written over the local records with the same email.
	Users []User

	// Passwords are new personal entries, keyed by owner email.
	Passwords map[string][]PasswordEntry

	// Teams are teams unknown locally, inserted as they are.
	Teams []Team

	// Members are new members of existing local teams, keyed by team id.
	Members map[string][]Member

	// TeamPasswords are new entries of existing local teams, keyed by team id.
	TeamPasswords map[string][]PasswordEntry
}

// Empty reports whether applying the plan would change nothing.
func (p MergePlan) Empty() bool {
	return len(p.Users) == 0 &&
		countEntries(p.Passwords) == 0 &&
		len(p.Teams) == 0 &&
		countMembers(p.Members) == 0 &&
		countEntries(p.TeamPasswords) == 0
}

// MergeResult summarises what a merge did.
type MergeResult struct {
	UsersAdded   int `json:"usersAdded"`
	UsersUpdated int `json:"usersUpdated"`

	PasswordsAdded   int `json:"passwordsAdded"`
	PasswordsSkipped int `json:"passwordsSkipped"`

	TeamsAdded           int `json:"teamsAdded"`
	MembersAdded         int `json:"membersAdded"`
	TeamPasswordsAdded   int `json:"teamPasswordsAdded"`
	TeamPasswordsSkipped int `json:"teamPasswordsSkipped"`

	// InviteCodeConflicts lists ids of inserted teams whose invite code is
	// already used by a different local team.
	InviteCodeConflicts []string `json:"inviteCodeConflicts,omitempty"`
}

// Changed reports whether the merge wrote anything.
func (r MergeResult) Changed() bool {
	return r.UsersAdded+r.UsersUpdated+r.PasswordsAdded+r.TeamsAdded+r.MembersAdded+r.TeamPasswordsAdded > 0
}

func countEntries(m map[string][]PasswordEntry) int {
	n := 0
	for _, list := range m {
		n += len(list)
	}
	return n
}

func countMembers(m map[string][]Member) int {
	n := 0
	for _, list := range m {
		n += len(list)
	}
	return n
}
