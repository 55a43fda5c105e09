package models

import "time"

// TeamRole is the role of an embedded team member.
type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleMember TeamRole = "member"
)

// TeamMember is stored inline on the team. It is compared by value: two
// members are the same entry only when every field matches.
type TeamMember struct {
	UID   string   `json:"uid"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  TeamRole `json:"role"`
}

// Team groups users under one owner.
type Team struct {
	ID        string       `json:"id" db:"id"`
	OwnerID   string       `json:"owner_id" db:"owner_id"`
	Members   []TeamMember `json:"members" db:"members"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}

// FindMember returns the stored entry for uid, if any.
func (t *Team) FindMember(uid string) (TeamMember, bool) {
	for _, m := range t.Members {
		if m.UID == uid {
			return m, true
		}
	}
	return TeamMember{}, false
}

// HasMember reports whether uid appears in the member list.
func (t *Team) HasMember(uid string) bool {
	_, ok := t.FindMember(uid)
	return ok
}
