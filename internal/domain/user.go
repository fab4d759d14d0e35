package domain

import "time"

type Role string

const (
	RoleDonor          Role = "donor"
	RoleMonasteryAdmin Role = "monastery_admin"
	RoleSuperAdmin     Role = "super_admin"
)

// rolePriority orders roles for display and for resolving the effective
// role of a multi-role actor. Higher wins.
var rolePriority = map[Role]int{
	RoleDonor:          1,
	RoleMonasteryAdmin: 2,
	RoleSuperAdmin:     3,
}

func ValidRole(r Role) bool {
	_, ok := rolePriority[r]
	return ok
}

// PrimaryRole returns the highest-priority role of the set, or RoleDonor
// for an empty set.
func PrimaryRole(roles []Role) Role {
	primary := RoleDonor
	best := 0
	for _, r := range roles {
		if p := rolePriority[r]; p > best {
			best = p
			primary = r
		}
	}
	return primary
}

// Actor is the authenticated identity a request acts as.
type Actor struct {
	ID    string `json:"id"`
	Roles []Role `json:"roles"`
}

func (a Actor) HasRole(r Role) bool {
	for _, have := range a.Roles {
		if have == r {
			return true
		}
	}
	return false
}

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Roles          []Role    `json:"roles"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Roles: u.Roles}
}

type CreateUserInput struct {
	Username       string
	Roles          []Role
	TelegramChatID *int64
}
