package models

type Role string

const (
	RoleAdmin         Role = "Admin"
	RolePropertyAdmin Role = "Property-Admin"
	RoleAgent         Role = "Agent"
	RoleUser          Role = "User"
)

// Actor is the authenticated caller as resolved by the transport.
type Actor struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Approved bool   `json:"approved"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Manages reports whether the actor runs properties: an approved property
// admin or agent.
func (a Actor) Manages() bool {
	return a.Approved && (a.Role == RolePropertyAdmin || a.Role == RoleAgent)
}
