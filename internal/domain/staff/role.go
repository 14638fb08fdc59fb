package staff

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role of a front-office user acting on reservations.
type Role string

const (
	RoleViewer  Role = "viewer"
	RoleClerk   Role = "clerk"
	RoleManager Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleClerk, RoleManager:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
