package domain

import "strings"

// Role is the closed set of authorization roles. The canonical form is
// lowercase; ParseRole is the only way a role should enter the system, so
// comparisons elsewhere never need to case-fold again.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHR       Role = "hr"
	RoleCEO      Role = "ceo"
	RoleAdmin    Role = "admin"
)

// ParseRole case-folds s and validates it against the closed enum.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleEmployee, RoleManager, RoleHR, RoleCEO, RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

// Registerable reports whether the role may be chosen at self-registration.
// Admin accounts are only ever provisioned through the startup seed.
func (r Role) Registerable() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHR, RoleCEO:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
