package authorization

import "strings"

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleStudent UserRole = "STUDENT"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsStudent() bool {
	return r == RoleStudent
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// ParseUserRole accepts either case and reports whether the role is known.
func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	return role, role.IsValid()
}
