package models

import (
	"fmt"
	"strings"
)

// Role is the kind of portal user an account belongs to.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// SelfService reports whether accounts of this role may sign up and sign in
// through the portal itself.
func (r Role) SelfService() bool {
	return r == RoleStudent || r == RoleTeacher
}

// DashboardPath is the landing route for the role.
func (r Role) DashboardPath() string {
	if !r.Valid() {
		return "/dashboard"
	}
	return "/dashboard/" + string(r)
}

// IDPrefix is the prefix of the role identifier, empty for roles without one.
func (r Role) IDPrefix() string {
	switch r {
	case RoleStudent:
		return "STU"
	case RoleTeacher:
		return "EMP"
	}
	return ""
}

func (r Role) String() string { return string(r) }
