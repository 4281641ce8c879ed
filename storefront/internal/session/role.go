package session

import (
	"strconv"
	"strings"
)

type Role string

const (
	RoleNone     Role = ""
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// adminRoleID is the backend's id for the administrator role.
const adminRoleID = 2

// ParseRole maps whatever the backend or a cookie carries onto a Role.
// "2", "admin" and "Admin" are the administrator; any other non-empty
// value is a customer.
func ParseRole(s string) Role {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return RoleNone
	case s == strconv.Itoa(adminRoleID), strings.EqualFold(s, string(RoleAdmin)):
		return RoleAdmin
	default:
		return RoleCustomer
	}
}

func RoleFromID(id *int) Role {
	if id == nil {
		return RoleCustomer
	}
	if *id == adminRoleID {
		return RoleAdmin
	}
	return RoleCustomer
}

type Principal struct {
	UserID int
	Login  string
	Role   Role
}

func (p Principal) Authenticated() bool {
	return p.Login != ""
}

// HasRole is the single authorization rule used by every guarded route.
func HasRole(p Principal, required Role) bool {
	if !p.Authenticated() {
		return false
	}
	if required == RoleNone {
		return true
	}
	return p.Role == required
}

type State uint8

const (
	Anonymous State = iota
	Cookie
	BearerForwarded
)

func (s State) String() string {
	switch s {
	case Cookie:
		return "cookie"
	case BearerForwarded:
		return "bearer"
	default:
		return "anonymous"
	}
}
