package entity

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Staff reports whether the role belongs to restaurant staff.
func (r Role) Staff() bool {
	return r == RoleManager || r == RoleAdmin
}

// Actor is the authenticated party issuing a request. It is resolved once at
// the HTTP boundary and passed explicitly into every service call that
// enforces policy.
type Actor struct {
	ID   uuid.UUID
	Role Role
}
