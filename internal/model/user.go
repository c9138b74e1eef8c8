package model

import (
	"time"

	"github.com/google/uuid"
)

// Role enumerates user roles.
type Role string

const (
	// RoleAuthor is a user allowed to publish content.
	RoleAuthor Role = "author"
	// RoleUser is a regular user.
	RoleUser Role = "user"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleAuthor, RoleUser}

// Valid reports whether r is a member of the role enumeration.
func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents a stored user.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPayload is a full or partial user as sent by clients.
// A nil field and an empty string both mean the field was not supplied.
type UserPayload struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// NameValue returns the supplied name or "".
func (p UserPayload) NameValue() string { return deref(p.Name) }

// EmailValue returns the supplied email or "".
func (p UserPayload) EmailValue() string { return deref(p.Email) }

// RoleValue returns the supplied role or "".
func (p UserPayload) RoleValue() string { return deref(p.Role) }

// UserFilter constrains a user lookup by field equality.
// Zero-valued fields are not constrained.
type UserFilter struct {
	Name  string
	Email string
	Role  Role
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
