// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the legacy global role carried on the user record. It is a
// fallback for operations that are not scoped to an organization; wherever an
// organization context exists the per-organization membership role wins.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleManager  UserRole = "MANAGER"
	RoleEngineer UserRole = "ENGINEER"
	RoleAuditor  UserRole = "AUDITOR"
)

// Valid reports whether r is one of the known global roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEngineer, RoleAuditor:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         UserRole  `gorm:"type:text;not null;default:'ENGINEER'" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
