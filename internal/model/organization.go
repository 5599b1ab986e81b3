// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// OrgRole is the operative role a user holds inside one organization. Roles
// are fixed at grant time; there is no role-change or removal operation.
type OrgRole string

const (
	OrgRoleOwner   OrgRole = "OWNER"
	OrgRoleAdmin   OrgRole = "ADMIN"
	OrgRoleMember  OrgRole = "MEMBER"
	OrgRoleAuditor OrgRole = "AUDITOR"
)

func (r OrgRole) Valid() bool {
	switch r {
	case OrgRoleOwner, OrgRoleAdmin, OrgRoleMember, OrgRoleAuditor:
		return true
	}
	return false
}

// Organization name is unique per creator, not globally. The invite code,
// when present, is globally unique and always paired with an expiry.
type Organization struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name                string     `gorm:"type:text;not null;uniqueIndex:idx_org_creator_name" json:"name"`
	CreatedByID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_org_creator_name" json:"created_by"`
	IsActive            bool       `gorm:"not null;default:true" json:"is_active"`
	Visibility          Visibility `gorm:"type:text;not null;default:'PUBLIC'" json:"visibility"`
	InviteCode          *string    `gorm:"type:text;uniqueIndex" json:"invite_code,omitempty"`
	InviteCodeExpiresAt *time.Time `json:"invite_code_expires_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"-"`
}

// Membership binds a user to an organization with an operative role. At most
// one membership exists per (user, organization) pair; it is the sole source
// of truth for the user's role inside that organization.
type Membership struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_user_org" json:"user_id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_user_org" json:"organization_id"`
	Role           OrgRole   `gorm:"type:text;not null;default:'MEMBER'" json:"role"`
	JoinedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"joined_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User         User         `gorm:"foreignKey:UserID" json:"-"`
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

func (Membership) TableName() string {
	return "organization_members"
}
