// internal/model/invitation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
)

// Invitation is a pending offer of membership to a specific user. At most one
// PENDING invitation exists per (organization, invited user); the record is
// terminal once accepted or declined. The partial unique index backing the
// invariant is created by the migrator.
type Invitation struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID        `gorm:"type:uuid;not null" json:"organization_id"`
	InvitedUserID  uuid.UUID        `gorm:"type:uuid;not null" json:"invited_user_id"`
	InvitedByID    uuid.UUID        `gorm:"type:uuid;not null" json:"invited_by_id"`
	Role           OrgRole          `gorm:"type:text;not null;default:'MEMBER'" json:"role"`
	Status         InvitationStatus `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	InvitedUser  User         `gorm:"foreignKey:InvitedUserID" json:"-"`
	InvitedBy    User         `gorm:"foreignKey:InvitedByID" json:"-"`
}
