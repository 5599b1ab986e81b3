// internal/model/audit_log.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AuditAction is the closed set of recordable event names. New kinds are
// added here, never as ad hoc strings at call sites.
type AuditAction string

const (
	ActionIssueCreated             AuditAction = "ISSUE_CREATED"
	ActionIssueStatusUpdated       AuditAction = "ISSUE_STATUS_UPDATED"
	ActionIssueAssigned            AuditAction = "ISSUE_ASSIGNED"
	ActionIssueAssignmentRequested AuditAction = "ISSUE_ASSIGNMENT_REQUESTED"
	ActionIssueDeleted             AuditAction = "ISSUE_DELETED"
	ActionOrganizationCreated      AuditAction = "ORGANIZATION_CREATED"
	ActionInvitationSent           AuditAction = "ORG_INVITATION_SENT"
	ActionInvitationAccepted       AuditAction = "ORG_INVITATION_ACCEPTED"
	ActionInvitationDeclined       AuditAction = "ORG_INVITATION_DECLINED"
	ActionInviteCodeGenerated      AuditAction = "ORGANIZATION_INVITE_CODE_GENERATED"
	ActionJoinedViaCode            AuditAction = "ORGANIZATION_JOINED_VIA_CODE"
	ActionContributionRequested    AuditAction = "ISSUE_CONTRIBUTION_REQUESTED"
	ActionProofSubmitted           AuditAction = "CONTRIBUTION_PROOF_SUBMITTED"
	ActionProofReviewed            AuditAction = "CONTRIBUTION_PROOF_REVIEWED"
	ActionUserRegistered           AuditAction = "USER_REGISTERED"
)

// Entity type labels used in audit entries.
const (
	EntityOrganization      = "Organization"
	EntityIssue             = "Issue"
	EntityContributionProof = "ContributionProof"
	EntityUser              = "User"
)

// AuditLog is an append-only record of one consequential state change. Rows
// are never updated or deleted; no such code paths exist.
type AuditLog struct {
	ID            uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Action        AuditAction `gorm:"type:text;not null" json:"action"`
	EntityType    string      `gorm:"type:text;not null;index:idx_audit_entity" json:"entity_type"`
	EntityID      uuid.UUID   `gorm:"type:uuid;not null;index:idx_audit_entity" json:"entity_id"`
	PerformedByID uuid.UUID   `gorm:"type:uuid;not null" json:"performed_by"`
	OldValue      JSONMap     `gorm:"type:jsonb" json:"old_value,omitempty"`
	NewValue      JSONMap     `gorm:"type:jsonb" json:"new_value,omitempty"`
	CreatedAt     time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	PerformedBy User `gorm:"foreignKey:PerformedByID" json:"-"`
}

// JSONMap is a generic map stored as JSONB.
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap.
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}
