// internal/model/contribution.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ContributionRequestStatus string

const (
	RequestPending  ContributionRequestStatus = "PENDING"
	RequestApproved ContributionRequestStatus = "APPROVED"
	RequestRejected ContributionRequestStatus = "REJECTED"
)

// ContributionRequest records a non-assignee asking to work on an issue.
// At most one request exists per (issue, requester). The PENDING -> APPROVED
// transition is an external administrative step; no core operation performs
// it.
type ContributionRequest struct {
	ID             uuid.UUID                 `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	IssueID        uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:idx_request_issue_user" json:"issue_id"`
	RequestedByID  uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:idx_request_issue_user" json:"requested_by"`
	OrganizationID uuid.UUID                 `gorm:"type:uuid;not null" json:"organization_id"`
	Status         ContributionRequestStatus `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`

	Issue Issue `gorm:"foreignKey:IssueID" json:"-"`
}

type ProofStatus string

const (
	ProofSubmitted ProofStatus = "SUBMITTED"
	ProofAccepted  ProofStatus = "ACCEPTED"
	ProofRejected  ProofStatus = "REJECTED"
)

// ContributionProof is evidence of work submitted against an issue. Multiple
// proofs per (issue, contributor) are allowed; each is reviewed on its own.
type ContributionProof struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	IssueID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"issue_id"`
	ContributorID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"contributor"`
	OrganizationID uuid.UUID      `gorm:"type:uuid;not null" json:"organization_id"`
	Content        string         `gorm:"type:text;not null" json:"content"`
	Links          pq.StringArray `gorm:"type:text[]" json:"links"`
	Status         ProofStatus    `gorm:"type:text;not null;default:'SUBMITTED'" json:"status"`
	ReviewedByID   *uuid.UUID     `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time     `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Issue Issue `gorm:"foreignKey:IssueID" json:"-"`
}
