// internal/model/issue.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type IssueStatus string

const (
	IssueOpen       IssueStatus = "OPEN"
	IssueInProgress IssueStatus = "IN_PROGRESS"
	IssueResolved   IssueStatus = "RESOLVED"
	IssueClosed     IssueStatus = "CLOSED"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case IssueOpen, IssueInProgress, IssueResolved, IssueClosed:
		return true
	}
	return false
}

// CanTransitionTo enforces the one-way status machine
// OPEN -> IN_PROGRESS -> RESOLVED -> CLOSED. No skipping, no reverting.
func (s IssueStatus) CanTransitionTo(next IssueStatus) bool {
	switch s {
	case IssueOpen:
		return next == IssueInProgress
	case IssueInProgress:
		return next == IssueResolved
	case IssueResolved:
		return next == IssueClosed
	default:
		return false
	}
}

type IssuePriority string

const (
	PriorityLow      IssuePriority = "LOW"
	PriorityMedium   IssuePriority = "MEDIUM"
	PriorityHigh     IssuePriority = "HIGH"
	PriorityCritical IssuePriority = "CRITICAL"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Issue is a trackable unit of work scoped to one organization. DeletedAt is
// a soft-delete marker; soft-deleted issues are excluded from all normal
// reads. AssigneeMasked is a response-only flag set by the access policy when
// the real assignee is hidden from the requester.
type Issue struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title          string        `gorm:"type:text;not null" json:"title"`
	Description    string        `gorm:"type:text;not null" json:"description"`
	Status         IssueStatus   `gorm:"type:text;not null;default:'OPEN'" json:"status"`
	Priority       IssuePriority `gorm:"type:text;not null;default:'MEDIUM'" json:"priority"`
	CreatedByID    uuid.UUID     `gorm:"type:uuid;not null" json:"created_by"`
	AssignedToID   *uuid.UUID    `gorm:"type:uuid" json:"assigned_to,omitempty"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;not null;index:idx_issue_org_deleted" json:"organization_id"`
	DeletedAt      *time.Time    `gorm:"index:idx_issue_org_deleted" json:"-"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	AssigneeMasked bool `gorm:"-" json:"assignee_masked,omitempty"`

	CreatedBy    User         `gorm:"foreignKey:CreatedByID" json:"-"`
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
