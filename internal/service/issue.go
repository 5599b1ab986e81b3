// internal/service/issue.go
package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/pagination"
	"github.com/issuetrackhq/issuetrack/internal/repository"
)

type IssueService struct {
	issues   repository.IssueRepositoryIface
	orgs     repository.OrganizationRepositoryIface
	access   *AccessPolicy
	audit    *AuditService
	validate *validator.Validate
}

func NewIssueService(
	issues repository.IssueRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	access *AccessPolicy,
	audit *AuditService,
) *IssueService {
	return &IssueService{
		issues:   issues,
		orgs:     orgs,
		access:   access,
		audit:    audit,
		validate: validator.New(),
	}
}

type CreateIssueInput struct {
	Title          string              `json:"title" validate:"required,min=1,max=200"`
	Description    string              `json:"description" validate:"required"`
	Priority       model.IssuePriority `json:"priority"`
	AssignedTo     *uuid.UUID          `json:"assigned_to"`
	OrganizationID uuid.UUID           `json:"organization_id" validate:"required"`
}

func (s *IssueService) CreateIssue(ctx context.Context, input CreateIssueInput, actor Actor) (*model.Issue, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.BadRequest("title and description are required")
	}

	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, domain.BadRequestf("invalid priority %q", input.Priority)
	}

	if _, err := s.access.RequireMembership(ctx, actor.UserID, input.OrganizationID); err != nil {
		return nil, err
	}

	issue := &model.Issue{
		Title:          input.Title,
		Description:    input.Description,
		Status:         model.IssueOpen,
		Priority:       input.Priority,
		CreatedByID:    actor.UserID,
		AssignedToID:   input.AssignedTo,
		OrganizationID: input.OrganizationID,
	}
	if err := s.issues.Create(ctx, issue); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionIssueCreated,
		EntityType:  model.EntityIssue,
		EntityID:    issue.ID,
		PerformedBy: actor.UserID,
		NewValue:    model.JSONMap{"title": issue.Title, "priority": string(issue.Priority)},
	})

	return issue, nil
}

// ListIssues returns the organization's live issues, newest first. ENGINEER
// actors see only issues they created or are assigned to; every returned
// issue passes through the assignee mask using the actor's membership role.
func (s *IssueService) ListIssues(ctx context.Context, actor Actor, orgID uuid.UUID, params pagination.Params) (pagination.Page[*model.Issue], error) {
	membership, err := s.access.RequireMembership(ctx, actor.UserID, orgID)
	if err != nil {
		return pagination.Page[*model.Issue]{}, err
	}

	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return pagination.Page[*model.Issue]{}, err
	}

	var restrictTo *uuid.UUID
	if actor.Role == model.RoleEngineer {
		restrictTo = &actor.UserID
	}

	issues, total, err := s.issues.FindByOrgPaginated(ctx, orgID, restrictTo, params.Offset(), params.Limit)
	if err != nil {
		return pagination.Page[*model.Issue]{}, err
	}

	masked := make([]*model.Issue, 0, len(issues))
	for _, issue := range issues {
		masked = append(masked, MaskAssignee(issue, org.Visibility, membership.Role))
	}

	return pagination.NewPage(masked, params, total), nil
}

// UpdateIssueStatus advances the status machine. Transitions only move along
// OPEN -> IN_PROGRESS -> RESOLVED -> CLOSED; closing is reserved to MANAGER
// and ADMIN actors.
func (s *IssueService) UpdateIssueStatus(ctx context.Context, issueID uuid.UUID, newStatus model.IssueStatus, actor Actor) (*model.Issue, error) {
	if !newStatus.Valid() {
		return nil, domain.BadRequestf("invalid status %q", newStatus)
	}

	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	if !issue.Status.CanTransitionTo(newStatus) {
		return nil, domain.BadRequestf("invalid status transition from %s to %s", issue.Status, newStatus)
	}

	if newStatus == model.IssueClosed && actor.Role != model.RoleManager && actor.Role != model.RoleAdmin {
		return nil, domain.Forbidden("only managers or admins can close issues")
	}

	oldStatus := issue.Status
	issue.Status = newStatus
	if err := s.issues.Update(ctx, issue); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionIssueStatusUpdated,
		EntityType:  model.EntityIssue,
		EntityID:    issue.ID,
		PerformedBy: actor.UserID,
		OldValue:    model.JSONMap{"status": string(oldStatus)},
		NewValue:    model.JSONMap{"status": string(newStatus)},
	})

	return issue, nil
}

func (s *IssueService) AssignIssue(ctx context.Context, issueID, assigneeID uuid.UUID, actor Actor) (*model.Issue, error) {
	if actor.Role != model.RoleManager && actor.Role != model.RoleAdmin {
		return nil, domain.Forbidden("only managers or admins can assign issues")
	}

	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	oldAssignee := issue.AssignedToID
	issue.AssignedToID = &assigneeID
	if err := s.issues.Update(ctx, issue); err != nil {
		return nil, err
	}

	oldValue := model.JSONMap{}
	if oldAssignee != nil {
		oldValue["assigned_to"] = oldAssignee.String()
	}
	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionIssueAssigned,
		EntityType:  model.EntityIssue,
		EntityID:    issue.ID,
		PerformedBy: actor.UserID,
		OldValue:    oldValue,
		NewValue:    model.JSONMap{"assigned_to": assigneeID.String()},
	})

	return issue, nil
}

// RequestAssignment records an engineer's intent to take an issue. It changes
// no issue state; the audit entry is the signal managers act on.
func (s *IssueService) RequestAssignment(ctx context.Context, issueID uuid.UUID, actor Actor) error {
	if actor.Role != model.RoleEngineer {
		return domain.Forbidden("only engineers can request assignment")
	}

	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return err
	}

	if issue.AssignedToID != nil {
		return domain.BadRequest("issue is already assigned")
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionIssueAssignmentRequested,
		EntityType:  model.EntityIssue,
		EntityID:    issue.ID,
		PerformedBy: actor.UserID,
		NewValue:    model.JSONMap{"requested_by": actor.UserID.String()},
	})

	return nil
}

// DeleteIssue soft-deletes: the record keeps its audit history and is simply
// excluded from normal reads.
func (s *IssueService) DeleteIssue(ctx context.Context, issueID uuid.UUID, actor Actor) error {
	if actor.Role != model.RoleManager && actor.Role != model.RoleAdmin {
		return domain.Forbidden("only managers or admins can delete issues")
	}

	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return err
	}

	if err := s.issues.SoftDelete(ctx, issue.ID); err != nil {
		return err
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionIssueDeleted,
		EntityType:  model.EntityIssue,
		EntityID:    issue.ID,
		PerformedBy: actor.UserID,
		OldValue:    model.JSONMap{"status": string(issue.Status)},
	})

	return nil
}
