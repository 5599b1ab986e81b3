// internal/service/contribution.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/repository"
)

type ContributionService struct {
	contributions repository.ContributionRepositoryIface
	issues        repository.IssueRepositoryIface
	access        *AccessPolicy
	audit         *AuditService
}

func NewContributionService(
	contributions repository.ContributionRepositoryIface,
	issues repository.IssueRepositoryIface,
	access *AccessPolicy,
	audit *AuditService,
) *ContributionService {
	return &ContributionService{
		contributions: contributions,
		issues:        issues,
		access:        access,
		audit:         audit,
	}
}

// RequestContribution registers a member's intent to work on an issue. The
// request starts PENDING; approval is an external administrative step.
func (s *ContributionService) RequestContribution(ctx context.Context, issueID, userID, orgID uuid.UUID) (*model.ContributionRequest, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	if issue.Status == model.IssueClosed || issue.Status == model.IssueResolved {
		return nil, domain.Conflict("cannot request contribution for closed or resolved issues")
	}

	if issue.AssignedToID != nil && *issue.AssignedToID == userID {
		return nil, domain.BadRequest("you are already assigned to this issue")
	}

	if _, err := s.access.RequireMembership(ctx, userID, orgID); err != nil {
		return nil, err
	}

	exists, err := s.contributions.HasRequest(ctx, issueID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.BadRequest("you have already requested to contribute to this issue")
	}

	request := &model.ContributionRequest{
		IssueID:        issueID,
		RequestedByID:  userID,
		OrganizationID: orgID,
		Status:         model.RequestPending,
	}
	if err := s.contributions.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionContributionRequested,
		EntityType:  model.EntityIssue,
		EntityID:    issueID,
		PerformedBy: userID,
		NewValue:    model.JSONMap{"contribution_request_id": request.ID.String()},
	})

	return request, nil
}

// SubmitProof records evidence of work. It requires an APPROVED contribution
// request; multiple submitted proofs per user and issue are allowed.
func (s *ContributionService) SubmitProof(ctx context.Context, issueID, userID, orgID uuid.UUID, content string, links []string) (*model.ContributionProof, error) {
	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	if issue.Status == model.IssueClosed {
		return nil, domain.Conflict("cannot submit proof for closed issues")
	}

	if _, err := s.contributions.FindApprovedRequest(ctx, issueID, userID); err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.Forbidden("you must have an approved contribution request to submit proof")
		}
		return nil, err
	}

	proof := &model.ContributionProof{
		IssueID:        issueID,
		ContributorID:  userID,
		OrganizationID: orgID,
		Content:        content,
		Links:          links,
		Status:         model.ProofSubmitted,
	}
	if err := s.contributions.CreateProof(ctx, proof); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionProofSubmitted,
		EntityType:  model.EntityIssue,
		EntityID:    issueID,
		PerformedBy: userID,
		NewValue:    model.JSONMap{"proof_id": proof.ID.String()},
	})

	return proof, nil
}

type ReviewProofOutput struct {
	Proof        *model.ContributionProof `json:"proof"`
	IssueUpdated bool                     `json:"issue_updated"`
}

// ReviewProof accepts or rejects a submitted proof. Acceptance is the
// authoritative resolution signal: it forces the linked issue to RESOLVED
// regardless of its current status, bypassing the normal transition table.
func (s *ContributionService) ReviewProof(ctx context.Context, proofID, reviewerID uuid.UUID, decision model.ProofStatus) (*ReviewProofOutput, error) {
	if decision != model.ProofAccepted && decision != model.ProofRejected {
		return nil, domain.BadRequest("invalid decision, must be ACCEPTED or REJECTED")
	}

	proof, err := s.contributions.FindProofByID(ctx, proofID)
	if err != nil {
		return nil, err
	}

	if proof.Status != model.ProofSubmitted {
		return nil, domain.Conflict("proof has already been reviewed")
	}

	now := time.Now().UTC()
	proof.Status = decision
	proof.ReviewedByID = &reviewerID
	proof.ReviewedAt = &now
	if err := s.contributions.UpdateProof(ctx, proof); err != nil {
		return nil, err
	}

	issueUpdated := false
	newValue := model.JSONMap{"decision": string(decision)}
	if decision == model.ProofAccepted {
		issue, err := s.issues.FindByID(ctx, proof.IssueID)
		if err == nil {
			issue.Status = model.IssueResolved
			if err := s.issues.Update(ctx, issue); err != nil {
				return nil, err
			}
			issueUpdated = true
			newValue["issue_status"] = string(model.IssueResolved)
		} else if !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionProofReviewed,
		EntityType:  model.EntityContributionProof,
		EntityID:    proof.ID,
		PerformedBy: reviewerID,
		NewValue:    newValue,
	})

	return &ReviewProofOutput{Proof: proof, IssueUpdated: issueUpdated}, nil
}

type ContributionStats struct {
	AcceptedContributions int64 `json:"acceptedContributions"`
	PendingSubmissions    int64 `json:"pendingSubmissions"`
}

func (s *ContributionService) GetUserContributionStats(ctx context.Context, userID uuid.UUID) (*ContributionStats, error) {
	accepted, err := s.contributions.CountProofsByStatus(ctx, userID, model.ProofAccepted)
	if err != nil {
		return nil, err
	}
	pending, err := s.contributions.CountProofsByStatus(ctx, userID, model.ProofSubmitted)
	if err != nil {
		return nil, err
	}
	return &ContributionStats{
		AcceptedContributions: accepted,
		PendingSubmissions:    pending,
	}, nil
}
