package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/mocks"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newContributionService(ctrl *gomock.Controller) (
	*service.ContributionService,
	*mocks.MockContributionRepositoryIface,
	*mocks.MockIssueRepositoryIface,
	*mocks.MockOrganizationRepositoryIface,
	*mocks.MockAuditLogRepositoryIface,
) {
	contributionRepo := mocks.NewMockContributionRepositoryIface(ctrl)
	issueRepo := mocks.NewMockIssueRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	auditRepo := mocks.NewMockAuditLogRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)

	audit := service.NewAuditService(auditRepo, userRepo)
	access := service.NewAccessPolicy(orgRepo)
	svc := service.NewContributionService(contributionRepo, issueRepo, access, audit)

	return svc, contributionRepo, issueRepo, orgRepo, auditRepo
}

func TestRequestContribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issueID := uuid.New()
	userID := uuid.New()
	orgID := uuid.New()

	t.Run("registers a pending request", func(t *testing.T) {
		svc, contributionRepo, issueRepo, orgRepo, auditRepo := newContributionService(ctrl)

		issueRepo.EXPECT().
			FindByID(gomock.Any(), issueID).
			Return(&model.Issue{ID: issueID, Status: model.IssueOpen}, nil)
		orgRepo.EXPECT().
			FindMembership(gomock.Any(), userID, orgID).
			Return(&model.Membership{Role: model.OrgRoleMember}, nil)
		contributionRepo.EXPECT().
			HasRequest(gomock.Any(), issueID, userID).
			Return(false, nil)
		contributionRepo.EXPECT().
			CreateRequest(gomock.Any(), gomock.Any()).
			Return(nil)
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		req, err := svc.RequestContribution(context.Background(), issueID, userID, orgID)

		assert.NoError(t, err)
		assert.Equal(t, model.RequestPending, req.Status)
	})

	t.Run("closed and resolved issues refuse requests", func(t *testing.T) {
		for _, status := range []model.IssueStatus{model.IssueClosed, model.IssueResolved} {
			svc, _, issueRepo, _, _ := newContributionService(ctrl)

			issueRepo.EXPECT().
				FindByID(gomock.Any(), issueID).
				Return(&model.Issue{ID: issueID, Status: status}, nil)

			_, err := svc.RequestContribution(context.Background(), issueID, userID, orgID)

			assert.True(t, domain.IsKind(err, domain.KindConflict), "status %s", status)
		}
	})

	t.Run("the current assignee cannot request", func(t *testing.T) {
		svc, _, issueRepo, _, _ := newContributionService(ctrl)

		issueRepo.EXPECT().
			FindByID(gomock.Any(), issueID).
			Return(&model.Issue{ID: issueID, Status: model.IssueOpen, AssignedToID: &userID}, nil)

		_, err := svc.RequestContribution(context.Background(), issueID, userID, orgID)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})

	t.Run("non-members cannot request", func(t *testing.T) {
		svc, _, issueRepo, orgRepo, _ := newContributionService(ctrl)

		issueRepo.EXPECT().
			FindByID(gomock.Any(), issueID).
			Return(&model.Issue{ID: issueID, Status: model.IssueOpen}, nil)
		orgRepo.EXPECT().
			FindMembership(gomock.Any(), userID, orgID).
			Return(nil, domain.NotFound("membership not found"))

		_, err := svc.RequestContribution(context.Background(), issueID, userID, orgID)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("duplicate requests are rejected", func(t *testing.T) {
		svc, contributionRepo, issueRepo, orgRepo, _ := newContributionService(ctrl)

		issueRepo.EXPECT().
			FindByID(gomock.Any(), issueID).
			Return(&model.Issue{ID: issueID, Status: model.IssueOpen}, nil)
		orgRepo.EXPECT().
			FindMembership(gomock.Any(), userID, orgID).
			Return(&model.Membership{Role: model.OrgRoleMember}, nil)
		contributionRepo.EXPECT().
			HasRequest(gomock.Any(), issueID, userID).
			Return(true, nil)

		_, err := svc.RequestContribution(context.Background(), issueID, userID, orgID)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})
}

func TestSubmitProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issueID := uuid.New()
	userID := uuid.New()
	orgID := uuid.New()

	t.Run("submits with an approved request", func(t *testing.T) {
		svc, contributionRepo, issueRepo, _, auditRepo := newContributionService(ctrl)

		issueRepo.EXPECT().
			FindByID(gomock.Any(), issueID).
			Return(&model.Issue{ID: issueID, Status: model.IssueInProgress}, nil)
		contributionRepo.EXPECT().
			FindApprovedRequest(gomock.Any(), issueID, userID).
			Return(&model.ContributionRequest{ID: uuid.New(), Status: model.RequestApproved}, nil)
		contributionRepo.EXPECT().
			CreateProof(gomock.Any(), gomock.Any()).
			Return(nil)
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		proof, err := svc.SubmitProof(context.Background(), issueID, userID, orgID, "fixed in PR 42", []string{"https://example.com/pr/42"})

		assert.NoError(t, err)
		assert.Equal(t, model.ProofSubmitted, proof.Status)
		assert.Equal(t, userID, proof.ContributorID)
	})

	t.Run("closed issues refuse proofs", func(t *testing.T) {
		svc, _, issueRepo, _, _ := newContributionService(ctrl)

		issueRepo.EXPECT().
			FindByID(gomock.Any(), issueID).
			Return(&model.Issue{ID: issueID, Status: model.IssueClosed}, nil)

		_, err := svc.SubmitProof(context.Background(), issueID, userID, orgID, "too late", nil)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindConflict))
	})

	t.Run("requires an approved request", func(t *testing.T) {
		svc, contributionRepo, issueRepo, _, _ := newContributionService(ctrl)

		issueRepo.EXPECT().
			FindByID(gomock.Any(), issueID).
			Return(&model.Issue{ID: issueID, Status: model.IssueOpen}, nil)
		contributionRepo.EXPECT().
			FindApprovedRequest(gomock.Any(), issueID, userID).
			Return(nil, domain.NotFound("no approved request"))

		_, err := svc.SubmitProof(context.Background(), issueID, userID, orgID, "unsanctioned work", nil)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}

func TestReviewProof(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reviewerID := uuid.New()
	issueID := uuid.New()

	t.Run("acceptance resolves the issue regardless of its status", func(t *testing.T) {
		svc, contributionRepo, issueRepo, _, auditRepo := newContributionService(ctrl)

		proof := &model.ContributionProof{ID: uuid.New(), IssueID: issueID, Status: model.ProofSubmitted}

		contributionRepo.EXPECT().
			FindProofByID(gomock.Any(), proof.ID).
			Return(proof, nil)
		contributionRepo.EXPECT().
			UpdateProof(gomock.Any(), proof).
			Return(nil)
		issueRepo.EXPECT().
			FindByID(gomock.Any(), issueID).
			Return(&model.Issue{ID: issueID, Status: model.IssueOpen}, nil)
		issueRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, issue *model.Issue) error {
				assert.Equal(t, model.IssueResolved, issue.Status)
				return nil
			})
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		out, err := svc.ReviewProof(context.Background(), proof.ID, reviewerID, model.ProofAccepted)

		assert.NoError(t, err)
		assert.True(t, out.IssueUpdated)
		assert.Equal(t, model.ProofAccepted, out.Proof.Status)
		assert.Equal(t, &reviewerID, out.Proof.ReviewedByID)
		assert.NotNil(t, out.Proof.ReviewedAt)
	})

	t.Run("rejection leaves the issue untouched", func(t *testing.T) {
		svc, contributionRepo, _, _, auditRepo := newContributionService(ctrl)

		proof := &model.ContributionProof{ID: uuid.New(), IssueID: issueID, Status: model.ProofSubmitted}

		contributionRepo.EXPECT().
			FindProofByID(gomock.Any(), proof.ID).
			Return(proof, nil)
		contributionRepo.EXPECT().
			UpdateProof(gomock.Any(), proof).
			Return(nil)
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		out, err := svc.ReviewProof(context.Background(), proof.ID, reviewerID, model.ProofRejected)

		assert.NoError(t, err)
		assert.False(t, out.IssueUpdated)
		assert.Equal(t, model.ProofRejected, out.Proof.Status)
	})

	t.Run("a reviewed proof cannot be reviewed again", func(t *testing.T) {
		svc, contributionRepo, _, _, _ := newContributionService(ctrl)

		proof := &model.ContributionProof{ID: uuid.New(), Status: model.ProofAccepted}

		contributionRepo.EXPECT().
			FindProofByID(gomock.Any(), proof.ID).
			Return(proof, nil)

		_, err := svc.ReviewProof(context.Background(), proof.ID, reviewerID, model.ProofRejected)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindConflict))
	})

	t.Run("rejects a decision outside the closed set", func(t *testing.T) {
		svc, _, _, _, _ := newContributionService(ctrl)

		_, err := svc.ReviewProof(context.Background(), uuid.New(), reviewerID, model.ProofSubmitted)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})
}

func TestGetUserContributionStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	svc, contributionRepo, _, _, _ := newContributionService(ctrl)

	contributionRepo.EXPECT().
		CountProofsByStatus(gomock.Any(), userID, model.ProofAccepted).
		Return(int64(4), nil)
	contributionRepo.EXPECT().
		CountProofsByStatus(gomock.Any(), userID, model.ProofSubmitted).
		Return(int64(2), nil)

	stats, err := svc.GetUserContributionStats(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.AcceptedContributions)
	assert.Equal(t, int64(2), stats.PendingSubmissions)
}
