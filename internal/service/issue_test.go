package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/mocks"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/pagination"
	"github.com/issuetrackhq/issuetrack/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newIssueService(ctrl *gomock.Controller) (
	*service.IssueService,
	*mocks.MockIssueRepositoryIface,
	*mocks.MockOrganizationRepositoryIface,
	*mocks.MockAuditLogRepositoryIface,
) {
	issueRepo := mocks.NewMockIssueRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	auditRepo := mocks.NewMockAuditLogRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)

	audit := service.NewAuditService(auditRepo, userRepo)
	access := service.NewAccessPolicy(orgRepo)
	svc := service.NewIssueService(issueRepo, orgRepo, access, audit)

	return svc, issueRepo, orgRepo, auditRepo
}

func TestCreateIssue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actor := service.Actor{UserID: uuid.New(), Role: model.RoleEngineer}

	t.Run("creates an open issue with default priority", func(t *testing.T) {
		svc, issueRepo, orgRepo, auditRepo := newIssueService(ctrl)

		orgRepo.EXPECT().
			FindMembership(gomock.Any(), actor.UserID, orgID).
			Return(&model.Membership{Role: model.OrgRoleMember}, nil)
		issueRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		issue, err := svc.CreateIssue(context.Background(), service.CreateIssueInput{
			Title:          "Broken login",
			Description:    "Login fails with 500",
			OrganizationID: orgID,
		}, actor)

		assert.NoError(t, err)
		assert.Equal(t, model.IssueOpen, issue.Status)
		assert.Equal(t, model.PriorityMedium, issue.Priority)
		assert.Equal(t, actor.UserID, issue.CreatedByID)
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		svc, _, _, _ := newIssueService(ctrl)

		_, err := svc.CreateIssue(context.Background(), service.CreateIssueInput{
			Description:    "no title",
			OrganizationID: orgID,
		}, actor)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})

	t.Run("non-members cannot create issues", func(t *testing.T) {
		svc, _, orgRepo, _ := newIssueService(ctrl)

		orgRepo.EXPECT().
			FindMembership(gomock.Any(), actor.UserID, orgID).
			Return(nil, domain.NotFound("membership not found"))

		_, err := svc.CreateIssue(context.Background(), service.CreateIssueInput{
			Title:          "Broken login",
			Description:    "Login fails with 500",
			OrganizationID: orgID,
		}, actor)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}

func TestUpdateIssueStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := service.Actor{UserID: uuid.New(), Role: model.RoleManager}
	engineer := service.Actor{UserID: uuid.New(), Role: model.RoleEngineer}

	t.Run("allows each forward transition", func(t *testing.T) {
		steps := []struct {
			from model.IssueStatus
			to   model.IssueStatus
		}{
			{model.IssueOpen, model.IssueInProgress},
			{model.IssueInProgress, model.IssueResolved},
			{model.IssueResolved, model.IssueClosed},
		}

		for _, step := range steps {
			svc, issueRepo, _, auditRepo := newIssueService(ctrl)

			issueRepo.EXPECT().
				FindByID(gomock.Any(), gomock.Any()).
				Return(&model.Issue{ID: uuid.New(), Status: step.from}, nil)
			issueRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				Return(nil)
			auditRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(nil)

			issue, err := svc.UpdateIssueStatus(context.Background(), uuid.New(), step.to, manager)

			assert.NoError(t, err, "%s -> %s", step.from, step.to)
			assert.Equal(t, step.to, issue.Status)
		}
	})

	t.Run("rejects skipping and reverting", func(t *testing.T) {
		invalid := []struct {
			from model.IssueStatus
			to   model.IssueStatus
		}{
			{model.IssueOpen, model.IssueResolved},
			{model.IssueOpen, model.IssueClosed},
			{model.IssueInProgress, model.IssueOpen},
			{model.IssueResolved, model.IssueInProgress},
			{model.IssueClosed, model.IssueOpen},
			{model.IssueClosed, model.IssueClosed},
		}

		for _, step := range invalid {
			svc, issueRepo, _, _ := newIssueService(ctrl)

			issueRepo.EXPECT().
				FindByID(gomock.Any(), gomock.Any()).
				Return(&model.Issue{ID: uuid.New(), Status: step.from}, nil)

			_, err := svc.UpdateIssueStatus(context.Background(), uuid.New(), step.to, manager)

			assert.True(t, domain.IsKind(err, domain.KindBadRequest), "%s -> %s", step.from, step.to)
		}
	})

	t.Run("engineers cannot close issues", func(t *testing.T) {
		svc, issueRepo, _, _ := newIssueService(ctrl)

		issueRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(&model.Issue{ID: uuid.New(), Status: model.IssueResolved}, nil)

		_, err := svc.UpdateIssueStatus(context.Background(), uuid.New(), model.IssueClosed, engineer)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("rejects an unknown status before touching storage", func(t *testing.T) {
		svc, _, _, _ := newIssueService(ctrl)

		_, err := svc.UpdateIssueStatus(context.Background(), uuid.New(), "ARCHIVED", manager)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})
}

func TestAssignIssue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assigneeID := uuid.New()

	t.Run("managers can assign", func(t *testing.T) {
		svc, issueRepo, _, auditRepo := newIssueService(ctrl)

		issueRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(&model.Issue{ID: uuid.New(), Status: model.IssueOpen}, nil)
		issueRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		issue, err := svc.AssignIssue(context.Background(), uuid.New(), assigneeID, service.Actor{UserID: uuid.New(), Role: model.RoleManager})

		assert.NoError(t, err)
		assert.Equal(t, &assigneeID, issue.AssignedToID)
	})

	t.Run("engineers cannot assign", func(t *testing.T) {
		svc, _, _, _ := newIssueService(ctrl)

		_, err := svc.AssignIssue(context.Background(), uuid.New(), assigneeID, service.Actor{UserID: uuid.New(), Role: model.RoleEngineer})

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}

func TestRequestAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engineer := service.Actor{UserID: uuid.New(), Role: model.RoleEngineer}

	t.Run("records the request without changing the issue", func(t *testing.T) {
		svc, issueRepo, _, auditRepo := newIssueService(ctrl)

		issueRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(&model.Issue{ID: uuid.New(), Status: model.IssueOpen}, nil)
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.RequestAssignment(context.Background(), uuid.New(), engineer)

		assert.NoError(t, err)
	})

	t.Run("rejects when the issue is already assigned", func(t *testing.T) {
		svc, issueRepo, _, _ := newIssueService(ctrl)

		existing := uuid.New()
		issueRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(&model.Issue{ID: uuid.New(), AssignedToID: &existing}, nil)

		err := svc.RequestAssignment(context.Background(), uuid.New(), engineer)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})

	t.Run("only engineers can request assignment", func(t *testing.T) {
		svc, _, _, _ := newIssueService(ctrl)

		err := svc.RequestAssignment(context.Background(), uuid.New(), service.Actor{UserID: uuid.New(), Role: model.RoleManager})

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}

func TestDeleteIssue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("soft-deletes for managers", func(t *testing.T) {
		svc, issueRepo, _, auditRepo := newIssueService(ctrl)

		issueID := uuid.New()
		issueRepo.EXPECT().
			FindByID(gomock.Any(), issueID).
			Return(&model.Issue{ID: issueID, Status: model.IssueOpen}, nil)
		issueRepo.EXPECT().
			SoftDelete(gomock.Any(), issueID).
			Return(nil)
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.DeleteIssue(context.Background(), issueID, service.Actor{UserID: uuid.New(), Role: model.RoleManager})

		assert.NoError(t, err)
	})

	t.Run("engineers cannot delete", func(t *testing.T) {
		svc, _, _, _ := newIssueService(ctrl)

		err := svc.DeleteIssue(context.Background(), uuid.New(), service.Actor{UserID: uuid.New(), Role: model.RoleEngineer})

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})
}

func TestListIssues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	params := pagination.Params{Page: 1, Limit: 10}

	t.Run("engineers only see their own issues", func(t *testing.T) {
		svc, issueRepo, orgRepo, _ := newIssueService(ctrl)

		engineer := service.Actor{UserID: uuid.New(), Role: model.RoleEngineer}

		orgRepo.EXPECT().
			FindMembership(gomock.Any(), engineer.UserID, orgID).
			Return(&model.Membership{Role: model.OrgRoleMember}, nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, Visibility: model.VisibilityPublic}, nil)
		issueRepo.EXPECT().
			FindByOrgPaginated(gomock.Any(), orgID, &engineer.UserID, 0, 10).
			Return([]*model.Issue{{ID: uuid.New(), CreatedByID: engineer.UserID}}, int64(1), nil)

		page, err := svc.ListIssues(context.Background(), engineer, orgID, params)

		assert.NoError(t, err)
		assert.Len(t, page.Data, 1)
		assert.Equal(t, int64(1), page.Pagination.Total)
	})

	t.Run("managers see the full list unrestricted", func(t *testing.T) {
		svc, issueRepo, orgRepo, _ := newIssueService(ctrl)

		manager := service.Actor{UserID: uuid.New(), Role: model.RoleManager}

		orgRepo.EXPECT().
			FindMembership(gomock.Any(), manager.UserID, orgID).
			Return(&model.Membership{Role: model.OrgRoleAdmin}, nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, Visibility: model.VisibilityPublic}, nil)
		issueRepo.EXPECT().
			FindByOrgPaginated(gomock.Any(), orgID, nil, 0, 10).
			Return([]*model.Issue{{ID: uuid.New()}, {ID: uuid.New()}}, int64(2), nil)

		page, err := svc.ListIssues(context.Background(), manager, orgID, params)

		assert.NoError(t, err)
		assert.Len(t, page.Data, 2)
	})

	t.Run("masks assignees for members of private organizations", func(t *testing.T) {
		svc, issueRepo, orgRepo, _ := newIssueService(ctrl)

		manager := service.Actor{UserID: uuid.New(), Role: model.RoleManager}
		assignee := uuid.New()

		orgRepo.EXPECT().
			FindMembership(gomock.Any(), manager.UserID, orgID).
			Return(&model.Membership{Role: model.OrgRoleMember}, nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, Visibility: model.VisibilityPrivate}, nil)
		issueRepo.EXPECT().
			FindByOrgPaginated(gomock.Any(), orgID, nil, 0, 10).
			Return([]*model.Issue{{ID: uuid.New(), AssignedToID: &assignee}}, int64(1), nil)

		page, err := svc.ListIssues(context.Background(), manager, orgID, params)

		assert.NoError(t, err)
		assert.Nil(t, page.Data[0].AssignedToID)
		assert.True(t, page.Data[0].AssigneeMasked)
	})
}
