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

func newInvitationService(ctrl *gomock.Controller) (
	*service.InvitationService,
	*mocks.MockInvitationRepositoryIface,
	*mocks.MockOrganizationRepositoryIface,
	*mocks.MockUserRepositoryIface,
	*mocks.MockAuditLogRepositoryIface,
) {
	invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	auditRepo := mocks.NewMockAuditLogRepositoryIface(ctrl)

	audit := service.NewAuditService(auditRepo, userRepo)
	access := service.NewAccessPolicy(orgRepo)
	svc := service.NewInvitationService(invitationRepo, orgRepo, userRepo, access, audit)

	return svc, invitationRepo, orgRepo, userRepo, auditRepo
}

func TestCreateInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	requesterID := uuid.New()
	invited := &model.User{ID: uuid.New(), Email: "new@example.com"}

	t.Run("admins can invite a registered user", func(t *testing.T) {
		svc, invitationRepo, orgRepo, userRepo, auditRepo := newInvitationService(ctrl)

		orgRepo.EXPECT().
			FindMembership(gomock.Any(), requesterID, orgID).
			Return(&model.Membership{Role: model.OrgRoleAdmin}, nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID}, nil)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), invited.Email).
			Return(invited, nil)
		orgRepo.EXPECT().
			FindMembership(gomock.Any(), invited.ID, orgID).
			Return(nil, domain.NotFound("membership not found"))
		invitationRepo.EXPECT().
			HasPending(gomock.Any(), orgID, invited.ID).
			Return(false, nil)
		invitationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		inv, err := svc.CreateInvitation(context.Background(), orgID, invited.Email, "", requesterID)

		assert.NoError(t, err)
		assert.Equal(t, model.InvitationPending, inv.Status)
		assert.Equal(t, model.OrgRoleMember, inv.Role)
	})

	t.Run("members cannot invite", func(t *testing.T) {
		svc, _, orgRepo, _, _ := newInvitationService(ctrl)

		orgRepo.EXPECT().
			FindMembership(gomock.Any(), requesterID, orgID).
			Return(&model.Membership{Role: model.OrgRoleMember}, nil)

		_, err := svc.CreateInvitation(context.Background(), orgID, invited.Email, model.OrgRoleMember, requesterID)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("cannot invite to the OWNER role", func(t *testing.T) {
		svc, _, orgRepo, userRepo, _ := newInvitationService(ctrl)

		orgRepo.EXPECT().
			FindMembership(gomock.Any(), requesterID, orgID).
			Return(&model.Membership{Role: model.OrgRoleOwner}, nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID}, nil)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), invited.Email).
			Return(invited, nil)

		_, err := svc.CreateInvitation(context.Background(), orgID, invited.Email, model.OrgRoleOwner, requesterID)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})

	t.Run("unknown email fails not found", func(t *testing.T) {
		svc, _, orgRepo, userRepo, _ := newInvitationService(ctrl)

		orgRepo.EXPECT().
			FindMembership(gomock.Any(), requesterID, orgID).
			Return(&model.Membership{Role: model.OrgRoleOwner}, nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID}, nil)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, domain.NotFound("user not found"))

		_, err := svc.CreateInvitation(context.Background(), orgID, "ghost@example.com", model.OrgRoleMember, requesterID)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})

	t.Run("existing members cannot be invited", func(t *testing.T) {
		svc, _, orgRepo, userRepo, _ := newInvitationService(ctrl)

		orgRepo.EXPECT().
			FindMembership(gomock.Any(), requesterID, orgID).
			Return(&model.Membership{Role: model.OrgRoleOwner}, nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID}, nil)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), invited.Email).
			Return(invited, nil)
		orgRepo.EXPECT().
			FindMembership(gomock.Any(), invited.ID, orgID).
			Return(&model.Membership{Role: model.OrgRoleMember}, nil)

		_, err := svc.CreateInvitation(context.Background(), orgID, invited.Email, model.OrgRoleMember, requesterID)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})

	t.Run("a pending invitation blocks a second one", func(t *testing.T) {
		svc, invitationRepo, orgRepo, userRepo, _ := newInvitationService(ctrl)

		orgRepo.EXPECT().
			FindMembership(gomock.Any(), requesterID, orgID).
			Return(&model.Membership{Role: model.OrgRoleOwner}, nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID}, nil)
		userRepo.EXPECT().
			FindByEmail(gomock.Any(), invited.Email).
			Return(invited, nil)
		orgRepo.EXPECT().
			FindMembership(gomock.Any(), invited.ID, orgID).
			Return(nil, domain.NotFound("membership not found"))
		invitationRepo.EXPECT().
			HasPending(gomock.Any(), orgID, invited.ID).
			Return(true, nil)

		_, err := svc.CreateInvitation(context.Background(), orgID, invited.Email, model.OrgRoleMember, requesterID)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})
}

func TestAcceptInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	orgID := uuid.New()

	t.Run("accepts and returns the organization", func(t *testing.T) {
		svc, invitationRepo, orgRepo, _, auditRepo := newInvitationService(ctrl)

		invitation := &model.Invitation{
			ID:             uuid.New(),
			OrganizationID: orgID,
			InvitedUserID:  userID,
			Role:           model.OrgRoleAuditor,
			Status:         model.InvitationPending,
		}

		invitationRepo.EXPECT().
			FindByID(gomock.Any(), invitation.ID).
			Return(invitation, nil)
		invitationRepo.EXPECT().
			Accept(gomock.Any(), invitation).
			Return(nil)
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		orgRepo.EXPECT().
			FindByID(gomock.Any(), orgID).
			Return(&model.Organization{ID: orgID, Name: "Acme"}, nil)

		out, err := svc.AcceptInvitation(context.Background(), invitation.ID, userID)

		assert.NoError(t, err)
		assert.Equal(t, model.OrgRoleAuditor, out.Role)
		assert.Equal(t, "Acme", out.Organization.Name)
	})

	t.Run("only the addressee can accept", func(t *testing.T) {
		svc, invitationRepo, _, _, _ := newInvitationService(ctrl)

		invitation := &model.Invitation{
			ID:            uuid.New(),
			InvitedUserID: uuid.New(),
			Status:        model.InvitationPending,
		}

		invitationRepo.EXPECT().
			FindByID(gomock.Any(), invitation.ID).
			Return(invitation, nil)

		_, err := svc.AcceptInvitation(context.Background(), invitation.ID, userID)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindForbidden))
	})

	t.Run("a responded invitation cannot be accepted again", func(t *testing.T) {
		svc, invitationRepo, _, _, _ := newInvitationService(ctrl)

		invitation := &model.Invitation{
			ID:            uuid.New(),
			InvitedUserID: userID,
			Status:        model.InvitationAccepted,
		}

		invitationRepo.EXPECT().
			FindByID(gomock.Any(), invitation.ID).
			Return(invitation, nil)

		_, err := svc.AcceptInvitation(context.Background(), invitation.ID, userID)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})
}

func TestDeclineInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("declines a pending invitation", func(t *testing.T) {
		svc, invitationRepo, _, _, auditRepo := newInvitationService(ctrl)

		invitation := &model.Invitation{
			ID:             uuid.New(),
			OrganizationID: uuid.New(),
			InvitedUserID:  userID,
			Status:         model.InvitationPending,
		}

		invitationRepo.EXPECT().
			FindByID(gomock.Any(), invitation.ID).
			Return(invitation, nil)
		invitationRepo.EXPECT().
			Decline(gomock.Any(), invitation).
			Return(nil)
		auditRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.DeclineInvitation(context.Background(), invitation.ID, userID)

		assert.NoError(t, err)
	})

	t.Run("a declined invitation cannot be declined again", func(t *testing.T) {
		svc, invitationRepo, _, _, _ := newInvitationService(ctrl)

		invitation := &model.Invitation{
			ID:            uuid.New(),
			InvitedUserID: userID,
			Status:        model.InvitationDeclined,
		}

		invitationRepo.EXPECT().
			FindByID(gomock.Any(), invitation.ID).
			Return(invitation, nil)

		err := svc.DeclineInvitation(context.Background(), invitation.ID, userID)

		assert.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindBadRequest))
	})
}
