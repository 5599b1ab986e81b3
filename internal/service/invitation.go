// internal/service/invitation.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/repository"
)

type InvitationService struct {
	invitations repository.InvitationRepositoryIface
	orgs        repository.OrganizationRepositoryIface
	users       repository.UserRepositoryIface
	access      *AccessPolicy
	audit       *AuditService
}

func NewInvitationService(
	invitations repository.InvitationRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	users repository.UserRepositoryIface,
	access *AccessPolicy,
	audit *AuditService,
) *InvitationService {
	return &InvitationService{
		invitations: invitations,
		orgs:        orgs,
		users:       users,
		access:      access,
		audit:       audit,
	}
}

// CreateInvitation sends a pending membership offer to the user identified by
// email. Only OWNER and ADMIN members may invite.
func (s *InvitationService) CreateInvitation(ctx context.Context, orgID uuid.UUID, email string, role model.OrgRole, requesterID uuid.UUID) (*model.Invitation, error) {
	membership, err := s.access.RequireMembership(ctx, requesterID, orgID)
	if err != nil {
		return nil, err
	}
	if err := s.access.RequireRole(membership, model.OrgRoleOwner, model.OrgRoleAdmin); err != nil {
		return nil, err
	}

	if _, err := s.orgs.FindByID(ctx, orgID); err != nil {
		return nil, err
	}

	invited, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.NotFound("no user found with this email address")
		}
		return nil, err
	}

	if role == "" {
		role = model.OrgRoleMember
	}
	if !role.Valid() || role == model.OrgRoleOwner {
		return nil, domain.BadRequestf("invalid invitation role %q", role)
	}

	if _, err := s.orgs.FindMembership(ctx, invited.ID, orgID); err == nil {
		return nil, domain.BadRequest("user is already a member of this organization")
	} else if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	pending, err := s.invitations.HasPending(ctx, orgID, invited.ID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.BadRequest("an invitation is already pending for this user")
	}

	invitation := &model.Invitation{
		OrganizationID: orgID,
		InvitedUserID:  invited.ID,
		InvitedByID:    requesterID,
		Role:           role,
		Status:         model.InvitationPending,
	}
	if err := s.invitations.Create(ctx, invitation); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionInvitationSent,
		EntityType:  model.EntityOrganization,
		EntityID:    orgID,
		PerformedBy: requesterID,
		NewValue:    model.JSONMap{"invited_user": invited.ID.String(), "role": string(role)},
	})

	return invitation, nil
}

// InvitationView is one pending invitation enriched for display.
type InvitationView struct {
	ID           uuid.UUID `json:"id"`
	Organization struct {
		ID         uuid.UUID        `json:"id"`
		Name       string           `json:"name"`
		Visibility model.Visibility `json:"visibility"`
	} `json:"organization"`
	InvitedBy struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"invited_by"`
	Role      model.OrgRole `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
}

// GetMyInvitations returns the caller's PENDING invitations newest first.
func (s *InvitationService) GetMyInvitations(ctx context.Context, userID uuid.UUID) ([]InvitationView, error) {
	invitations, err := s.invitations.FindPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]InvitationView, 0, len(invitations))
	for _, inv := range invitations {
		view := InvitationView{
			ID:        inv.ID,
			Role:      inv.Role,
			CreatedAt: inv.CreatedAt,
		}
		view.Organization.ID = inv.OrganizationID
		view.Organization.Name = inv.Organization.Name
		view.Organization.Visibility = inv.Organization.Visibility
		view.InvitedBy.Name = inv.InvitedBy.Name
		view.InvitedBy.Email = inv.InvitedBy.Email
		views = append(views, view)
	}
	return views, nil
}

type AcceptInvitationOutput struct {
	Organization *model.Organization `json:"organization"`
	Role         model.OrgRole       `json:"role"`
}

// guardInvitation runs the shared addressee and status checks.
func (s *InvitationService) guardInvitation(ctx context.Context, invitationID, userID uuid.UUID) (*model.Invitation, error) {
	invitation, err := s.invitations.FindByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if invitation.InvitedUserID != userID {
		return nil, domain.Forbidden("this invitation is not for you")
	}
	if invitation.Status != model.InvitationPending {
		return nil, domain.BadRequest("this invitation has already been responded to")
	}
	return invitation, nil
}

// AcceptInvitation marks the invitation ACCEPTED and creates the membership
// in one transaction; no partial state is ever visible.
func (s *InvitationService) AcceptInvitation(ctx context.Context, invitationID, userID uuid.UUID) (*AcceptInvitationOutput, error) {
	invitation, err := s.guardInvitation(ctx, invitationID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.invitations.Accept(ctx, invitation); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionInvitationAccepted,
		EntityType:  model.EntityOrganization,
		EntityID:    invitation.OrganizationID,
		PerformedBy: userID,
		NewValue:    model.JSONMap{"role": string(invitation.Role)},
	})

	org, err := s.orgs.FindByID(ctx, invitation.OrganizationID)
	if err != nil {
		return nil, err
	}

	return &AcceptInvitationOutput{Organization: org, Role: invitation.Role}, nil
}

// DeclineInvitation marks the invitation DECLINED. Declined invitations are
// terminal; the user can be re-invited afterwards.
func (s *InvitationService) DeclineInvitation(ctx context.Context, invitationID, userID uuid.UUID) error {
	invitation, err := s.guardInvitation(ctx, invitationID, userID)
	if err != nil {
		return err
	}

	if err := s.invitations.Decline(ctx, invitation); err != nil {
		return err
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionInvitationDeclined,
		EntityType:  model.EntityOrganization,
		EntityID:    invitation.OrganizationID,
		PerformedBy: userID,
	})

	return nil
}
