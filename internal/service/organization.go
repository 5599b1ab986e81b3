// internal/service/organization.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/pagination"
	"github.com/issuetrackhq/issuetrack/internal/repository"
)

const (
	inviteCodeTTL        = 7 * 24 * time.Hour
	inviteCodeMaxRetries = 3
)

type OrganizationService struct {
	orgs     repository.OrganizationRepositoryIface
	access   *AccessPolicy
	audit    *AuditService
	validate *validator.Validate
}

func NewOrganizationService(
	orgs repository.OrganizationRepositoryIface,
	access *AccessPolicy,
	audit *AuditService,
) *OrganizationService {
	return &OrganizationService{
		orgs:     orgs,
		access:   access,
		audit:    audit,
		validate: validator.New(),
	}
}

type CreateOrganizationInput struct {
	Name       string           `json:"name" validate:"required,min=1,max=120"`
	Visibility model.Visibility `json:"visibility"`
}

// CreateOrganization creates the organization and the creator's OWNER
// membership atomically, then records the audit entry best-effort.
func (s *OrganizationService) CreateOrganization(ctx context.Context, input CreateOrganizationInput, creatorID uuid.UUID) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.BadRequest("organization name is required")
	}

	if input.Visibility == "" {
		input.Visibility = model.VisibilityPublic
	}
	if !input.Visibility.Valid() {
		return nil, domain.BadRequestf("invalid visibility %q", input.Visibility)
	}

	exists, err := s.orgs.ExistsByCreatorAndName(ctx, creatorID, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.BadRequest("you have already created an organization with this name")
	}

	org := &model.Organization{
		Name:        input.Name,
		CreatedByID: creatorID,
		IsActive:    true,
		Visibility:  input.Visibility,
	}

	if err := s.orgs.CreateWithOwner(ctx, org); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionOrganizationCreated,
		EntityType:  model.EntityOrganization,
		EntityID:    org.ID,
		PerformedBy: creatorID,
		NewValue:    model.JSONMap{"name": org.Name, "visibility": string(org.Visibility)},
	})

	return org, nil
}

// MemberView is one row of the member directory.
type MemberView struct {
	ID       uuid.UUID     `json:"id"`
	UserID   uuid.UUID     `json:"user_id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Role     model.OrgRole `json:"role"`
	JoinedAt time.Time     `json:"joined_at"`
}

// GetOrganizationMembers lists members newest-join-first. PUBLIC
// organizations are listable by any authenticated caller; PRIVATE ones only
// by members.
func (s *OrganizationService) GetOrganizationMembers(ctx context.Context, orgID, requesterID uuid.UUID, params pagination.Params) (pagination.Page[MemberView], error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return pagination.Page[MemberView]{}, err
	}

	visible, err := s.access.CanViewMembers(ctx, org, requesterID)
	if err != nil {
		return pagination.Page[MemberView]{}, err
	}
	if !visible {
		return pagination.Page[MemberView]{}, domain.Forbidden("you are not a member of this organization")
	}

	members, total, err := s.orgs.FindMembersPaginated(ctx, orgID, params.Offset(), params.Limit)
	if err != nil {
		return pagination.Page[MemberView]{}, err
	}

	views := make([]MemberView, 0, len(members))
	for _, m := range members {
		views = append(views, MemberView{
			ID:       m.ID,
			UserID:   m.UserID,
			Name:     m.User.Name,
			Email:    m.User.Email,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		})
	}

	return pagination.NewPage(views, params, total), nil
}

type InviteCodeOutput struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GenerateInviteCode issues a fresh shared code with a 7-day expiry. Code
// collision is rare and transient, so generation retries a bounded number of
// times before giving up.
func (s *OrganizationService) GenerateInviteCode(ctx context.Context, orgID, requesterID uuid.UUID) (*InviteCodeOutput, error) {
	if _, err := s.orgs.FindByID(ctx, orgID); err != nil {
		return nil, err
	}

	membership, err := s.access.RequireMembership(ctx, requesterID, orgID)
	if err != nil {
		return nil, err
	}
	if err := s.access.RequireRole(membership, model.OrgRoleOwner, model.OrgRoleAdmin); err != nil {
		return nil, err
	}

	expiresAt := time.Now().UTC().Add(inviteCodeTTL)

	var code string
	for attempt := 0; attempt < inviteCodeMaxRetries; attempt++ {
		code, err = generateInviteCode()
		if err != nil {
			return nil, err
		}

		err = s.orgs.SetInviteCode(ctx, orgID, code, expiresAt)
		if err == nil {
			break
		}
		if !domain.IsKind(err, domain.KindConflict) {
			return nil, err
		}
	}
	if err != nil {
		return nil, domain.Conflict("could not generate a unique invite code")
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionInviteCodeGenerated,
		EntityType:  model.EntityOrganization,
		EntityID:    orgID,
		PerformedBy: requesterID,
		NewValue:    model.JSONMap{"expires_at": expiresAt.Format(time.RFC3339)},
	})

	return &InviteCodeOutput{Code: code, ExpiresAt: expiresAt}, nil
}

type JoinByCodeOutput struct {
	Organization *model.Organization `json:"organization"`
	Role         model.OrgRole       `json:"role"`
}

// JoinOrganizationByCode redeems a shared invite code for a MEMBER
// membership.
func (s *OrganizationService) JoinOrganizationByCode(ctx context.Context, code string, userID uuid.UUID) (*JoinByCodeOutput, error) {
	if code == "" {
		return nil, domain.BadRequest("invite code is required")
	}

	org, err := s.orgs.FindByInviteCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if org.InviteCodeExpiresAt == nil || org.InviteCodeExpiresAt.Before(time.Now().UTC()) {
		return nil, domain.BadRequest("invite code has expired")
	}

	membership := &model.Membership{
		UserID:         userID,
		OrganizationID: org.ID,
		Role:           model.OrgRoleMember,
		JoinedAt:       time.Now().UTC(),
	}
	if err := s.orgs.CreateMembership(ctx, membership); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, AuditEvent{
		Action:      model.ActionJoinedViaCode,
		EntityType:  model.EntityOrganization,
		EntityID:    org.ID,
		PerformedBy: userID,
		NewValue:    model.JSONMap{"role": string(model.OrgRoleMember)},
	})

	return &JoinByCodeOutput{Organization: org, Role: model.OrgRoleMember}, nil
}

// UserOrganizationView is one organization a user belongs to, with the role
// they hold in it.
type UserOrganizationView struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	Visibility model.Visibility `json:"visibility"`
	Role       model.OrgRole    `json:"role"`
	JoinedAt   time.Time        `json:"joined_at"`
}

// ListUserOrganizations returns every organization the user is a member of.
func (s *OrganizationService) ListUserOrganizations(ctx context.Context, userID uuid.UUID) ([]UserOrganizationView, error) {
	memberships, err := s.orgs.FindMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]UserOrganizationView, 0, len(memberships))
	for _, m := range memberships {
		views = append(views, UserOrganizationView{
			ID:         m.OrganizationID,
			Name:       m.Organization.Name,
			Visibility: m.Organization.Visibility,
			Role:       m.Role,
			JoinedAt:   m.JoinedAt,
		})
	}
	return views, nil
}

// generateInviteCode creates a cryptographically random code.
func generateInviteCode() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating invite code: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
