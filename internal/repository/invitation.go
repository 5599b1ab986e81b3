// internal/repository/invitation.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"gorm.io/gorm"
)

type InvitationRepositoryIface interface {
	Create(ctx context.Context, inv *model.Invitation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error)
	FindPendingByUser(ctx context.Context, userID uuid.UUID) ([]*model.Invitation, error)
	HasPending(ctx context.Context, orgID, invitedUserID uuid.UUID) (bool, error)
	Accept(ctx context.Context, inv *model.Invitation) error
	Decline(ctx context.Context, inv *model.Invitation) error
}

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, inv *model.Invitation) error {
	if err := r.db.WithContext(ctx).Create(inv).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.BadRequest("an invitation is already pending for this user")
		}
		return fmt.Errorf("creating invitation: %w", err)
	}
	return nil
}

func (r *InvitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	var inv model.Invitation
	if err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("invitation not found")
		}
		return nil, fmt.Errorf("finding invitation: %w", err)
	}
	return &inv, nil
}

// FindPendingByUser returns the user's PENDING invitations newest first, with
// the organization and inviter preloaded for the view layer.
func (r *InvitationRepository) FindPendingByUser(ctx context.Context, userID uuid.UUID) ([]*model.Invitation, error) {
	var invitations []*model.Invitation
	if err := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("InvitedBy").
		Where("invited_user_id = ? AND status = ?", userID, model.InvitationPending).
		Order("created_at DESC").
		Find(&invitations).Error; err != nil {
		return nil, fmt.Errorf("finding pending invitations: %w", err)
	}
	return invitations, nil
}

func (r *InvitationRepository) HasPending(ctx context.Context, orgID, invitedUserID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Invitation{}).
		Where("organization_id = ? AND invited_user_id = ? AND status = ?",
			orgID, invitedUserID, model.InvitationPending).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking pending invitation: %w", err)
	}
	return count > 0, nil
}

// Accept marks the invitation ACCEPTED and creates the membership in one
// transaction; on any failure neither write is visible.
func (r *InvitationRepository) Accept(ctx context.Context, inv *model.Invitation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inv.Status = model.InvitationAccepted
		if err := tx.Save(inv).Error; err != nil {
			return fmt.Errorf("updating invitation: %w", err)
		}

		membership := &model.Membership{
			UserID:         inv.InvitedUserID,
			OrganizationID: inv.OrganizationID,
			Role:           inv.Role,
			JoinedAt:       time.Now().UTC(),
		}
		if err := tx.Create(membership).Error; err != nil {
			return fmt.Errorf("creating membership: %w", err)
		}

		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("user is already a member of this organization")
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *InvitationRepository) Decline(ctx context.Context, inv *model.Invitation) error {
	inv.Status = model.InvitationDeclined
	if err := r.db.WithContext(ctx).Save(inv).Error; err != nil {
		return fmt.Errorf("updating invitation: %w", err)
	}
	return nil
}
