// internal/repository/organization.go
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

type OrganizationRepositoryIface interface {
	CreateWithOwner(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	ExistsByCreatorAndName(ctx context.Context, creatorID uuid.UUID, name string) (bool, error)
	FindByInviteCode(ctx context.Context, code string) (*model.Organization, error)
	SetInviteCode(ctx context.Context, orgID uuid.UUID, code string, expiresAt time.Time) error
	CreateMembership(ctx context.Context, m *model.Membership) error
	FindMembership(ctx context.Context, userID, orgID uuid.UUID) (*model.Membership, error)
	FindMembersPaginated(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Membership, int64, error)
	FindMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// CreateWithOwner creates the organization and its OWNER membership as one
// transaction: both rows are visible or neither is.
func (r *OrganizationRepository) CreateWithOwner(ctx context.Context, org *model.Organization) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		owner := &model.Membership{
			UserID:         org.CreatedByID,
			OrganizationID: org.ID,
			Role:           model.OrgRoleOwner,
			JoinedAt:       time.Now().UTC(),
		}
		if err := tx.Create(owner).Error; err != nil {
			return fmt.Errorf("creating owner membership: %w", err)
		}

		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return domain.BadRequest("you have already created an organization with this name")
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("organization not found")
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) ExistsByCreatorAndName(ctx context.Context, creatorID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Organization{}).
		Where("created_by_id = ? AND name = ?", creatorID, name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking organization name: %w", err)
	}
	return count > 0, nil
}

func (r *OrganizationRepository) FindByInviteCode(ctx context.Context, code string) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("invite code not recognized")
		}
		return nil, fmt.Errorf("finding organization by invite code: %w", err)
	}
	return &org, nil
}

// SetInviteCode persists a freshly generated code on the organization. A
// collision with another organization's code surfaces as Conflict so the
// caller can retry with a new code.
func (r *OrganizationRepository) SetInviteCode(ctx context.Context, orgID uuid.UUID, code string, expiresAt time.Time) error {
	err := r.db.WithContext(ctx).Model(&model.Organization{}).
		Where("id = ?", orgID).
		Updates(map[string]interface{}{
			"invite_code":            code,
			"invite_code_expires_at": expiresAt,
		}).Error
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("invite code already in use")
		}
		return fmt.Errorf("setting invite code: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) CreateMembership(ctx context.Context, m *model.Membership) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("user is already a member of this organization")
		}
		return fmt.Errorf("creating membership: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindMembership(ctx context.Context, userID, orgID uuid.UUID) (*model.Membership, error) {
	var m model.Membership
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND organization_id = ?", userID, orgID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("membership not found")
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &m, nil
}

// FindMembersPaginated returns the organization's members newest-join-first
// with their user records preloaded.
func (r *OrganizationRepository) FindMembersPaginated(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Membership, int64, error) {
	var members []*model.Membership
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting members: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("organization_id = ?", orgID).
		Order("joined_at DESC").
		Offset(offset).Limit(limit).
		Find(&members).Error; err != nil {
		return nil, 0, fmt.Errorf("finding members: %w", err)
	}

	return members, count, nil
}

func (r *OrganizationRepository) FindMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error) {
	var memberships []*model.Membership
	if err := r.db.WithContext(ctx).
		Preload("Organization").
		Where("user_id = ?", userID).
		Order("joined_at DESC").
		Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("finding user memberships: %w", err)
	}
	return memberships, nil
}
