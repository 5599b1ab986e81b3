// internal/repository/issue.go
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

type IssueRepositoryIface interface {
	Create(ctx context.Context, issue *model.Issue) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Issue, error)
	Update(ctx context.Context, issue *model.Issue) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindByOrgPaginated(ctx context.Context, orgID uuid.UUID, restrictTo *uuid.UUID, offset, limit int) ([]*model.Issue, int64, error)
}

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// notDeleted scopes every normal read to live issues.
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}

func (r *IssueRepository) Create(ctx context.Context, issue *model.Issue) error {
	if err := r.db.WithContext(ctx).Create(issue).Error; err != nil {
		return fmt.Errorf("creating issue: %w", err)
	}
	return nil
}

func (r *IssueRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	var issue model.Issue
	if err := r.db.WithContext(ctx).Scopes(notDeleted).First(&issue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("issue not found")
		}
		return nil, fmt.Errorf("finding issue: %w", err)
	}
	return &issue, nil
}

func (r *IssueRepository) Update(ctx context.Context, issue *model.Issue) error {
	if err := r.db.WithContext(ctx).Save(issue).Error; err != nil {
		return fmt.Errorf("updating issue: %w", err)
	}
	return nil
}

// SoftDelete stamps deleted_at; the row is never physically removed.
func (r *IssueRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&model.Issue{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now)
	if result.Error != nil {
		return fmt.Errorf("soft-deleting issue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NotFound("issue not found")
	}
	return nil
}

// FindByOrgPaginated lists an organization's live issues newest first. When
// restrictTo is non-nil only issues the user created or is assigned to are
// returned.
func (r *IssueRepository) FindByOrgPaginated(ctx context.Context, orgID uuid.UUID, restrictTo *uuid.UUID, offset, limit int) ([]*model.Issue, int64, error) {
	var issues []*model.Issue
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Issue{}).
		Scopes(notDeleted).
		Where("organization_id = ?", orgID)
	if restrictTo != nil {
		query = query.Where("created_by_id = ? OR assigned_to_id = ?", *restrictTo, *restrictTo)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting issues: %w", err)
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&issues).Error; err != nil {
		return nil, 0, fmt.Errorf("finding issues: %w", err)
	}

	return issues, count, nil
}
