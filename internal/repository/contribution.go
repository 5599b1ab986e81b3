// internal/repository/contribution.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"gorm.io/gorm"
)

type ContributionRepositoryIface interface {
	CreateRequest(ctx context.Context, req *model.ContributionRequest) error
	HasRequest(ctx context.Context, issueID, userID uuid.UUID) (bool, error)
	FindApprovedRequest(ctx context.Context, issueID, userID uuid.UUID) (*model.ContributionRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status model.ContributionRequestStatus) error
	CreateProof(ctx context.Context, proof *model.ContributionProof) error
	FindProofByID(ctx context.Context, id uuid.UUID) (*model.ContributionProof, error)
	UpdateProof(ctx context.Context, proof *model.ContributionProof) error
	CountProofsByStatus(ctx context.Context, contributorID uuid.UUID, status model.ProofStatus) (int64, error)
}

type ContributionRepository struct {
	db *gorm.DB
}

func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

func (r *ContributionRepository) CreateRequest(ctx context.Context, req *model.ContributionRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.BadRequest("you have already requested to contribute to this issue")
		}
		return fmt.Errorf("creating contribution request: %w", err)
	}
	return nil
}

func (r *ContributionRepository) HasRequest(ctx context.Context, issueID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ContributionRequest{}).
		Where("issue_id = ? AND requested_by_id = ?", issueID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking contribution request: %w", err)
	}
	return count > 0, nil
}

func (r *ContributionRepository) FindApprovedRequest(ctx context.Context, issueID, userID uuid.UUID) (*model.ContributionRequest, error) {
	var req model.ContributionRequest
	if err := r.db.WithContext(ctx).
		Where("issue_id = ? AND requested_by_id = ? AND status = ?",
			issueID, userID, model.RequestApproved).
		First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("no approved contribution request")
		}
		return nil, fmt.Errorf("finding approved request: %w", err)
	}
	return &req, nil
}

// UpdateRequestStatus is a store-level transition used by administrative
// tooling; no service operation approves requests.
func (r *ContributionRepository) UpdateRequestStatus(ctx context.Context, requestID uuid.UUID, status model.ContributionRequestStatus) error {
	result := r.db.WithContext(ctx).Model(&model.ContributionRequest{}).
		Where("id = ?", requestID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating request status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NotFound("contribution request not found")
	}
	return nil
}

func (r *ContributionRepository) CreateProof(ctx context.Context, proof *model.ContributionProof) error {
	if err := r.db.WithContext(ctx).Create(proof).Error; err != nil {
		return fmt.Errorf("creating contribution proof: %w", err)
	}
	return nil
}

func (r *ContributionRepository) FindProofByID(ctx context.Context, id uuid.UUID) (*model.ContributionProof, error) {
	var proof model.ContributionProof
	if err := r.db.WithContext(ctx).First(&proof, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("proof not found")
		}
		return nil, fmt.Errorf("finding proof: %w", err)
	}
	return &proof, nil
}

func (r *ContributionRepository) UpdateProof(ctx context.Context, proof *model.ContributionProof) error {
	if err := r.db.WithContext(ctx).Save(proof).Error; err != nil {
		return fmt.Errorf("updating proof: %w", err)
	}
	return nil
}

func (r *ContributionRepository) CountProofsByStatus(ctx context.Context, contributorID uuid.UUID, status model.ProofStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ContributionProof{}).
		Where("contributor_id = ? AND status = ?", contributorID, status).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting proofs: %w", err)
	}
	return count, nil
}
