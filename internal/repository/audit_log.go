// internal/repository/audit_log.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"gorm.io/gorm"
)

type AuditLogRepositoryIface interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	Query(ctx context.Context, params AuditQueryParams) ([]*model.AuditLog, int64, error)
}

// AuditLogRepository handles database operations for the audit trail. It
// exposes no update or delete: entries are immutable once written.
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, entry *model.AuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}
	return nil
}

// AuditQueryParams holds filters for querying the audit trail.
type AuditQueryParams struct {
	EntityType string
	EntityID   *uuid.UUID
	Limit      int
	Offset     int
}

// Query retrieves audit entries newest first.
func (r *AuditLogRepository) Query(ctx context.Context, params AuditQueryParams) ([]*model.AuditLog, int64, error) {
	var entries []*model.AuditLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.AuditLog{})
	if params.EntityType != "" {
		query = query.Where("entity_type = ?", params.EntityType)
	}
	if params.EntityID != nil {
		query = query.Where("entity_id = ?", *params.EntityID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit log entries: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(params.Offset).Limit(params.Limit).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query audit log entries: %w", err)
	}

	return entries, count, nil
}
