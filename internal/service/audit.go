// internal/service/audit.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/pagination"
	"github.com/issuetrackhq/issuetrack/internal/repository"
)

// AuditService appends to and reads the append-only audit trail.
type AuditService struct {
	repo  repository.AuditLogRepositoryIface
	users repository.UserRepositoryIface
}

func NewAuditService(repo repository.AuditLogRepositoryIface, users repository.UserRepositoryIface) *AuditService {
	return &AuditService{repo: repo, users: users}
}

// AuditEvent describes one consequential state change.
type AuditEvent struct {
	Action      model.AuditAction
	EntityType  string
	EntityID    uuid.UUID
	PerformedBy uuid.UUID
	OldValue    model.JSONMap
	NewValue    model.JSONMap
}

// Record appends one immutable entry. Audit logging is best-effort: a failed
// append is reported to operators via the log and never surfaced to the
// caller or used to abort the triggering operation.
func (s *AuditService) Record(ctx context.Context, event AuditEvent) {
	entry := &model.AuditLog{
		Action:        event.Action,
		EntityType:    event.EntityType,
		EntityID:      event.EntityID,
		PerformedByID: event.PerformedBy,
		OldValue:      event.OldValue,
		NewValue:      event.NewValue,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "Failed to record audit event",
			"action", event.Action,
			"entity_type", event.EntityType,
			"entity_id", event.EntityID,
			"error", err,
		)
	}
}

// AuditLogView is an audit entry with the performer resolved to a display
// name.
type AuditLogView struct {
	ID          uuid.UUID         `json:"id"`
	Action      model.AuditAction `json:"action"`
	EntityType  string            `json:"entity_type"`
	EntityID    uuid.UUID         `json:"entity_id"`
	PerformedBy struct {
		ID    uuid.UUID `json:"id"`
		Name  string    `json:"name"`
		Email string    `json:"email"`
	} `json:"performed_by"`
	OldValue  model.JSONMap `json:"old_value,omitempty"`
	NewValue  model.JSONMap `json:"new_value,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// AuditFilter narrows GetAuditLogs to one entity type and/or entity.
type AuditFilter struct {
	EntityType string
	EntityID   *uuid.UUID
}

// GetAuditLogs returns filtered entries newest first, paginated, each with
// the performer resolved.
func (s *AuditService) GetAuditLogs(ctx context.Context, filter AuditFilter, params pagination.Params) (pagination.Page[AuditLogView], error) {
	entries, total, err := s.repo.Query(ctx, repository.AuditQueryParams{
		EntityType: filter.EntityType,
		EntityID:   filter.EntityID,
		Offset:     params.Offset(),
		Limit:      params.Limit,
	})
	if err != nil {
		return pagination.Page[AuditLogView]{}, fmt.Errorf("querying audit logs: %w", err)
	}

	performerIDs := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]bool, len(entries))
	for _, e := range entries {
		if !seen[e.PerformedByID] {
			seen[e.PerformedByID] = true
			performerIDs = append(performerIDs, e.PerformedByID)
		}
	}

	performers, err := s.users.FindByIDs(ctx, performerIDs)
	if err != nil {
		return pagination.Page[AuditLogView]{}, fmt.Errorf("resolving performers: %w", err)
	}

	views := make([]AuditLogView, 0, len(entries))
	for _, e := range entries {
		view := AuditLogView{
			ID:         e.ID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			OldValue:   e.OldValue,
			NewValue:   e.NewValue,
			CreatedAt:  e.CreatedAt,
		}
		view.PerformedBy.ID = e.PerformedByID
		if u, ok := performers[e.PerformedByID]; ok {
			view.PerformedBy.Name = u.Name
			view.PerformedBy.Email = u.Email
		}
		views = append(views, view)
	}

	return pagination.NewPage(views, params, total), nil
}
