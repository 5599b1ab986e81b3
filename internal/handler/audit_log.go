// internal/handler/audit_log.go
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/service"
)

type AuditLogHandler struct {
	auditService *service.AuditService
}

func NewAuditLogHandler(auditService *service.AuditService) *AuditLogHandler {
	return &AuditLogHandler{auditService: auditService}
}

func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requirePrincipal(w, r); !ok {
		return
	}

	params, ok := parsePagination(w, r)
	if !ok {
		return
	}

	filter := service.AuditFilter{
		EntityType: r.URL.Query().Get("entityType"),
	}
	if raw := r.URL.Query().Get("entityId"); raw != "" {
		entityID, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid entity ID")
			return
		}
		filter.EntityID = &entityID
	}

	page, err := h.auditService.GetAuditLogs(r.Context(), filter, params)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}
