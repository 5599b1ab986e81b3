// internal/handler/common.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/issuetrackhq/issuetrack/internal/domain"
	"github.com/issuetrackhq/issuetrack/internal/middleware"
	"github.com/issuetrackhq/issuetrack/internal/pagination"
	"github.com/issuetrackhq/issuetrack/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"error_code,omitempty"`
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithDomainError maps the core's error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an internal failure and exposes no detail.
func respondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	kind, ok := domain.KindOf(err)
	if !ok {
		slog.ErrorContext(r.Context(), "Unexpected error",
			"error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch kind {
	case domain.KindBadRequest:
		status = http.StatusBadRequest
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	}

	respondWithJSON(w, status, ErrorResponse{Error: err.Error(), Code: kind.String()})
}

// requirePrincipal pulls the authenticated actor out of the context; the
// auth middleware guarantees it on protected routes.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (service.Actor, bool) {
	actor, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Missing principal")
		return service.Actor{}, false
	}
	return actor, true
}

// parsePagination reads and validates page/limit query parameters.
func parsePagination(w http.ResponseWriter, r *http.Request) (pagination.Params, bool) {
	params, err := pagination.Parse(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	if err != nil {
		respondWithDomainError(w, r, err)
		return pagination.Params{}, false
	}
	return params, true
}
