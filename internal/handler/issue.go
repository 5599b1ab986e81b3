// internal/handler/issue.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/middleware"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/service"
)

type IssueHandler struct {
	issueService *service.IssueService
}

func NewIssueHandler(issueService *service.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

// requireOrgContext reads the organization scope installed by the
// organization-context middleware.
func requireOrgContext(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	orgID, ok := middleware.OrgIDFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Missing "+middleware.OrgHeader+" header")
		return uuid.Nil, false
	}
	return orgID, true
}

func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	orgID, ok := requireOrgContext(w, r)
	if !ok {
		return
	}

	var input service.CreateIssueInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.OrganizationID = orgID

	issue, err := h.issueService.CreateIssue(r.Context(), input, actor)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, issue)
}

func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	orgID, ok := requireOrgContext(w, r)
	if !ok {
		return
	}
	params, ok := parsePagination(w, r)
	if !ok {
		return
	}

	page, err := h.issueService.ListIssues(r.Context(), actor, orgID, params)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

func (h *IssueHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	issueID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	var input struct {
		Status model.IssueStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	issue, err := h.issueService.UpdateIssueStatus(r.Context(), issueID, input.Status, actor)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, issue)
}

func (h *IssueHandler) Assign(w http.ResponseWriter, r *http.Request) {
	actor, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	issueID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	var input struct {
		AssigneeID uuid.UUID `json:"assignee_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	issue, err := h.issueService.AssignIssue(r.Context(), issueID, input.AssigneeID, actor)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, issue)
}

func (h *IssueHandler) RequestAssignment(w http.ResponseWriter, r *http.Request) {
	actor, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	issueID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	if err := h.issueService.RequestAssignment(r.Context(), issueID, actor); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Assignment request recorded"})
}

func (h *IssueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	issueID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	if err := h.issueService.DeleteIssue(r.Context(), issueID, actor); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Issue deleted"})
}
