// internal/handler/contribution.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/service"
)

type ContributionHandler struct {
	contributionService *service.ContributionService
}

func NewContributionHandler(contributionService *service.ContributionService) *ContributionHandler {
	return &ContributionHandler{contributionService: contributionService}
}

func (h *ContributionHandler) Request(w http.ResponseWriter, r *http.Request) {
	actor, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	orgID, ok := requireOrgContext(w, r)
	if !ok {
		return
	}

	issueID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	request, err := h.contributionService.RequestContribution(r.Context(), issueID, actor.UserID, orgID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, request)
}

func (h *ContributionHandler) SubmitProof(w http.ResponseWriter, r *http.Request) {
	actor, ok := requirePrincipal(w, r)
	if !ok {
		return
	}
	orgID, ok := requireOrgContext(w, r)
	if !ok {
		return
	}

	issueID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	var input struct {
		Content string   `json:"content"`
		Links   []string `json:"links"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	proof, err := h.contributionService.SubmitProof(r.Context(), issueID, actor.UserID, orgID, input.Content, input.Links)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, proof)
}

func (h *ContributionHandler) ReviewProof(w http.ResponseWriter, r *http.Request) {
	actor, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	proofID, err := uuid.Parse(chi.URLParam(r, "proofId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid proof ID")
		return
	}

	var input struct {
		Decision model.ProofStatus `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.contributionService.ReviewProof(r.Context(), proofID, actor.UserID, input.Decision)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, output)
}

func (h *ContributionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	actor, ok := requirePrincipal(w, r)
	if !ok {
		return
	}

	stats, err := h.contributionService.GetUserContributionStats(r.Context(), actor.UserID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
