// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/issuetrackhq/issuetrack/internal/auth"
	"github.com/issuetrackhq/issuetrack/internal/model"
	"github.com/issuetrackhq/issuetrack/internal/service"
)

type contextKey string

const (
	principalKey contextKey = "issuetrack_principal"
	orgIDKey     contextKey = "issuetrack_org_id"
)

// OrgHeader carries the organization context for org-scoped endpoints.
const OrgHeader = "X-Organization-ID"

// AuthMiddleware validates the bearer token and installs the authenticated
// principal into the request context.
func AuthMiddleware(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
				return
			}

			principal := service.Actor{
				UserID: userID,
				Role:   model.UserRole(claims.Role),
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OrganizationContext parses the X-Organization-ID header into the request
// context. It does not require the header; org-scoped handlers do.
func OrganizationContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get(OrgHeader); raw != "" {
			orgID, err := uuid.Parse(raw)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid organization header")
				return
			}
			ctx := context.WithValue(r.Context(), orgIDKey, orgID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// PrincipalFrom returns the authenticated actor installed by AuthMiddleware.
func PrincipalFrom(ctx context.Context) (service.Actor, bool) {
	actor, ok := ctx.Value(principalKey).(service.Actor)
	return actor, ok
}

// OrgIDFrom returns the organization context, when present.
func OrgIDFrom(ctx context.Context) (uuid.UUID, bool) {
	orgID, ok := ctx.Value(orgIDKey).(uuid.UUID)
	return orgID, ok
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
