package handlers

import (
	"errors"
	"net/http"

	"github.com/mtpdept/idcard-services/internal/idcardsvc/service"

	"github.com/go-chi/jwtauth"
)

// RequireAdmin sits behind jwtauth.Verifier and splits its outcomes per
// the API contract: a missing token is 401, a bad or expired one is 403.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				respondError(w, http.StatusUnauthorized, "no token provided")
				return
			}
			respondError(w, http.StatusForbidden, "invalid or expired token")
			return
		}
		if token == nil {
			respondError(w, http.StatusUnauthorized, "no token provided")
			return
		}

		role, _ := claims["role"].(string)
		if role != service.RoleAdmin && role != service.RoleSuperadmin {
			respondError(w, http.StatusForbidden, "admin role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
