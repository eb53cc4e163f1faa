package middleware

import (
	"net/http"

	"mdent-api/internal/domain/entity"
	"mdent-api/pkg/apperrors"
	"mdent-api/pkg/response"

	"github.com/sirupsen/logrus"
)

// RequireRole checks that the authenticated principal's role is in the
// allowed set. A known but unpermitted caller gets forbidden, distinct from
// the unauthorized of a missing or bad token.
func RequireRole(log *logrus.Logger, allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.FromError(log, w, apperrors.Unauthorized(nil))
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.FromError(log, w, apperrors.Forbidden())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaff restricts to roles allowed to delete patient records.
func RequireStaff(log *logrus.Logger) func(http.Handler) http.Handler {
	return RequireRole(log, entity.RoleAdmin, entity.RoleFrontdesk)
}
