package middleware

import (
	"context"
	"net/http"
	"strings"

	"mdent-api/pkg/apperrors"
	"mdent-api/pkg/jwt"
	"mdent-api/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RoleKey      contextKey = "role"
	BranchIDKey  contextKey = "branch_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		log:        log,
	}
}

// Authenticate extracts and validates the bearer token, then attaches the
// resolved principal to the request context. All failure modes are a uniform
// unauthorized.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.FromError(m.log, w, apperrors.Unauthorized(nil))
			return
		}

		// Expect exactly "Bearer <token>".
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.FromError(m.log, w, apperrors.Unauthorized(nil))
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.FromError(m.log, w, apperrors.Unauthorized(err))
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, BranchIDKey, claims.BranchID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts the principal's user ID from context.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts the principal's email from context.
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetRoleFromContext extracts the principal's role from context.
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// GetBranchIDFromContext extracts the principal's branch from context.
func GetBranchIDFromContext(ctx context.Context) (string, bool) {
	branchID, ok := ctx.Value(BranchIDKey).(string)
	return branchID, ok
}
