package middleware

import (
	"net/http"

	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/pkg/response"

	"github.com/samber/lo"
)

// RequireRole creates a middleware that checks if the user has any of the required roles.
// The user is read from context (set by AuthMiddleware).
func RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Access denied. No token provided.")
				return
			}

			if !lo.Contains(roles, user.Role) {
				response.Forbidden(w, "Access denied. Insufficient role.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission checks a "resource:action" grant against the role table.
func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Access denied. No token provided.")
				return
			}

			if !user.Role.Can(permission) {
				response.Forbidden(w, "Access denied. Missing permission "+permission+".")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin)(next)
}

// Permit wraps a single handler with a permission check.
func Permit(permission string, h http.HandlerFunc) http.Handler {
	return RequirePermission(permission)(h)
}
