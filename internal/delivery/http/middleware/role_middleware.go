package middleware

import (
	"net/http"

	"mediagenda/internal/domain/entity"
	"mediagenda/pkg/response"
)

// RequireRole gates an endpoint on the session role. The check mirrors the
// UI-level gating and is advisory: it is not a hardened authorization layer.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "role information not found")
				return
			}

			for _, allowed := range allowedRoles {
				if entity.Role(role) == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "you don't have permission to access this resource")
		})
	}
}

// RequireAdministrator is a convenience middleware for administrator-only
// endpoints.
func RequireAdministrator(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdministrator)(next)
}
