package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nishan-khiva/HRMS-project/internal/domain/user"
	"github.com/nishan-khiva/HRMS-project/internal/handler/http/response"
)

// RequireRole allows the request through only when the token's role claim is
// one of the given roles.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[string(role)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			role, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			if _, ok := allowed[role]; !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly restricts a route to admin users.
func AdminOnly(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)(next)
}

// HROrAdmin restricts a route to hr and admin users.
func HROrAdmin(next http.Handler) http.Handler {
	return RequireRole(user.RoleHR, user.RoleAdmin)(next)
}
