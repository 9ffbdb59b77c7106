package middleware

import (
	"net/http"

	"github.com/dayflow/hrms-backend-go/internal/domain/user"
	"github.com/dayflow/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// StaffOnly restricts a route to ADMIN and HR roles.
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Staff access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || !user.Role(roleStr).IsStaff() {
			response.Forbidden(w, "Staff access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminOnly restricts a route to the ADMIN role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Admin access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || user.Role(roleStr) != user.RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
