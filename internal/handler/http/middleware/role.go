package middleware

import (
	"errors"
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/response"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
)

// RequireHR admits ADMIN and HR roles. The role is resolved with a fresh
// database lookup rather than trusted from the token, so a role change takes
// effect on the next request.
func RequireHR(resolver employee.RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			employeeID, err := jwt.EmployeeIDFromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid or missing token")
				return
			}

			roleName, err := resolver.ResolveRole(r.Context(), employeeID)
			if err != nil {
				if errors.Is(err, employee.ErrEmployeeNotFound) {
					response.Unauthorized(w, "Account no longer exists")
					return
				}
				response.HandleError(w, err)
				return
			}

			if !employee.IsPrivileged(roleName) {
				response.Forbidden(w, "HR or admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
