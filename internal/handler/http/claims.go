package http

import (
	"net/http"

	"github.com/dayflow/hrms-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// callerClaims is the identity extracted from the verified access token.
type callerClaims struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

func claimsFromRequest(r *http.Request) (callerClaims, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return callerClaims{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return callerClaims{}, false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return callerClaims{}, false
	}

	c := callerClaims{UserID: userID, Role: user.Role(roleStr)}
	if employeeID, ok := claims["employee_id"].(string); ok {
		c.EmployeeID = employeeID
	}
	return c, true
}

// resolveEmployeeID returns the employee the caller may act on. Staff can pass
// any employee ID; everyone else is pinned to their own record.
func resolveEmployeeID(c callerClaims, requested string) (string, bool) {
	if requested == "" || requested == "me" {
		return c.EmployeeID, c.EmployeeID != ""
	}
	if c.Role.IsStaff() || requested == c.EmployeeID {
		return requested, true
	}
	return "", false
}
