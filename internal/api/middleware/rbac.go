package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hrms/internal/core/domain"
)

// RBAC returns middleware that only lets identities with one of the
// allowed roles through. Allowed roles are case-folded once at route
// registration; the identity's role is already canonical, so membership
// is a plain map lookup. A request with no identity at all gets 401, not
// 403: that chain is missing its Auth middleware.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[domain.Role(strings.ToLower(r))] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := Identity(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[identity.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}
