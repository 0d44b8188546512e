package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hrms/internal/core/domain"
	"github.com/staffhub/hrms/internal/core/ports"
)

// identityKey is the context key under which Auth stores the verified
// identity for downstream middleware and handlers.
const identityKey = "identity"

// Auth extracts the bearer token, verifies it, and injects the decoded
// identity into the request context. It never touches storage: the token
// is self-contained. The two 401 messages are deliberately distinct so
// logs can tell a missing header from a bad token, but clients see the
// same status either way.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// Identity returns the identity stored by Auth, if any.
func Identity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}
