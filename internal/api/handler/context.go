package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hrms/internal/api/middleware"
	"github.com/staffhub/hrms/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: its presence proves the middleware
// ran on this route.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.Identity(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return identity, nil
}

// requireSelf rejects requests for another account's personal data. Only
// the id and role claims are contractually present on every token, so the
// check is on id alone.
func requireSelf(c echo.Context, userID string) (domain.Identity, error) {
	identity, err := ctxIdentity(c)
	if err != nil {
		return domain.Identity{}, err
	}
	if identity.ID != userID {
		return domain.Identity{}, echo.NewHTTPError(http.StatusForbidden, "not authorized to access this data")
	}
	return identity, nil
}
