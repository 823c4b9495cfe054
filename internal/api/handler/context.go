package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gearguard/maintenance-system/internal/core/domain"
)

// ctxPrincipal extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both user_id and a
// known role must be present, otherwise the token is structurally valid but
// operationally unusable.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)

	if userID == "" || role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	p := domain.Principal{ID: userID, Role: domain.Role(role)}
	if !p.Role.Valid() {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "token carries unknown role")
	}

	return p, nil
}
