package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
)

// ctxRole extracts the role injected by the ResolveRole middleware. Role
// resolution is total, so a missing value only means the middleware did not
// run on this route; the safe reading is viewer.
func ctxRole(c echo.Context) domain.Role {
	role, ok := c.Get("role").(domain.Role)
	if !ok {
		return domain.RoleViewer
	}
	return role
}
