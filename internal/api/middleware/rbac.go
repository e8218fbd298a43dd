package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
	"github.com/getnaildla/salon-frontdesk/internal/core/service"
)

// ResolveRole derives the role from the identity's email on every request
// and injects it into context. Resolution is total, so this middleware
// never fails; anonymous requests resolve to viewer.
func ResolveRole(resolver *service.RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get("email").(string)
			c.Set("role", resolver.Resolve(email))
			return next(c)
		}
	}
}

// RequireRole enforces role-based access control on mutation routes.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
