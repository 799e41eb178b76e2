package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAuthority enforces authority-based access control. The request must
// carry at least one of the given authority tokens (e.g. "ROLE_ADMIN"),
// injected by BasicAuth.
func RequireAuthority(allowed ...string) echo.MiddlewareFunc {
	want := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		want[a] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			granted, _ := c.Get("authorities").([]string)
			for _, a := range granted {
				if _, ok := want[a]; ok {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
