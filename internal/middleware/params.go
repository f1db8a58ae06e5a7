package middleware

import (
	"strconv"

	"github.com/deppfellow/fintrack/internal/errs"
	"github.com/labstack/echo/v4"
)

// RequireIntParam makes a route match only when the named path parameter
// is a positive decimal integer. Anything else answers the same 404 as
// an unknown route, before the body is read.
func RequireIntParam(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := strconv.ParseUint(c.Param(name), 10, 63)
			if err != nil || id == 0 {
				return errs.NewNotFoundError("Route not found", false, nil)
			}
			return next(c)
		}
	}
}
