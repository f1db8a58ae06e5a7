package middleware

import (
	"mime"
	"net/http"
	"strings"

	"github.com/deppfellow/fintrack/internal/errs"
	"github.com/labstack/echo/v4"
)

// RequireJSON rejects requests whose body is not declared as JSON with
// 400 "Request must be JSON". It guards every POST and PUT route.
func RequireJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsJSON(c.Request()) {
				return errs.NewMalformedRequestError()
			}
			return next(c)
		}
	}
}

// IsJSON reports whether r declares application/json or an
// application/*+json media type. Parameters such as charset are
// ignored.
func IsJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get(echo.HeaderContentType))
	if err != nil {
		return false
	}

	if mediaType == echo.MIMEApplicationJSON {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}
