// Package validation binds request payloads and turns validator
// failures into field-level 400 responses.
package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/fintrack/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payloads. Validate usually runs
// validator.Struct and returns validator.ValidationErrors, or
// CustomValidationErrors for rules tags cannot express.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a single hand-written field failure.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds path parameters and the JSON body into payload,
// which must be a pointer, then validates it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		msg, fieldErrors, ok := extractValidationError(err)
		if !ok {
			return errs.ValidationError(err)
		}
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindError surfaces echo's decoder message ("Unmarshal type error:
// expected=int64, got=string, field=user_id, offset=12") as a 400.
func bindError(err error) error {
	message := "Invalid request body"

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if echoErr.Code == http.StatusUnsupportedMediaType {
			return errs.NewMalformedRequestError()
		}
	}

	return errs.NewBadRequestError(message, false, nil, nil, nil)
}

// extractValidationError reports ok=false for errors that are neither
// validator nor custom validation errors.
func extractValidationError(err error) (string, []errs.FieldError, bool) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return "Validation failed", fieldErrors, true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "", nil, false
	}

	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "len":
			msg = fmt.Sprintf("must be exactly %s characters", err.Param())

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", err.Param())

		case "alpha":
			msg = "must contain letters only"

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors, true
}
