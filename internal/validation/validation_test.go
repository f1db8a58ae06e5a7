package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/fintrack/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValidator = validator.New()

type widgetRequest struct {
	ID   int64  `param:"id" json:"-" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,max=5"`
	Code string `json:"code" validate:"omitempty,len=3"`
}

func (r *widgetRequest) Validate() error {
	return testValidator.Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "range", Message: "start must precede end"}}
}

func newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/widgets/7", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/widgets/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")
	return c, rec
}

func TestBindAndValidateBindsPathAndBody(t *testing.T) {
	c, _ := newContext(http.MethodPut, `{"name":"bolt","id":99}`)

	var req widgetRequest
	require.NoError(t, BindAndValidate(c, &req))
	assert.Equal(t, int64(7), req.ID)
	assert.Equal(t, "bolt", req.Name)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c, _ := newContext(http.MethodPut, `{"name":"sprocket","code":"ab"}`)

	err := BindAndValidate(c, &widgetRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "name", Error: "must not exceed 5 characters"},
		{Field: "code", Error: "must be exactly 3 characters"},
	}, httpErr.Errors)
}

func TestBindAndValidateTypeMismatch(t *testing.T) {
	c, _ := newContext(http.MethodPut, `{"name":12}`)

	err := BindAndValidate(c, &widgetRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Contains(t, httpErr.Message, "Unmarshal type error")
}

func TestBindAndValidateSyntaxError(t *testing.T) {
	c, _ := newContext(http.MethodPut, `{"name":`)

	err := BindAndValidate(c, &widgetRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c, _ := newContext(http.MethodPost, `{}`)

	err := BindAndValidate(c, &customRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, []errs.FieldError{{Field: "range", Error: "start must precede end"}}, httpErr.Errors)
}

type plainErrorRequest struct{}

func (r *plainErrorRequest) Validate() error {
	return errors.New("window too large")
}

func TestBindAndValidatePlainError(t *testing.T) {
	c, _ := newContext(http.MethodPost, `{}`)

	err := BindAndValidate(c, &plainErrorRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed: window too large", httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}
