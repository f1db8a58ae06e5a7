package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/fintrack/internal/config"
	"github.com/deppfellow/fintrack/internal/errs"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
			},
		},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(RequestID())
	e.Use(NewContextEnhancer(s).EnhanceContext())
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireJSON(t *testing.T) {
	e := newTestEcho(newTestServer())
	e.POST("/things", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RequireJSON())

	tests := []struct {
		name        string
		contentType string
		wantStatus  int
	}{
		{name: "json", contentType: "application/json", wantStatus: http.StatusOK},
		{name: "json with charset", contentType: "application/json; charset=utf-8", wantStatus: http.StatusOK},
		{name: "vendor json", contentType: "application/vnd.api+json", wantStatus: http.StatusOK},
		{name: "form", contentType: "application/x-www-form-urlencoded", wantStatus: http.StatusBadRequest},
		{name: "plain text", contentType: "text/plain", wantStatus: http.StatusBadRequest},
		{name: "missing", contentType: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader(`{}`))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest {
				body := decodeError(t, rec)
				assert.Equal(t, "Request must be JSON", body.Message)
				assert.Equal(t, errs.MalformedRequestCode, body.Code)
			}
		})
	}
}

func TestRequestIDIsGeneratedOrReused(t *testing.T) {
	e := newTestEcho(newTestServer())
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestContextEnhancerStoresLogger(t *testing.T) {
	e := newTestEcho(newTestServer())
	e.GET("/ping", func(c echo.Context) error {
		assert.NotNil(t, c.Get(LoggerKey))
		assert.NotNil(t, zerolog.Ctx(c.Request().Context()))
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "application error",
			err:         errs.NewNotFoundError("Account not found", true, nil),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Account not found",
		},
		{
			name: "unique violation",
			err: &pgconn.PgError{
				Code:           "23505",
				TableName:      "users",
				ConstraintName: "users_username_key",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "USER_ALREADY_EXISTS",
			wantMessage: "A User with this Username already exists",
		},
		{
			name:        "no rows",
			err:         pgx.ErrNoRows,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Resource not found",
		},
		{
			name:        "echo error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "METHOD_NOT_ALLOWED",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(newTestServer())
			e.GET("/fail", func(c echo.Context) error {
				return tt.err
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestGlobalErrorHandlerRouteNotFound(t *testing.T) {
	e := newTestEcho(newTestServer())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestRateLimitDisabledByDefault(t *testing.T) {
	s := newTestServer()
	e := newTestEcho(s)
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestRateLimitDeniesOverBurst(t *testing.T) {
	s := newTestServer()
	s.Config.Server.RateLimit = config.RateLimitConfig{Rate: 1, Burst: 2, ExpiresIn: time.Minute}

	e := newTestEcho(s)
	e.Use(NewRateLimitMiddleware(s).Limit())
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	var codes []int
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRequireIntParam(t *testing.T) {
	e := newTestEcho(newTestServer())
	e.DELETE("/things/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("id"))
	}, RequireIntParam("id"))

	tests := []struct {
		id         string
		wantStatus int
	}{
		{id: "42", wantStatus: http.StatusOK},
		{id: "abc", wantStatus: http.StatusNotFound},
		{id: "-3", wantStatus: http.StatusNotFound},
		{id: "+3", wantStatus: http.StatusNotFound},
		{id: "0", wantStatus: http.StatusNotFound},
		{id: "1.5", wantStatus: http.StatusNotFound},
		{id: "99999999999999999999", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/things/"+tt.id, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.Equal(t, "Route not found", decodeError(t, rec).Message)
			}
		})
	}
}
