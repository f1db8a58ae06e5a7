package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/fintrack/internal/middleware"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/labstack/echo/v4"
)

// defaultCheckTimeout bounds each dependency ping when the health check
// config carries no timeout.
const defaultCheckTimeout = 5 * time.Second

// HealthHandler reports whether the service and its dependencies are
// reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type check struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

func (h *HealthHandler) checks() []check {
	var checks []check
	obs := h.server.Config.Observability

	enabled := func(name string) bool {
		return obs == nil || obs.CheckEnabled(name)
	}

	if enabled("database") {
		checks = append(checks, check{
			name:     "database",
			required: true,
			ping: func(ctx context.Context) error {
				if h.server.DB == nil {
					return fmt.Errorf("database not configured")
				}
				return h.server.DB.Pool.Ping(ctx)
			},
		})
	}

	// Requests are served without Redis, so it only degrades the report.
	if enabled("redis") && h.server.Redis != nil {
		checks = append(checks, check{
			name: "redis",
			ping: func(ctx context.Context) error {
				return h.server.Redis.Ping(ctx).Err()
			},
		})
	}

	return checks
}

func (h *HealthHandler) recordFailure(checkType, errorType string, attrs map[string]interface{}) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	event := map[string]interface{}{
		"check_type": checkType,
		"operation":  "health_check",
		"error_type": errorType,
	}
	for k, v := range attrs {
		event[k] = v
	}
	app.RecordCustomEvent("HealthCheckError", event)
}

// CheckHealth answers 200 when every required dependency responds and
// 503 otherwise. Each check is reported under "checks".
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	timeout := defaultCheckTimeout
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		timeout = obs.HealthChecks.Timeout
	}

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}
	isHealthy := true

	for _, chk := range h.checks() {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		checkStart := time.Now()
		err := chk.ping(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			checks[chk.name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": elapsed.String(),
				"error":         err.Error(),
			}
			if chk.required {
				isHealthy = false
			}

			logger.Error().
				Err(err).
				Str("check", chk.name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordFailure(chk.name, chk.name+"_unhealthy", map[string]interface{}{
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		checks[chk.name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": elapsed.String(),
		}

		logger.Debug().
			Str("check", chk.name).
			Dur("response_time", elapsed).
			Msg("health check passed")
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")

		h.recordFailure("overall", "overall_unhealthy", map[string]interface{}{
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		h.recordFailure("response", "json_response_error", map[string]interface{}{
			"error_message": err.Error(),
		})
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
