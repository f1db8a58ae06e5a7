package router

import (
	"github.com/deppfellow/fintrack/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts the endpoints outside the resource API:
// health, docs and the static assets the docs page loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
