// Package router builds the echo instance: the middleware chain, the
// error handler and every route.
package router

import (
	"github.com/deppfellow/fintrack/internal/handler"
	"github.com/deppfellow/fintrack/internal/middleware"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the context logger needs the request id and the
	// trace, and everything after it logs through that logger.
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerResourceRoutes(router, h)

	return router
}
