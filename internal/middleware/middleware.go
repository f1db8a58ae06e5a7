// Package middleware holds the global echo middleware (request IDs,
// request-scoped logging, tracing, rate limiting, CORS, recovery), the
// JSON body guard and the global error handler.
package middleware
