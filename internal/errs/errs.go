// Package errs defines the error types returned to API clients.
//
// Handlers and services return *HTTPError values; the global error
// handler serializes them as-is, so every failure a client sees has the
// same JSON shape (code, message, status, field errors, optional action).
package errs
