// Package handler is the HTTP layer between the router and the services.
//
// Endpoints are typed functions run through Handle, which binds and
// validates the payload, calls the service and writes the result. Errors
// are returned untouched for the global error handler to render.
package handler
