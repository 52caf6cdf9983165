// Package http implements the HTTP transport layer of the users API.
//
// It exposes route wiring, request handlers, and the request pipeline that
// every request passes through before reaching a handler: panic recovery,
// request tracing, bearer-token authentication and access logging. Handlers
// delegate to the service layer and return errors, which are translated
// into JSON error responses in one place.
package http
