// Package controller provides the HTTP handlers of the prime-cms API:
// public content reads, the authenticated admin mutations and the
// login/logout/session endpoints.
package controller

// BaseController carries behavior shared by all controllers. Session
// enforcement for the admin area lives in the middleware package; the
// handlers that need an identity re-read the session cookie themselves.
type BaseController struct{}
