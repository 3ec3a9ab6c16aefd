// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Bearer-token authentication is enforced by [AuthGuard]; every error a
// handler, middleware or panic produces is written by a single responder as
// one of three JSON shapes (see package apperror). Request tracing, access
// logging and response compression are handled here before requests are
// delegated to the service layer.
package http
