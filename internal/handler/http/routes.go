package http

import (
	"github.com/go-chi/chi/v5"
)

// Init builds the API router.
//
// Every request passes, in order, trace-id tagging, access logging, gzip
// handling and panic recovery. Unknown paths and unregistered methods get
// the JSON 404 body.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withGZip, h.withRecover)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.checkHTTPMethod)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/user/register", h.handle(h.register))
		r.Post("/api/user/login", h.handle(h.login))
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/user/me", h.handle(h.me))
	})

	return router
}
