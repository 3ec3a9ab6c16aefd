package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-guard/internal/apperror"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/utils"
)

// handlerFunc is an HTTP handler that reports failure by returning an error
// instead of writing it.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to [http.HandlerFunc], sending any returned error to
// respondError. fn must not have written a response when it returns an error.
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.respondError(w, r, err)
		}
	}
}

// respondError is the terminal error handler of the API. It writes exactly
// one JSON response for err, as computed by [apperror.Normalize].
//
// Client errors are logged at warn level and server errors at error level,
// both with the full error chain, which never reaches the client.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	body := apperror.Normalize(err)

	event := log.Warn()
	if body.StatusCode >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", body.StatusCode).Msg("request failed")

	if _, writeErr := utils.WriteJSON(w, body, body.StatusCode); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

// writeJSON writes a successful response. Errors at this point mean the
// client went away; they are logged and dropped.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, errRouteNotFound)
}
