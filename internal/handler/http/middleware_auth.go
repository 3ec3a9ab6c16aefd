package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-guard/internal/utils"
)

// auth is an HTTP middleware that admits only requests [AuthGuard] accepts.
//
// On success the identity is stored in the context of the request handed to
// next, where handlers read it with [utils.UserFromContext]. On failure the
// request is answered with 401 through respondError and next is not called.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.guard.Authenticate(r)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}
