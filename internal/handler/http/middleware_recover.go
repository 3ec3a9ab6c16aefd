package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-auth-guard/internal/apperror"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
)

// withRecover turns a panic in a downstream handler into the generic 500
// response. [http.ErrAbortHandler] is re-raised so net/http can abort the
// connection as intended.
//
// A panic after the response was committed cannot be answered with a second
// body; the connection is aborted instead.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Bool("response_committed", rw.wroteHeader).
				Msg("recovered from panic")

			if rw.wroteHeader {
				panic(http.ErrAbortHandler)
			}

			h.respondError(w, r, apperror.Internal(fmt.Errorf("panic: %v", rec)))
		}()

		next.ServeHTTP(rw, r)
	})
}
