package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-auth-guard/internal/apperror"
)

// maxRequestBodySize bounds JSON bodies of the account endpoints.
const maxRequestBodySize = 1 << 20

var errTrailingData = errors.New("unexpected data after JSON value")

// decodeJSON decodes the JSON body of r into dst. The body must hold exactly
// one JSON value. Any decoding failure, including an oversized body, is a
// validation error with a single message.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err := decoder.Decode(dst); err != nil {
		return apperror.Validation(messageInvalidJSON).WithCause(err)
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return apperror.Validation(messageInvalidJSON).WithCause(err)
	}

	return nil
}
