package apperror

import (
	"net/http"

	"github.com/MKhiriev/go-auth-guard/models"
)

// Normalize maps any error to exactly one of the three response shapes:
//   - validation: {400, [messages...]}
//   - domain:     {status, message}
//   - otherwise:  {500, "Internal server error"}
//
// A domain status outside 400..599 is not a valid error status and is
// treated as unclassified.
func Normalize(err error) models.ErrorResponse {
	e, ok := As(err)
	if !ok {
		return internalServerError()
	}

	switch e.kind {
	case KindValidation:
		messages := e.messages
		if messages == nil {
			messages = []string{}
		}
		return models.ErrorResponse{StatusCode: http.StatusBadRequest, Message: messages}
	case KindDomain:
		if e.status < 400 || e.status > 599 {
			return internalServerError()
		}
		return models.ErrorResponse{StatusCode: e.status, Message: e.message}
	default:
		return internalServerError()
	}
}

func internalServerError() models.ErrorResponse {
	return models.ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    MessageInternalServerError,
	}
}
