package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind tags an [Error] with the response shape it produces.
type Kind int

const (
	// KindUnclassified is the zero Kind. It yields the generic 500 response.
	KindUnclassified Kind = iota
	// KindValidation carries an ordered list of messages and yields 400.
	KindValidation
	// KindDomain carries an explicit status and a single message.
	KindDomain
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDomain:
		return "domain"
	default:
		return "unclassified"
	}
}

// Messages exposed to clients for the fixed error shapes.
const (
	MessageUnauthorized        = "Unauthorized"
	MessageInternalServerError = "Internal server error"
)

// Error is an error classified for the HTTP boundary.
// The optional cause is kept for server-side logging and [errors.Is] but is
// never written to the client.
type Error struct {
	kind     Kind
	status   int
	message  string
	messages []string
	cause    error
}

// Validation returns a validation error carrying messages in order.
func Validation(messages ...string) *Error {
	return &Error{
		kind:     KindValidation,
		status:   http.StatusBadRequest,
		messages: append([]string{}, messages...),
	}
}

// New returns a domain error with the given status and message.
func New(status int, message string) *Error {
	return &Error{
		kind:    KindDomain,
		status:  status,
		message: message,
	}
}

// Wrap returns a domain error with the given status and message that keeps
// cause for logging.
func Wrap(status int, message string, cause error) *Error {
	e := New(status, message)
	e.cause = cause
	return e
}

// Internal marks cause as unclassified. The client receives the generic 500
// body; cause is kept for logs.
func Internal(cause error) *Error {
	return &Error{
		kind:   KindUnclassified,
		status: http.StatusInternalServerError,
		cause:  cause,
	}
}

// Unauthorized returns the domain error the auth guard rejects requests with.
// Its status and message never vary with the reason of the rejection.
func Unauthorized() *Error {
	return New(http.StatusUnauthorized, MessageUnauthorized)
}

// WithCause returns a copy of e that keeps cause for logging.
func (e *Error) WithCause(cause error) *Error {
	c := *e
	c.cause = cause
	return &c
}

// Kind returns the classification tag.
func (e *Error) Kind() Kind { return e.kind }

// Status returns the HTTP status the error maps to.
func (e *Error) Status() int { return e.status }

// Message returns the single message of a domain error.
func (e *Error) Message() string { return e.message }

// Messages returns the ordered messages of a validation error.
func (e *Error) Messages() []string { return e.messages }

func (e *Error) Error() string {
	var text string
	switch e.kind {
	case KindValidation:
		text = fmt.Sprintf("validation failed: %s", strings.Join(e.messages, "; "))
	case KindDomain:
		text = fmt.Sprintf("%d %s", e.status, e.message)
	default:
		text = MessageInternalServerError
	}

	if e.cause != nil {
		return text + ": " + e.cause.Error()
	}
	return text
}

// Unwrap returns the cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same kind, status and
// message, so sentinel domain errors can be matched with [errors.Is].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.status == t.status && e.message == t.message
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
