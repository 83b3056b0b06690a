package manifest

import (
	"net/http"

	"github.com/google/uuid"
)

// Exchange is an opaque reference to one completed HTTP exchange. The
// checker only ever reads the response headers and status code; the
// request ID is carried into emitted events so that downstream tooling
// can correlate a finding with the exact responses compared.
type Exchange struct {
	// RequestID uniquely identifies the exchange.
	RequestID string

	// StatusCode is the HTTP response status code.
	StatusCode int

	// Header holds the response headers. May be nil when the
	// exchange produced no response (e.g. a timeout).
	Header http.Header
}

// NewExchange builds an exchange reference with a fresh request ID.
func NewExchange(statusCode int, header http.Header) *Exchange {
	return &Exchange{
		RequestID:  uuid.NewString(),
		StatusCode: statusCode,
		Header:     header,
	}
}

// ContentType returns the Content-Type response header, and whether it
// was present.
func (e *Exchange) ContentType() (string, bool) {
	if e == nil || e.Header == nil {
		return "", false
	}
	v := e.Header.Get("Content-Type")
	if v == "" {
		return "", false
	}
	return v, true
}
