package client

import (
	"errors"
	"net/http"

	"github.com/dpbr/dpbr-client/internal/common"
)

var (
	ErrUnavailable   = common.ErrUnavailable
	ErrUnauthorized  = common.ErrUnauthorized
	ErrNotFound      = common.ErrNotFound
	ErrEmptyResponse = errors.New("empty response")
)

// APIError is a failed gateway envelope. Status is 0 when no HTTP response
// was received.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap classifies the failure by Status.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case 0, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	}
	return nil
}
