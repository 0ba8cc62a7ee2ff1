package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps transport-level failures (connection refused,
	// timeouts). The server was never reached or never answered.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned for any 401 response. By the time the
	// caller sees it the session has already been torn down.
	ErrUnauthorized = errors.New("unauthorized")
)

// RequestError is any non-2xx response other than 401. Recoverable by the
// caller: the message is meant for display.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %s (HTTP %d)", e.Message, e.Status)
}
