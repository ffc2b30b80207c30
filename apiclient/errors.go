package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
)

// Classifiers for transport-level failures. HTTP failures use the decimal
// status code instead.
const (
	ClassifierTimeout = "TIMEOUT"
	ClassifierNetwork = "NETWORK_ERROR"
)

// APIError is the single failure type surfaced by the client. A transport
// failure and a response with success=false look identical to callers, per
// the store's error handling contract.
type APIError struct {
	Method     string
	URL        string
	StatusCode int    // zero when no response was received
	Classifier string // TIMEOUT, NETWORK_ERROR, or the HTTP status code
	Message    string // server-provided message, when present
	Err        error  // underlying transport error, when present
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		if e.Message != "" {
			return fmt.Sprintf("%s %s: %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Method, e.URL, e.Classifier, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// transportError builds an APIError for a request that never produced a
// response.
func transportError(method, url string, err error) *APIError {
	return &APIError{
		Method:     method,
		URL:        url,
		Classifier: classifyTransport(err),
		Err:        err,
	}
}

// httpError builds an APIError for a response carrying a non-success status
// or a success=false envelope.
func httpError(method, url string, status int, message string) *APIError {
	return &APIError{
		Method:     method,
		URL:        url,
		StatusCode: status,
		Classifier: strconv.Itoa(status),
		Message:    message,
	}
}

func classifyTransport(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return ClassifierTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ClassifierTimeout
	}
	return ClassifierNetwork
}
