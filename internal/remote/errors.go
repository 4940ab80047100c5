package remote

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ErrorCode is the machine-readable failure class of a remote call.
type ErrorCode string

const (
	CodeAuth      ErrorCode = "AUTH_ERROR"
	CodeRateLimit ErrorCode = "RATE_LIMIT"
	CodeNetwork   ErrorCode = "NETWORK_ERROR"
	CodeRequest   ErrorCode = "REQUEST_ERROR"
)

// APIError is a classified remote-call failure. Callers discriminate on
// Code and Retryable via errors.As instead of inspecting error strings.
type APIError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Err       error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func NewAuthError(msg string, err error) *APIError {
	return &APIError{Code: CodeAuth, Message: msg, Retryable: false, Err: err}
}

func NewRateLimitError(msg string, err error) *APIError {
	return &APIError{Code: CodeRateLimit, Message: msg, Retryable: true, Err: err}
}

func NewNetworkError(msg string, err error) *APIError {
	return &APIError{Code: CodeNetwork, Message: msg, Retryable: true, Err: err}
}

func NewRequestError(msg string, err error) *APIError {
	return &APIError{Code: CodeRequest, Message: msg, Retryable: false, Err: err}
}

// Classify maps an arbitrary error onto the taxonomy. Errors already
// classified by a provider client pass through untouched; transport-level
// failures become NETWORK_ERROR; everything else is a REQUEST_ERROR.
func Classify(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return NewNetworkError("connection failed", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return NewNetworkError("network failure", err)
	}

	return NewRequestError("request failed", err)
}
