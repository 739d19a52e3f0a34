package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is an HTTP error returned by the Prashikshan API.
type Error struct {
	// Status is the HTTP status code.
	Status int

	// Detail is the human-readable message extracted from the response body
	// (the API's "detail" or "message" field), or a truncated body excerpt.
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
}

// newAPIError builds an Error from a response status and body.
func newAPIError(status int, body []byte) *Error {
	return &Error{Status: status, Detail: extractDetail(body)}
}

// extractDetail pulls a human-readable message out of an error response body.
// The API reports validation failures as {"detail": "..."} or a list of
// {"detail": [{"msg": "..."}]} records; other services use {"message": "..."}.
func extractDetail(body []byte) string {
	var envelope struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if len(envelope.Detail) > 0 {
			var text string
			if json.Unmarshal(envelope.Detail, &text) == nil && text != "" {
				return text
			}
			var items []struct {
				Msg string `json:"msg"`
			}
			if json.Unmarshal(envelope.Detail, &items) == nil && len(items) > 0 && items[0].Msg != "" {
				return items[0].Msg
			}
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}

	excerpt := strings.TrimSpace(string(body))
	if len(excerpt) > 200 {
		excerpt = excerpt[:200] + "..."
	}
	return excerpt
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// API error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// TransientError represents a temporary failure that may succeed on retry,
// such as a network error or a 5xx response.
type TransientError struct {
	err error
}

func (e *TransientError) Error() string {
	return e.err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.err
}

// NewTransientError wraps an error as transient (retryable).
func NewTransientError(err error) error {
	return &TransientError{err: err}
}

// FatalError represents a permanent failure that should not be retried.
type FatalError struct {
	err error
}

func (e *FatalError) Error() string {
	return e.err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.err
}

// NewFatalError wraps an error as fatal (non-retryable).
func NewFatalError(err error) error {
	return &FatalError{err: err}
}

// IsTransient returns true if the error is transient and should be retried.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// IsFatal returns true if the error is fatal and should not be retried.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}

// classifyHTTPError wraps an API error as transient or fatal by status.
func classifyHTTPError(apiErr *Error) error {
	switch {
	case apiErr.Status == http.StatusTooManyRequests:
		return NewTransientError(apiErr)
	case apiErr.Status >= 500:
		return NewTransientError(apiErr)
	default:
		// 4xx responses are the caller's problem, not the network's.
		return NewFatalError(apiErr)
	}
}
