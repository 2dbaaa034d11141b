package provider

import (
	"errors"
	"fmt"
)

// Failures talking to the menu model. Each client wraps one of these in an
// *Error so callers can branch with errors.Is.
var (
	// ErrUnknownProvider is returned by New for an unregistered name.
	ErrUnknownProvider = errors.New("no menu model registered under that name")

	// ErrUnavailable means the model endpoint could not be reached or failed
	// server side.
	ErrUnavailable = errors.New("menu model unreachable")

	ErrRateLimited = errors.New("menu model quota exhausted")

	// ErrInvalidRequest means the model rejected the prompt or settings.
	ErrInvalidRequest = errors.New("menu model rejected the prompt")

	ErrTimeout = errors.New("menu model did not answer in time")

	// ErrCredentialsNotFound means no API key was configured.
	ErrCredentialsNotFound = errors.New("no API key for the menu model")

	// ErrEmptyResponse means the model answered without any menu text.
	ErrEmptyResponse = errors.New("menu model returned no text")
)

// Error records which client and call failed a menu model request.
type Error struct {
	Provider  string // registered client name, e.g. "gemini"
	Op        string // "complete"
	Err       error
	Retryable bool // a later attempt may succeed
}

func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err for the named client.
func NewError(provider, op string, err error, retryable bool) *Error {
	return &Error{
		Provider:  provider,
		Op:        op,
		Err:       err,
		Retryable: retryable,
	}
}

// IsRetryable reports whether err is worth another generation attempt.
func IsRetryable(err error) bool {
	var provErr *Error
	if errors.As(err, &provErr) {
		return provErr.Retryable
	}

	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrTimeout)
}

// IsAuthError reports whether err stems from a missing API key.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrCredentialsNotFound)
}
