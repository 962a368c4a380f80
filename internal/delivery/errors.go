package delivery

import (
	"fmt"
)

// ValidationError means the caller supplied incomplete input. It is raised
// before any network call and is never sent upstream.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// ConfigurationError means a credential bundle is missing a required field.
// Not retryable; an operator has to fix the environment.
type ConfigurationError struct {
	API   string
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s API credentials incomplete: %s is not set", e.API, e.Field)
}

// TokenAcquisitionError means the identity API was unreachable or rejected
// the account credentials. The next caller may retry.
type TokenAcquisitionError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TokenAcquisitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to acquire carrier token: %v", e.Err)
	}
	return fmt.Sprintf("failed to acquire carrier token: status %d", e.StatusCode)
}

func (e *TokenAcquisitionError) Unwrap() error {
	return e.Err
}

// UpstreamError means the carrier answered with a non-success status. Message
// holds the most specific text the carrier provided; Body keeps the raw
// payload for diagnostics.
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("carrier rejected request (status %d): %s", e.StatusCode, e.Message)
}

// TransportError means the carrier could not be reached at all. Retryable.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("carrier unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
