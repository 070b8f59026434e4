package services

import "errors"

// ErrNotConfigured means the Gemini credential is missing; the AI
// capability is unavailable but the service runs without it.
var ErrNotConfigured = errors.New("gemini client not configured")

// ValidationError reports missing or invalid request fields. It is the
// only service error surfaced to HTTP callers.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }
