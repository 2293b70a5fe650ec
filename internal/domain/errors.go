package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Storage errors
	ErrMsgDeserialization   = "state record could not be decoded"
	ErrMsgUnsupportedSchema = "unsupported state schema version"
	ErrMsgIO                = "storage i/o failure"
	ErrMsgNotFound          = "not found"

	// Collaborator errors
	ErrMsgAuthorization   = "health data authorization denied"
	ErrMsgDataUnavailable = "health data unavailable"
	ErrMsgRender          = "report snapshot could not be rendered"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
// When an underlying cause exists keep it matchable too: fmt.Errorf("%w: ...: %w", domain.ErrIO, err).
var (
	// ErrDeserialization means a persisted or imported record is corrupt or schema-incompatible.
	ErrDeserialization = errors.New(ErrMsgDeserialization)

	// ErrUnsupportedSchema is returned for records written by a newer schema.
	// It is always wrapped together with ErrDeserialization.
	ErrUnsupportedSchema = errors.New(ErrMsgUnsupportedSchema)

	// ErrIO wraps filesystem failures such as permission or disk-full errors.
	ErrIO = errors.New(ErrMsgIO)

	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrAuthorization   = errors.New(ErrMsgAuthorization)
	ErrDataUnavailable = errors.New(ErrMsgDataUnavailable)
	ErrRender          = errors.New(ErrMsgRender)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
