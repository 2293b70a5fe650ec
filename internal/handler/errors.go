package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"
	ErrMsgInvalidFormat         = "Invalid format. Valid options: json, yaml"
	ErrMsgInvalidDate           = "Invalid date. Expected YYYY-MM-DD"
)

// Success messages for API responses
const (
	MsgStateImported = "State imported successfully"
)
