package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Per-client budgets
const (
	rateWindow               = 5 * time.Minute
	requestRateLimit         = 1000
	failedAuthAlertThreshold = 5
	maxTrackedClients        = 4096
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey          = "X-API-Key"
	HeaderAuthorization   = "Authorization"
	HeaderWWWAuthenticate = "WWW-Authenticate"
	HeaderForwardedFor    = "X-Forwarded-For"
	HeaderRequestID       = "X-Request-ID"
	HeaderRetryAfter      = "Retry-After"
	HeaderContentType     = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderReferrerPolicy  = "Referrer-Policy"
	HeaderContentSecurity = "Content-Security-Policy"
	HeaderCacheControl    = "Cache-Control"
)

// Security header values
const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueCSPNone    = "default-src 'none'; frame-ancestors 'none'"
	HeaderValueNoStore    = "no-store"
)

const (
	bearerScheme = "Bearer"
	apiPrefix    = "/api/"
)

// publicPaths skip authentication; matched exactly
var publicPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
	"/version": true,
	"/metrics": true,
}

// RedactedValue replaces secret header values in logs
const RedactedValue = "[REDACTED]"

// maxBodyBytes bounds any request body; imports are the largest
const maxBodyBytes = 8 << 20

const maxRequestIDLen = 128

// HTTP server timeouts
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 2 * time.Minute
)
