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

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthDisabled     = "API key not set, local requests are not authenticated"
	LogMsgIdempotentReplay = "Replaying idempotent response"
	LogMsgBadTrustedProxy  = "Ignoring unparsable trusted proxy"
)

// HTTP header names
const (
	HeaderAPIKey           = "X-API-Key"
	HeaderAuthorization    = "Authorization"
	HeaderForwardedFor     = "X-Forwarded-For"
	HeaderContentType      = "X-Content-Type-Options"
	HeaderFrameOptions     = "X-Frame-Options"
	HeaderCacheControl     = "Cache-Control"
	HeaderReferrerPolicy   = "Referrer-Policy"
	HeaderIdempotencyKey   = "Idempotency-Key"
	HeaderIdempotentReplay = "Idempotent-Replayed"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueNoStore              = "no-store"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// QueryAPIKey carries the key on the stream handshake
const QueryAPIKey = "api_key"

// Limits
const (
	MaxRequestBodyBytes   = 64 << 10
	MaxIdempotencyKeyLen  = 128
	RateLimitWindow       = 5 * time.Minute
	RateLimitMaxRequests  = 6000
	FailedAuthAlertCount  = 5
	MaxTrackedClients     = 1024
	HighRateLogEvery      = 100
	ReadHeaderTimeout     = 5 * time.Second
	DefaultIdempotencyTTL = 10 * time.Minute
)

// StreamPath is where the WebSocket snapshot stream is served
const StreamPath = "/ws"
