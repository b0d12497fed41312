package server

import (
	"strconv"
	"time"
)

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed admin authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Admin authentication failed"
)

// HTTP header names
const (
	HeaderAdminAuth       = "X-Admin-Auth"
	HeaderAuthorization   = "Authorization"
	HeaderStripeSignature = "Stripe-Signature"
	HeaderLineSignature   = "X-Line-Signature"
	HeaderForwardedFor    = "X-Forwarded-For"
	HeaderRequestID       = "X-Request-ID"
	HeaderRetryAfter      = "Retry-After"
	HeaderContentType     = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderXSSProtection   = "X-XSS-Protection"
	HeaderReferrerPolicy  = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Limits
const (
	maxRequestBytes      = 1 << 20
	readHeaderTimeout    = 5 * time.Second
	rateWindow           = 5 * time.Minute
	maxRequestsPerWindow = 1000
	failedAuthAlertCount = 5
	highRateLogEvery     = 100
)

// retryAfterSeconds is sent with rate limited responses
var retryAfterSeconds = strconv.Itoa(int(rateWindow.Seconds()))

// Paths skipped by request logging
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// sensitiveHeaders are redacted before request headers are logged
var sensitiveHeaders = []string{
	HeaderAdminAuth,
	HeaderAuthorization,
	HeaderStripeSignature,
	HeaderLineSignature,
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
