package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/metrics"
)

// clientWindow holds one IP's counters for the current fixed window
type clientWindow struct {
	start      time.Time
	requests   int
	failedAuth int
}

// ClientTracker counts requests and failed admin logins per client IP
// over fixed windows of rateWindow.
type ClientTracker struct {
	mu        sync.Mutex
	clients   map[string]*clientWindow
	lastSweep time.Time
	now       func() time.Time
}

func NewClientTracker() *ClientTracker {
	return &ClientTracker{
		clients:   make(map[string]*clientWindow),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// window returns ip's live window, opening a new one when the old has expired.
// Caller must hold mu.
func (c *ClientTracker) window(ip string) *clientWindow {
	now := c.now()
	if now.Sub(c.lastSweep) > rateWindow {
		for k, w := range c.clients {
			if now.Sub(w.start) > rateWindow {
				delete(c.clients, k)
			}
		}
		c.lastSweep = now
	}

	w, ok := c.clients[ip]
	if !ok || now.Sub(w.start) > rateWindow {
		w = &clientWindow{start: now}
		c.clients[ip] = w
	}
	return w
}

// Allow counts a request from ip and reports whether it is under the limit
func (c *ClientTracker) Allow(ip string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := c.window(ip)
	w.requests++
	if w.requests <= maxRequestsPerWindow {
		return true
	}
	if w.requests%highRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.requests)
	}
	return false
}

// FailedAuth records a rejected admin login from ip and returns the count in this window
func (c *ClientTracker) FailedAuth(ip string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := c.window(ip)
	w.failedAuth++
	if w.failedAuth == failedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failedAuth)
	}
	return w.failedAuth
}

// LockedOut reports whether ip has used up its admin login attempts for this window
func (c *ClientTracker) LockedOut(ip string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window(ip).failedAuth >= failedAuthAlertCount
}

// AdminAuthMiddleware requires the X-Admin-Auth header to match token.
// An empty token rejects every request. Clients that fail too often are
// refused until their window ends, even with the right token.
func AdminAuthMiddleware(token string, trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if tracker.LockedOut(ip) {
				metrics.HTTPRequestsBlocked.WithLabelValues(metrics.BlockedLockout).Inc()
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			provided := r.Header.Get(HeaderAdminAuth)
			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				failures := tracker.FailedAuth(ip)
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_token", provided != "",
					"ip", ip,
					"failures", failures)
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects clients over the per-window request limit
func RateLimitMiddleware(trustedProxies []string, tracker *ClientTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tracker.Allow(extractIP(r, trustedProxies)) {
				metrics.HTTPRequestsBlocked.WithLabelValues(metrics.BlockedRate).Inc()
				w.Header().Set(HeaderRetryAfter, retryAfterSeconds)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is only honoured
// when the direct peer is a trusted proxy; its rightmost entry wins.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware sets browser hardening headers on every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	headers := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for k, v := range headers {
				w.Header().Set(k, v)
			}
			next.ServeHTTP(w, r)
		})
	}
}
