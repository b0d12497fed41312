package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func adminRequest(remote, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/statistics", nil)
	req.RemoteAddr = remote
	if token != "" {
		req.Header.Set(HeaderAdminAuth, token)
	}
	return req
}

func TestAdminAuthMiddleware(t *testing.T) {
	token := "admin-secret"

	tests := []struct {
		name           string
		configured     string
		provided       string
		expectedStatus int
		wantFailures   int
	}{
		{"valid token", token, token, http.StatusOK, 0},
		{"wrong token", token, "admin-secreT", http.StatusUnauthorized, 1},
		{"missing token", token, "", http.StatusUnauthorized, 1},
		{"prefix of token", token, "admin", http.StatusUnauthorized, 1},
		{"unconfigured server rejects empty header", "", "", http.StatusUnauthorized, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewClientTracker()
			rec := httptest.NewRecorder()

			AdminAuthMiddleware(tt.configured, nil, tracker)(okHandler()).
				ServeHTTP(rec, adminRequest("10.0.0.1:5555", tt.provided))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tracker.mu.Lock()
			defer tracker.mu.Unlock()
			assert.Equal(t, tt.wantFailures, tracker.window("10.0.0.1").failedAuth)
		})
	}
}

func TestAdminAuthMiddleware_LocksOutRepeatedFailures(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tracker := NewClientTracker()
	tracker.now = func() time.Time { return now }
	handler := AdminAuthMiddleware("admin-secret", nil, tracker)(okHandler())

	for i := 0; i < failedAuthAlertCount; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, adminRequest("10.0.0.9:1", "guess"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, adminRequest("10.0.0.9:1", "admin-secret"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "locked out even with the right token")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, adminRequest("10.0.0.10:1", "admin-secret"))
	assert.Equal(t, http.StatusOK, rec.Code, "other clients are unaffected")

	now = now.Add(rateWindow + time.Second)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, adminRequest("10.0.0.9:1", "admin-secret"))
	assert.Equal(t, http.StatusOK, rec.Code, "lockout ends with the window")
}

func TestClientTracker_WindowsArePerClient(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tracker := NewClientTracker()
	tracker.now = func() time.Time { return now }
	tracker.lastSweep = now

	for i := 0; i < maxRequestsPerWindow; i++ {
		assert.True(t, tracker.Allow("1.1.1.1"))
	}
	assert.False(t, tracker.Allow("1.1.1.1"))

	now = now.Add(rateWindow / 2)
	assert.True(t, tracker.Allow("2.2.2.2"))

	now = now.Add(rateWindow/2 + time.Second)
	assert.True(t, tracker.Allow("1.1.1.1"), "first client's window expired")
	assert.False(t, tracker.LockedOut("2.2.2.2"))

	tracker.mu.Lock()
	assert.Len(t, tracker.clients, 2)
	tracker.mu.Unlock()

	now = now.Add(2 * rateWindow)
	assert.True(t, tracker.Allow("3.3.3.3"))
	tracker.mu.Lock()
	assert.Len(t, tracker.clients, 1, "expired clients are swept")
	tracker.mu.Unlock()
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct", "1.2.3.4:80", "", nil, "1.2.3.4"},
		{"untrusted forwarded ignored", "1.2.3.4:80", "9.9.9.9", nil, "1.2.3.4"},
		{"trusted proxy uses rightmost", "10.0.0.2:80", "5.5.5.5, 6.6.6.6", []string{"10.0.0.2"}, "6.6.6.6"},
		{"trusted proxy without header", "10.0.0.2:80", "", []string{"10.0.0.2"}, "10.0.0.2"},
		{"unparseable remote", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	for header, want := range map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	} {
		assert.Equal(t, want, rec.Header().Get(header), header)
	}
}
