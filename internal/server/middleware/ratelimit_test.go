package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock управляемые часы для limiter
type fakeClock struct {
	now time.Time
	mu  sync.Mutex
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T, rate float64, burst int) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	limiter := NewRateLimiter(rate, burst, discardLogger())
	limiter.now = clock.Now
	t.Cleanup(limiter.Stop)
	return limiter, clock
}

func TestNewRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(10, 0, discardLogger())
	defer limiter.Stop()

	assert.Equal(t, 10.0, limiter.rate)
	assert.Equal(t, 1, limiter.burst, "burst below 1 is raised to 1")
	assert.Equal(t, minIdleTTL, limiter.idleTTL)
	assert.NotNil(t, limiter.buckets)
}

func TestIdleTTL(t *testing.T) {
	assert.Equal(t, minIdleTTL, idleTTL(10, 20))
	assert.Equal(t, 200*time.Second, idleTTL(0.5, 100))
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("burst is allowed then denied", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, 3)

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow("10.0.0.1"), "request %d", i+1)
		}
		assert.False(t, limiter.Allow("10.0.0.1"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, 1)

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.2"))
	})

	t.Run("tokens refill with time", func(t *testing.T) {
		limiter, clock := newTestLimiter(t, 2, 2)

		assert.True(t, limiter.Allow("ip"))
		assert.True(t, limiter.Allow("ip"))
		assert.False(t, limiter.Allow("ip"))

		clock.Advance(500 * time.Millisecond)
		assert.True(t, limiter.Allow("ip"), "one token after half a second at 2/s")
		assert.False(t, limiter.Allow("ip"))

		clock.Advance(time.Hour)
		assert.True(t, limiter.Allow("ip"))
		assert.True(t, limiter.Allow("ip"))
		assert.False(t, limiter.Allow("ip"), "refill is capped at burst")
	})
}

func TestRateLimiter_CleanupIdleBuckets(t *testing.T) {
	limiter, clock := newTestLimiter(t, 10, 5)

	limiter.Allow("stale")
	clock.Advance(minIdleTTL + time.Second)
	limiter.Allow("fresh")

	limiter.cleanupIdleBuckets()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.buckets, "stale")
	assert.Contains(t, limiter.buckets, "fresh")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	limiter := NewRateLimiter(1, 1, discardLogger())
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, 2)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(limiter, discardLogger())(ok)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/bikes", nil)
		req.RemoteAddr = "192.168.1.10:5555"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, send().Code)
	require.Equal(t, http.StatusOK, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestRateLimitMiddleware_NilLimiter(t *testing.T) {
	handler := RateLimitMiddleware(nil, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for i := 0; i < 100; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		headers    map[string]string
		name       string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For first entry",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.1"},
			remoteAddr: "127.0.0.1:1234",
			expected:   "203.0.113.1",
		},
		{
			name:       "X-Real-IP",
			headers:    map[string]string{"X-Real-IP": " 203.0.113.2 "},
			remoteAddr: "127.0.0.1:1234",
			expected:   "203.0.113.2",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "192.168.1.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "RemoteAddr that is not host:port",
			remoteAddr: "pipe",
			expected:   "pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, getClientIP(req))
		})
	}
}
