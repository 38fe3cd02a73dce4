package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// minIdleTTL минимальное время жизни неиспользуемого bucket
const minIdleTTL = time.Minute

// RateLimiter token bucket на каждый IP: rate токенов в секунду, емкость burst
type RateLimiter struct {
	buckets  map[string]*bucket
	logger   *slog.Logger
	cleanupC chan struct{}
	now      func() time.Time
	rate     float64
	idleTTL  time.Duration
	burst    int
	mu       sync.Mutex
	stopOnce sync.Once
}

type bucket struct {
	lastSeen time.Time
	tokens   float64
}

// NewRateLimiter создает limiter и запускает фоновую очистку.
// rate должен быть больше нуля; burst меньше 1 считается равным 1.
// Остановить очистку: Stop.
func NewRateLimiter(rate float64, burst int, logger *slog.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}

	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		logger:   logger,
		cleanupC: make(chan struct{}),
		now:      time.Now,
		rate:     rate,
		burst:    burst,
		idleTTL:  idleTTL(rate, burst),
	}

	go rl.cleanup()

	return rl
}

// idleTTL время полного пополнения пустого bucket, но не меньше minIdleTTL.
// Bucket, простоявший дольше, неотличим от нового и его можно удалить.
func idleTTL(rate float64, burst int) time.Duration {
	d := time.Duration(float64(burst) / rate * float64(time.Second))
	if d < minIdleTTL {
		return minIdleTTL
	}
	return d
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupIdleBuckets()
		case <-rl.cleanupC:
			return
		}
	}
}

func (rl *RateLimiter) cleanupIdleBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rl.idleTTL {
			delete(rl.buckets, key)
		}
	}
}

// Stop останавливает фоновую очистку; повторный вызов безопасен
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.cleanupC) })
}

// Allow списывает токен из bucket ключа (обычно IP адрес).
// false, если токенов не осталось.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(rl.burst), lastSeen: now}
		rl.buckets[key] = b
	} else {
		elapsed := now.Sub(b.lastSeen).Seconds()
		b.tokens = min(float64(rl.burst), b.tokens+elapsed*rl.rate)
		b.lastSeen = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// RateLimitMiddleware отвечает 429, если limiter не пропускает IP клиента.
// nil limiter отключает ограничение.
func RateLimitMiddleware(limiter *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := getClientIP(r)

			if !limiter.Allow(key) {
				logger.Warn("Rate limit exceeded",
					slog.String("ip", key),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP берет IP клиента из X-Forwarded-For, X-Real-IP или RemoteAddr (без порта)
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
