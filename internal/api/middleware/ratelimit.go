package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/zatekoja/benchmap/internal/infrastructure/auth"
	"github.com/zatekoja/benchmap/internal/infrastructure/observability"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter throttles write requests per actor, or per client IP for
// anonymous callers. Reads are never limited.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*actorLimiter
	limit     rate.Limit
	burst     int
	metrics   *observability.Metrics
	now       func() time.Time
	lastSweep time.Time
}

type actorLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows writesPerMinute sustained writes with the given burst.
// A non-positive rate disables limiting.
func NewRateLimiter(writesPerMinute, burst int, metrics *observability.Metrics) *RateLimiter {
	limit := rate.Inf
	if writesPerMinute > 0 {
		limit = rate.Limit(float64(writesPerMinute) / 60)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*actorLimiter),
		limit:    limit,
		burst:    burst,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Middleware returns the rate limiting handler
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isReadMethod(r.Method) || l.limit == rate.Inf {
			next.ServeHTTP(w, r)
			return
		}

		if !l.allow(limiterKey(r)) {
			observability.RecordRateLimited(r.Context(), l.metrics, r.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(l.retryAfterSeconds()))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"rate limit exceeded"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for k, al := range l.limiters {
			if now.Sub(al.lastSeen) > limiterIdleTTL {
				delete(l.limiters, k)
			}
		}
		l.lastSweep = now
	}

	al, ok := l.limiters[key]
	if !ok {
		al = &actorLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = al
	}
	al.lastSeen = now
	return al.limiter.AllowN(now, 1)
}

func (l *RateLimiter) retryAfterSeconds() int {
	seconds := int(1 / float64(l.limit))
	if seconds < 1 {
		return 1
	}
	return seconds
}

func limiterKey(r *http.Request) string {
	if actorID, ok := auth.ActorFromContext(r.Context()); ok {
		return "actor:" + actorID
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func isReadMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
