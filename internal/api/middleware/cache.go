package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/zatekoja/benchmap/internal/domain/providers"
	"github.com/zatekoja/benchmap/internal/infrastructure/observability"
)

// CacheConfig holds TTLs for the cached public routes
type CacheConfig struct {
	ListTTLSeconds     int
	CommentsTTLSeconds int
}

// CacheMiddleware caches successful GET responses of public, actor-independent
// routes. Keys are grouped by scope so writes can drop them by pattern.
type CacheMiddleware struct {
	cache   providers.CacheProvider
	config  CacheConfig
	metrics *observability.Metrics
}

// NewCacheMiddleware creates a new cache middleware. metrics may be nil.
func NewCacheMiddleware(cache providers.CacheProvider, config CacheConfig, metrics *observability.Metrics) *CacheMiddleware {
	return &CacheMiddleware{
		cache:   cache,
		config:  config,
		metrics: metrics,
	}
}

type cacheRoute struct {
	scope      string
	label      string
	pattern    string
	ttlSeconds int
}

// routeFor maps a request path onto its cache scope. Only the bench listing,
// single bench and comment routes are cacheable.
func (m *CacheMiddleware) routeFor(path string) (cacheRoute, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[0] != "api" || parts[1] != "benches" {
		return cacheRoute{}, false
	}

	switch {
	case len(parts) == 2:
		return cacheRoute{providers.BenchListCacheScope(), "benches", "GET /api/benches", m.config.ListTTLSeconds}, true
	case len(parts) == 3 && parts[2] != "":
		return cacheRoute{providers.BenchCacheScope(parts[2]), "bench", "GET /api/benches/{id}", m.config.ListTTLSeconds}, true
	case len(parts) == 4 && parts[2] != "" && parts[3] == "comments":
		return cacheRoute{providers.CommentsCacheScope(parts[2]), "comments", "GET /api/benches/{id}/comments", m.config.CommentsTTLSeconds}, true
	}
	return cacheRoute{}, false
}

// Middleware returns the cache middleware handler
func (m *CacheMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || m.cache == nil {
			next.ServeHTTP(w, r)
			return
		}

		route, ok := m.routeFor(r.URL.Path)
		if !ok || route.ttlSeconds <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		logger := observability.LoggerFromContext(ctx)
		cacheKey := providers.CacheKey(route.scope, requestHash(r))

		cached, err := m.cache.Get(ctx, cacheKey)
		if err == nil {
			observability.RecordCacheHit(ctx, m.metrics, route.label)
			// the mux is skipped on a hit; label the request for outer middleware
			r.Pattern = route.pattern
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		if !errors.Is(err, providers.ErrCacheMiss) {
			logger.Warn().Err(err).Str("key", cacheKey).Msg("Cache read failed")
		}

		observability.RecordCacheMiss(ctx, m.metrics, route.label)
		w.Header().Set("X-Cache", "MISS")

		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           &bytes.Buffer{},
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode == http.StatusOK && recorder.body.Len() > 0 {
			if err := m.cache.Set(ctx, cacheKey, recorder.body.Bytes(), route.ttlSeconds); err != nil {
				logger.Warn().Err(err).Str("key", cacheKey).Msg("Failed to cache response")
			}
		}
	})
}

func requestHash(r *http.Request) string {
	key := r.URL.Path
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.Query().Encode()
	}
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:])
}

// responseRecorder captures the response for caching while passing it through
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
	written    bool
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	if !r.written {
		r.statusCode = statusCode
		r.ResponseWriter.WriteHeader(statusCode)
		r.written = true
	}
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}
