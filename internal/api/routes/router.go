package routes

import (
	"net/http"

	"github.com/zatekoja/benchmap/internal/api/handlers"
	"github.com/zatekoja/benchmap/internal/api/middleware"
	"github.com/zatekoja/benchmap/internal/infrastructure/observability"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Bench        *handlers.BenchHandler
	Comment      *handlers.CommentHandler
	Review       *handlers.ReviewHandler
	Notification *handlers.NotificationHandler
	Profile      *handlers.ProfileHandler
	Health       *handlers.HealthHandler
}

// Options configures the middleware chain
type Options struct {
	Verifier        middleware.TokenVerifier
	AuthCookieName  string
	AllowedOrigins  []string
	CacheMiddleware *middleware.CacheMiddleware
	RateLimiter     *middleware.RateLimiter
	Metrics         *observability.Metrics
}

// Router holds all route handlers
type Router struct {
	mux      *http.ServeMux
	handlers Handlers
	opts     Options
}

// NewRouter creates a new router
func NewRouter(h Handlers, opts Options) *Router {
	return &Router{
		mux:      http.NewServeMux(),
		handlers: h,
		opts:     opts,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", r.handlers.Health.Health)

	// Benches
	r.mux.HandleFunc("GET /api/benches", r.handlers.Bench.ListBenches)
	r.mux.HandleFunc("POST /api/benches", r.handlers.Bench.CreateBench)
	r.mux.HandleFunc("GET /api/benches/{id}", r.handlers.Bench.GetBench)
	r.mux.HandleFunc("DELETE /api/benches/{id}", r.handlers.Bench.DeleteBench)

	// Comments and replies
	r.mux.HandleFunc("GET /api/benches/{id}/comments", r.handlers.Comment.ListComments)
	r.mux.HandleFunc("POST /api/benches/{id}/comments", r.handlers.Comment.CreateComment)

	// Reviews
	r.mux.HandleFunc("GET /api/benches/{id}/reviews", r.handlers.Review.GetMyReview)
	r.mux.HandleFunc("POST /api/benches/{id}/reviews", r.handlers.Review.UpsertReview)

	// Notifications
	r.mux.HandleFunc("GET /api/notifications", r.handlers.Notification.ListNotifications)
	r.mux.HandleFunc("PATCH /api/notifications/{id}/read", r.handlers.Notification.MarkRead)

	// Profiles
	r.mux.HandleFunc("GET /api/profile", r.handlers.Profile.GetOwnProfile)
	r.mux.HandleFunc("PUT /api/profile", r.handlers.Profile.UpsertOwnProfile)
	r.mux.HandleFunc("GET /api/profiles/{userId}", r.handlers.Profile.GetPublicProfile)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux

	if r.opts.CacheMiddleware != nil {
		handler = r.opts.CacheMiddleware.Middleware(handler)
	}
	if r.opts.RateLimiter != nil {
		handler = r.opts.RateLimiter.Middleware(handler)
	}

	handler = middleware.ResponseOptimization(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.opts.Metrics)(handler)

	// The actor must be known to logging and rate limiting
	if r.opts.Verifier != nil {
		handler = middleware.AuthMiddleware(r.opts.Verifier, r.opts.AuthCookieName)(handler)
	}

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(r.opts.AllowedOrigins)(handler)

	return handler
}
