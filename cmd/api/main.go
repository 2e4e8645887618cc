package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/benchmap/internal/adapters/cache"
	"github.com/zatekoja/benchmap/internal/adapters/database"
	"github.com/zatekoja/benchmap/internal/adapters/events"
	"github.com/zatekoja/benchmap/internal/api/handlers"
	"github.com/zatekoja/benchmap/internal/api/middleware"
	"github.com/zatekoja/benchmap/internal/api/routes"
	"github.com/zatekoja/benchmap/internal/application/services"
	"github.com/zatekoja/benchmap/internal/domain/providers"
	"github.com/zatekoja/benchmap/internal/infrastructure/auth"
	"github.com/zatekoja/benchmap/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/benchmap/internal/infrastructure/clients/redis"
	"github.com/zatekoja/benchmap/internal/infrastructure/observability"
	"github.com/zatekoja/benchmap/pkg/config"
	"github.com/zatekoja/benchmap/pkg/secrets"
)

func main() {
	// Secrets from Vault land in the environment before config is read
	vaultResult, err := secrets.Apply(context.Background(), secrets.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load secrets from Vault: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.App.Env, cfg.App.LogLevel)
	if len(vaultResult.Loaded) > 0 {
		log.Info().Strs("keys", vaultResult.Loaded).Int("skipped", len(vaultResult.Skipped)).Msg("Loaded secrets from Vault")
	}

	// Set up context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Storage
	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	pgClient.SetMetrics(metrics)

	// Redis backs the response cache and the event bus. Without it both fall
	// back to in-process implementations.
	var (
		cacheProvider providers.CacheProvider
		eventBus      providers.EventBus
	)
	redisClient, err := redis.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, using in-memory cache and event bus")
		cacheProvider = cache.NewMemoryAdapter(time.Minute)
		eventBus = events.NewLocalEventBus()
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		eventBus = events.NewRedisEventBus(redisClient)
	}

	// writes drop this instance's cached responses before the event goes out
	serviceBus := eventBus
	if cfg.Cache.Enabled {
		serviceBus = services.NewInvalidatingEventBus(eventBus, cacheProvider)
	}

	benchAdapter := database.NewBenchAdapter(pgClient)
	reviewAdapter := database.NewReviewAdapter(pgClient)
	commentAdapter := database.NewCommentAdapter(pgClient)
	notificationAdapter := database.NewNotificationAdapter(pgClient)
	profileAdapter := database.NewProfileAdapter(pgClient)

	// Services
	notificationService := services.NewNotificationService(benchAdapter, commentAdapter, notificationAdapter, profileAdapter, metrics)
	benchService := services.NewBenchService(benchAdapter, reviewAdapter, profileAdapter, serviceBus)
	commentService := services.NewCommentService(commentAdapter, profileAdapter, notificationService, serviceBus)
	reviewService := services.NewReviewService(reviewAdapter, notificationService, serviceBus)
	profileService := services.NewProfileService(profileAdapter, benchAdapter)

	var cacheMiddleware *middleware.CacheMiddleware
	var cacheInvalidationService *services.CacheInvalidationService
	if cfg.Cache.Enabled {
		cacheInvalidationService = services.NewCacheInvalidationService(cacheProvider, eventBus)
		if err := cacheInvalidationService.Start(); err != nil {
			log.Warn().Err(err).Msg("Failed to start cache invalidation, response cache disabled")
			cacheInvalidationService = nil
		} else {
			cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, middleware.CacheConfig{
				ListTTLSeconds:     cfg.Cache.ListTTLSeconds,
				CommentsTTLSeconds: cfg.Cache.CommentsTTLSeconds,
			}, metrics)
		}
	}

	if cfg.Auth.JWTSecret == "" {
		log.Warn().Msg("AUTH_JWT_SECRET is empty; every request will be anonymous")
	}

	router := routes.NewRouter(routes.Handlers{
		Bench:        handlers.NewBenchHandler(benchService),
		Comment:      handlers.NewCommentHandler(commentService),
		Review:       handlers.NewReviewHandler(reviewService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Profile:      handlers.NewProfileHandler(profileService),
		Health:       handlers.NewHealthHandler(pgClient),
	}, routes.Options{
		Verifier:        auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Audience),
		AuthCookieName:  cfg.Auth.CookieName,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		CacheMiddleware: cacheMiddleware,
		RateLimiter:     middleware.NewRateLimiter(cfg.RateLimit.WritesPerMinute, cfg.RateLimit.Burst, metrics),
		Metrics:         metrics,
	})

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if cacheInvalidationService != nil {
		cacheInvalidationService.Stop()
	}
	if err := eventBus.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing event bus")
	}

	log.Info().Msg("Server stopped")
}
