package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/providers"
)

// CacheInvalidationService drops cached responses when bench events arrive
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	started  bool
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start begins listening for events and invalidating cache
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelBenchUpdates)
	if err != nil {
		return fmt.Errorf("failed to subscribe to bench updates: %w", err)
	}

	s.started = true
	go s.processEvents(eventChan)
	log.Info().Msg("Cache invalidation service started")
	return nil
}

// Stop stops listening and waits for the event loop to exit
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	if s.started {
		<-s.done
	}
	log.Info().Msg("Cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.BenchEvent) {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

func (s *CacheInvalidationService) handleEvent(event *entities.BenchEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	invalidateForEvent(ctx, s.cache, event)
}

func invalidateForEvent(ctx context.Context, cache providers.CacheProvider, event *entities.BenchEvent) {
	for _, pattern := range InvalidationPatterns(event) {
		if err := cache.DeletePattern(ctx, pattern); err != nil {
			log.Warn().
				Err(err).
				Str("pattern", pattern).
				Str("bench_id", event.BenchID).
				Msg("Failed to invalidate cache")
			continue
		}
		log.Debug().
			Str("pattern", pattern).
			Str("event_type", string(event.EventType)).
			Msg("Invalidated cache")
	}
}

// InvalidationPatterns lists the cached responses an event makes stale.
// Listings carry community ratings, so reviews invalidate them too.
func InvalidationPatterns(event *entities.BenchEvent) []string {
	list := providers.CachePattern(providers.BenchListCacheScope())
	bench := providers.CachePattern(providers.BenchCacheScope(event.BenchID))
	comments := providers.CachePattern(providers.CommentsCacheScope(event.BenchID))

	switch event.EventType {
	case entities.BenchEventCreated:
		return []string{list}
	case entities.BenchEventDeleted:
		return []string{list, bench, comments}
	case entities.BenchEventReviewed:
		return []string{list, bench}
	case entities.BenchEventComment:
		return []string{comments}
	default:
		return []string{list, bench, comments}
	}
}
