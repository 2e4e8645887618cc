package services

import (
	"context"

	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/providers"
	"github.com/zatekoja/benchmap/internal/infrastructure/observability"
)

// publishBenchEvent announces a bench change. Failures are logged only: the
// write that caused the event has already been stored.
func publishBenchEvent(ctx context.Context, bus providers.EventBus, benchID string, eventType entities.BenchEventType, actorID string) {
	if bus == nil {
		return
	}

	event := entities.NewBenchEvent(benchID, eventType, actorID)
	if err := bus.Publish(ctx, providers.EventChannelBenchUpdates, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("bench_id", benchID).
			Str("event_type", string(eventType)).
			Msg("Failed to publish bench event")
	}
}

// InvalidatingEventBus drops this instance's cached responses for a bench
// event before forwarding it, so a read that follows a write on the same
// instance sees the write. Other instances still invalidate from the bus.
type InvalidatingEventBus struct {
	providers.EventBus
	cache providers.CacheProvider
}

var _ providers.EventBus = (*InvalidatingEventBus)(nil)

// NewInvalidatingEventBus wraps bus so Publish invalidates cache first
func NewInvalidatingEventBus(bus providers.EventBus, cache providers.CacheProvider) *InvalidatingEventBus {
	return &InvalidatingEventBus{EventBus: bus, cache: cache}
}

// Publish invalidates the local cache for bench updates, then publishes
func (b *InvalidatingEventBus) Publish(ctx context.Context, channel string, event *entities.BenchEvent) error {
	if channel == providers.EventChannelBenchUpdates && event != nil && b.cache != nil {
		invalidateForEvent(ctx, b.cache, event)
	}
	return b.EventBus.Publish(ctx, channel, event)
}
