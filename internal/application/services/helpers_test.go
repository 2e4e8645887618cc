package services_test

import (
	"context"
	"math"
	"sync"

	"github.com/zatekoja/benchmap/internal/application/services"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/pkg/geo"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// lngForKm returns the longitude km east of (0,0) along the equator
func lngForKm(km float64) float64 {
	return km / geo.EarthRadiusKm * 180 / math.Pi
}

// recordingDispatcher captures triggers instead of writing notifications
type recordingDispatcher struct {
	mu       sync.Mutex
	triggers []services.Trigger
}

func (d *recordingDispatcher) Dispatch(_ context.Context, t services.Trigger) services.DispatchResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.triggers = append(d.triggers, t)
	return services.DispatchResult{}
}

func (d *recordingDispatcher) Triggers() []services.Trigger {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]services.Trigger(nil), d.triggers...)
}

// recordingBus collects published events synchronously
type recordingBus struct {
	mu     sync.Mutex
	events []*entities.BenchEvent
	err    error
}

func (b *recordingBus) Publish(_ context.Context, _ string, event *entities.BenchEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, event)
	return nil
}

func (b *recordingBus) Subscribe(context.Context, string) (<-chan *entities.BenchEvent, error) {
	return make(chan *entities.BenchEvent), nil
}

func (b *recordingBus) Unsubscribe(context.Context, string) error { return nil }

func (b *recordingBus) Close() error { return nil }

func (b *recordingBus) Types() []entities.BenchEventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	types := make([]entities.BenchEventType, 0, len(b.events))
	for _, e := range b.events {
		types = append(types, e.EventType)
	}
	return types
}
