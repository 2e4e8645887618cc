package events

import (
	"context"
	"errors"
	"sync"

	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/providers"
)

// ErrBusClosed is returned when publishing or subscribing after Close
var ErrBusClosed = errors.New("event bus closed")

// LocalEventBus delivers events to subscribers in the same process. It is
// used when Redis is unavailable and in tests.
type LocalEventBus struct {
	subscribers *subscriberSet
	mu          sync.RWMutex
	closed      bool
	done        chan struct{}
}

var _ providers.EventBus = (*LocalEventBus)(nil)

// NewLocalEventBus creates an in-process event bus
func NewLocalEventBus() *LocalEventBus {
	return &LocalEventBus{
		subscribers: newSubscriberSet(),
		done:        make(chan struct{}),
	}
}

// Publish delivers the event to current subscribers of channel
func (b *LocalEventBus) Publish(_ context.Context, channel string, event *entities.BenchEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}

	b.subscribers.deliver(channel, event)
	return nil
}

// Subscribe subscribes to events on a channel until ctx is done
func (b *LocalEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.BenchEvent, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil, ErrBusClosed
	}

	eventChan, _ := b.subscribers.add(channel)
	go func() {
		select {
		case <-ctx.Done():
			b.subscribers.remove(channel, eventChan)
		case <-b.done:
		}
	}()
	return eventChan, nil
}

// Unsubscribe closes every listener of a channel
func (b *LocalEventBus) Unsubscribe(_ context.Context, channel string) error {
	b.subscribers.closeChannel(channel)
	return nil
}

// Close closes all subscriptions. Further calls are no-ops.
func (b *LocalEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)

	for _, channel := range b.subscribers.names() {
		b.subscribers.closeChannel(channel)
	}
	return nil
}
