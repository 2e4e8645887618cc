package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/providers"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func receive(t *testing.T, ch <-chan *entities.BenchEvent) *entities.BenchEvent {
	t.Helper()
	select {
	case event, ok := <-ch:
		require.True(t, ok, "channel closed")
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestLocalEventBus_PublishSubscribe(t *testing.T) {
	bus := NewLocalEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first, err := bus.Subscribe(ctx, providers.EventChannelBenchUpdates)
	require.NoError(t, err)
	second, err := bus.Subscribe(ctx, providers.EventChannelBenchUpdates)
	require.NoError(t, err)
	other, err := bus.Subscribe(ctx, "benches:other")
	require.NoError(t, err)

	event := entities.NewBenchEvent("b1", entities.BenchEventCreated, "u1")
	require.NoError(t, bus.Publish(ctx, providers.EventChannelBenchUpdates, event))

	assert.Equal(t, event.ID, receive(t, first).ID)
	assert.Equal(t, event.ID, receive(t, second).ID)

	select {
	case <-other:
		t.Fatal("event leaked to another channel")
	default:
	}
}

func TestLocalEventBus_ContextCancelClosesSubscription(t *testing.T) {
	bus := NewLocalEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Subscribe(ctx, providers.EventChannelBenchUpdates)
	require.NoError(t, err)

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestLocalEventBus_Close(t *testing.T) {
	bus := NewLocalEventBus()

	ch, err := bus.Subscribe(context.Background(), providers.EventChannelBenchUpdates)
	require.NoError(t, err)

	require.NoError(t, bus.Close())
	_, ok := <-ch
	assert.False(t, ok)

	assert.ErrorIs(t, bus.Publish(context.Background(), "x", entities.NewBenchEvent("b1", entities.BenchEventDeleted, "u1")), ErrBusClosed)
	_, err = bus.Subscribe(context.Background(), "x")
	assert.ErrorIs(t, err, ErrBusClosed)
	assert.NoError(t, bus.Close())
}

func TestLocalEventBus_FullSubscriberDoesNotBlock(t *testing.T) {
	bus := NewLocalEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err := bus.Subscribe(ctx, "busy")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer+10; i++ {
			_ = bus.Publish(ctx, "busy", entities.NewBenchEvent("b1", entities.BenchEventComment, "u1"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}
