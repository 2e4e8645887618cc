package events

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/benchmap/internal/domain/entities"
)

const subscriberBuffer = 100

// subscriberSet tracks the listener channels of every channel name. Each
// listener channel is closed exactly once, by remove or closeChannel.
type subscriberSet struct {
	mu       sync.RWMutex
	channels map[string]map[chan *entities.BenchEvent]struct{}
}

func newSubscriberSet() *subscriberSet {
	return &subscriberSet{
		channels: make(map[string]map[chan *entities.BenchEvent]struct{}),
	}
}

// add registers a new listener and returns it with the listener count
func (s *subscriberSet) add(channel string) (chan *entities.BenchEvent, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.channels[channel] == nil {
		s.channels[channel] = make(map[chan *entities.BenchEvent]struct{})
	}
	ch := make(chan *entities.BenchEvent, subscriberBuffer)
	s.channels[channel][ch] = struct{}{}
	return ch, len(s.channels[channel])
}

// remove closes one listener. It reports whether the channel has no listeners left.
func (s *subscriberSet) remove(channel string, ch chan *entities.BenchEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	listeners, ok := s.channels[channel]
	if !ok {
		return false
	}
	if _, ok := listeners[ch]; !ok {
		return false
	}

	delete(listeners, ch)
	close(ch)

	if len(listeners) == 0 {
		delete(s.channels, channel)
		return true
	}
	return false
}

// deliver hands the event to every listener without blocking; full listeners miss it
func (s *subscriberSet) deliver(channel string, event *entities.BenchEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for listener := range s.channels[channel] {
		select {
		case listener <- event:
		default:
			log.Warn().
				Str("channel", channel).
				Str("event_id", event.ID).
				Msg("Subscriber channel full, skipping event")
		}
	}
}

// closeChannel closes every listener of a channel
func (s *subscriberSet) closeChannel(channel string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for listener := range s.channels[channel] {
		close(listener)
	}
	delete(s.channels, channel)
}

func (s *subscriberSet) names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.channels))
	for name := range s.channels {
		names = append(names, name)
	}
	return names
}
