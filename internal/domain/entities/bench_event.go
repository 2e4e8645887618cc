package entities

import (
	"time"

	"github.com/google/uuid"
)

// BenchEventType represents what changed about a bench
type BenchEventType string

const (
	BenchEventCreated  BenchEventType = "bench_created"
	BenchEventDeleted  BenchEventType = "bench_deleted"
	BenchEventReviewed BenchEventType = "bench_reviewed"
	BenchEventComment  BenchEventType = "bench_commented"
)

// BenchEvent is published whenever data behind the public listings changes
type BenchEvent struct {
	ID        string         `json:"id"`
	BenchID   string         `json:"bench_id"`
	EventType BenchEventType `json:"event_type"`
	ActorID   string         `json:"actor_id,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewBenchEvent creates a new bench event
func NewBenchEvent(benchID string, eventType BenchEventType, actorID string) *BenchEvent {
	return &BenchEvent{
		ID:        uuid.New().String(),
		BenchID:   benchID,
		EventType: eventType,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	}
}
