package repositories

import (
	"context"

	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// BenchRepository defines the interface for bench data operations
type BenchRepository interface {
	// List returns every bench, newest first
	List(ctx context.Context) ([]*entities.Bench, error)

	// GetByID retrieves a bench by ID
	GetByID(ctx context.Context, id string) (*entities.Bench, error)

	// Create persists a new bench
	Create(ctx context.Context, bench *entities.Bench) error

	// DeleteOwned deletes the bench only when userID created it. It reports
	// whether a row was removed.
	DeleteOwned(ctx context.Context, id, userID string) (bool, error)

	// GetOwner returns the creator of a bench; nil for legacy rows
	GetOwner(ctx context.Context, id string) (*string, error)

	// GetTitles resolves bench titles by ID. Unknown IDs are absent.
	GetTitles(ctx context.Context, ids []string) (map[string]string, error)

	// CountByUser counts benches created by a user
	CountByUser(ctx context.Context, userID string) (int, error)
}
