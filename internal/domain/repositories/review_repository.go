package repositories

import (
	"context"

	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// ReviewRepository defines the interface for review operations
type ReviewRepository interface {
	// Upsert inserts the review or overwrites the existing one for the same
	// (bench, user) pair
	Upsert(ctx context.Context, review *entities.Review) error

	// GetByBenchAndUser retrieves one user's review of a bench
	GetByBenchAndUser(ctx context.Context, benchID, userID string) (*entities.Review, error)

	// ListRatings returns the (bench, rating) pairs of every review. With
	// benchIDs set only those benches are read.
	ListRatings(ctx context.Context, benchIDs ...string) ([]entities.ReviewRating, error)
}
