package repositories

import (
	"context"

	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// CommentRepository defines the interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error

	// ListByBench returns a bench's comments oldest first
	ListByBench(ctx context.Context, benchID string) ([]entities.Comment, error)

	// GetAuthor returns the user who wrote a comment
	GetAuthor(ctx context.Context, commentID string) (string, error)
}
