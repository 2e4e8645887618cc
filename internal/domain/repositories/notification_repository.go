package repositories

import (
	"context"
	"time"

	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error

	// ListByUser returns up to limit notifications addressed to userID, newest first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entities.Notification, error)

	// MarkRead stamps read_at on a notification owned by userID. An already
	// read notification keeps its original timestamp. It reports whether the
	// notification exists for that user.
	MarkRead(ctx context.Context, id, userID string, at time.Time) (bool, error)
}
