package repositories

import (
	"context"

	"github.com/zatekoja/benchmap/internal/domain/entities"
)

// ProfileRepository defines the interface for profile operations
type ProfileRepository interface {
	// GetByUserID retrieves a profile
	GetByUserID(ctx context.Context, userID string) (*entities.Profile, error)

	// GetNames resolves full names for the given users. Users without a
	// profile or without a name are absent.
	GetNames(ctx context.Context, userIDs []string) (map[string]string, error)

	// Upsert creates or replaces the profile
	Upsert(ctx context.Context, profile *entities.Profile) error
}
