package services

import (
	"context"
	"time"

	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/providers"
	"github.com/zatekoja/benchmap/internal/domain/ratings"
	"github.com/zatekoja/benchmap/internal/domain/repositories"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
)

// ReviewService handles star reviews
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	dispatcher Dispatcher
	eventBus   providers.EventBus
}

// NewReviewService creates a new review service. eventBus may be nil.
func NewReviewService(reviewRepo repositories.ReviewRepository, dispatcher Dispatcher, eventBus providers.EventBus) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		dispatcher: dispatcher,
		eventBus:   eventBus,
	}
}

// GetMine returns the actor's review of a bench. Anonymous callers and
// actors without a review get nil without an error.
func (s *ReviewService) GetMine(ctx context.Context, actorID, benchID string) (*entities.Review, error) {
	if actorID == "" {
		return nil, nil
	}

	review, err := s.reviewRepo.GetByBenchAndUser(ctx, benchID, actorID)
	if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return review, nil
}

// Upsert clamps and rounds the rating, stores it as the actor's only review
// of the bench and notifies the owner. It returns the stored rating.
func (s *ReviewService) Upsert(ctx context.Context, actorID, benchID string, rawRating float64) (int, error) {
	if actorID == "" {
		return 0, apperrors.NewUnauthorizedError("authentication required")
	}

	rating, err := ratings.NormalizeReview(rawRating)
	if err != nil {
		return 0, err
	}

	review := &entities.Review{
		BenchID:   benchID,
		UserID:    actorID,
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reviewRepo.Upsert(ctx, review); err != nil {
		return 0, err
	}

	_ = s.dispatcher.Dispatch(ctx, Trigger{
		Type:    entities.NotificationReview,
		BenchID: benchID,
		ActorID: actorID,
	})

	publishBenchEvent(ctx, s.eventBus, benchID, entities.BenchEventReviewed, actorID)
	return rating, nil
}
