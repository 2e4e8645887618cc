package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/providers"
	"github.com/zatekoja/benchmap/internal/domain/ratings"
	"github.com/zatekoja/benchmap/internal/domain/repositories"
	"github.com/zatekoja/benchmap/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
	"github.com/zatekoja/benchmap/pkg/geo"
)

// RatingsInput are the creator's four scores as submitted
type RatingsInput struct {
	Accessibility float64 `json:"accessibility"`
	Crowd         float64 `json:"crowd"`
	View          float64 `json:"view"`
	Vibe          float64 `json:"vibe"`
}

// CreateBenchInput is the payload for adding a bench
type CreateBenchInput struct {
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Lat         *float64      `json:"lat"`
	Lng         *float64      `json:"lng"`
	Category    string        `json:"category"`
	Ratings     *RatingsInput `json:"ratings"`
}

// BenchService handles bench business logic
type BenchService struct {
	benchRepo   repositories.BenchRepository
	reviewRepo  repositories.ReviewRepository
	profileRepo repositories.ProfileRepository
	eventBus    providers.EventBus
}

// NewBenchService creates a new bench service. eventBus may be nil.
func NewBenchService(
	benchRepo repositories.BenchRepository,
	reviewRepo repositories.ReviewRepository,
	profileRepo repositories.ProfileRepository,
	eventBus providers.EventBus,
) *BenchService {
	return &BenchService{
		benchRepo:   benchRepo,
		reviewRepo:  reviewRepo,
		profileRepo: profileRepo,
		eventBus:    eventBus,
	}
}

// List returns all benches, newest first, with community ratings attached and
// the filter applied
func (s *BenchService) List(ctx context.Context, filter ListFilter) ([]*entities.Bench, error) {
	ctx, span := observability.StartSpan(ctx, "BenchService.List")
	defer span.End()

	benches, err := s.benchRepo.List(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	reviews, err := s.reviewRepo.ListRatings(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	attachCommunityRatings(benches, ratings.Aggregate(reviews))
	return filter.Apply(benches), nil
}

// Get returns one bench with its community rating
func (s *BenchService) Get(ctx context.Context, id string) (*entities.Bench, error) {
	bench, err := s.benchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListRatings(ctx, id)
	if err != nil {
		return nil, err
	}

	attachCommunityRatings([]*entities.Bench{bench}, ratings.Aggregate(reviews))
	return bench, nil
}

// Create validates the input and stores a bench owned by actorID. The
// creator's profile name is copied onto the bench when one is set.
func (s *BenchService) Create(ctx context.Context, actorID string, input CreateBenchInput) (*entities.Bench, error) {
	if actorID == "" {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" || input.Description == nil || input.Lat == nil || input.Lng == nil || input.Ratings == nil {
		return nil, apperrors.NewValidationError("title, description, lat, lng and ratings are required")
	}
	if !geo.ValidCoordinates(*input.Lat, *input.Lng) {
		return nil, apperrors.NewValidationError("lat must be within [-90, 90] and lng within [-180, 180]")
	}

	benchRatings, err := ratings.NormalizeBenchRatings(
		input.Ratings.Accessibility,
		input.Ratings.Crowd,
		input.Ratings.View,
		input.Ratings.Vibe,
	)
	if err != nil {
		return nil, err
	}

	owner := actorID
	bench := &entities.Bench{
		ID:            uuid.New().String(),
		Title:         title,
		Description:   *input.Description,
		Lat:           *input.Lat,
		Lng:           *input.Lng,
		Category:      entities.NormalizeCategory(input.Category),
		Ratings:       benchRatings,
		CreatedAt:     time.Now().UTC(),
		UserID:        &owner,
		CreatedByName: s.displayName(ctx, actorID),
	}

	if err := s.benchRepo.Create(ctx, bench); err != nil {
		return nil, err
	}

	publishBenchEvent(ctx, s.eventBus, bench.ID, entities.BenchEventCreated, actorID)
	return bench, nil
}

// Delete removes a bench owned by actorID. A missing bench and someone
// else's bench are both reported as forbidden.
func (s *BenchService) Delete(ctx context.Context, actorID, id string) error {
	if actorID == "" {
		return apperrors.NewUnauthorizedError("authentication required")
	}

	deleted, err := s.benchRepo.DeleteOwned(ctx, id, actorID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewForbiddenError("bench not found or you are not its author")
	}

	publishBenchEvent(ctx, s.eventBus, id, entities.BenchEventDeleted, actorID)
	return nil
}

func (s *BenchService) displayName(ctx context.Context, userID string) *string {
	names, err := s.profileRepo.GetNames(ctx, []string{userID})
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("user_id", userID).Msg("Failed to resolve creator name")
		return nil
	}
	if name, ok := names[userID]; ok {
		return &name
	}
	return nil
}

func attachCommunityRatings(benches []*entities.Bench, averages map[string]float64) {
	for _, b := range benches {
		if avg, ok := averages[b.ID]; ok {
			rating := avg
			b.CommunityRating = &rating
		}
		b.Category = entities.NormalizeCategory(string(b.Category))
	}
}
