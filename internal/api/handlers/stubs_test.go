package handlers_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/zatekoja/benchmap/internal/application/services"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/threads"
	"github.com/zatekoja/benchmap/internal/infrastructure/auth"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
)

func asActor(r *http.Request, userID string) *http.Request {
	return r.WithContext(auth.WithActor(r.Context(), userID))
}

func strPtr(s string) *string { return &s }

type stubBenchService struct {
	benches   []*entities.Bench
	filter    services.ListFilter
	created   *services.CreateBenchInput
	deleteErr error
	err       error
}

func (s *stubBenchService) List(_ context.Context, filter services.ListFilter) ([]*entities.Bench, error) {
	s.filter = filter
	return s.benches, s.err
}

func (s *stubBenchService) Get(_ context.Context, id string) (*entities.Bench, error) {
	for _, b := range s.benches {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, apperrors.NewNotFoundError("bench not found")
}

func (s *stubBenchService) Create(_ context.Context, actorID string, input services.CreateBenchInput) (*entities.Bench, error) {
	s.created = &input
	if input.Title == "" {
		return nil, apperrors.NewValidationError("title, description, lat, lng and ratings are required")
	}
	return &entities.Bench{ID: "new", Title: input.Title, UserID: &actorID, Category: entities.CategoryOther}, nil
}

func (s *stubBenchService) Delete(context.Context, string, string) error {
	return s.deleteErr
}

type stubCommentService struct {
	comments []entities.Comment
	created  *services.CreateCommentInput
}

func (s *stubCommentService) List(context.Context, string) ([]entities.Comment, error) {
	return s.comments, nil
}

func (s *stubCommentService) Threads(_ context.Context, _ string) ([]threads.Thread, error) {
	return threads.Threads(s.comments), nil
}

func (s *stubCommentService) Create(_ context.Context, actorID, benchID string, input services.CreateCommentInput) (*entities.Comment, error) {
	s.created = &input
	if input.Body == "" {
		return nil, apperrors.NewValidationError("body is required")
	}
	return &entities.Comment{ID: "c-new", BenchID: benchID, UserID: actorID, Body: input.Body, ParentID: input.ParentID}, nil
}

type stubReviewService struct {
	review   *entities.Review
	lastRaw  float64
	upserted bool
}

func (s *stubReviewService) GetMine(_ context.Context, actorID, _ string) (*entities.Review, error) {
	if actorID == "" {
		return nil, nil
	}
	return s.review, nil
}

func (s *stubReviewService) Upsert(_ context.Context, _, _ string, raw float64) (int, error) {
	s.lastRaw = raw
	s.upserted = true
	return 4, nil
}

type stubNotificationService struct {
	list    []*entities.Notification
	marked  []string
	missing bool
}

func (s *stubNotificationService) List(context.Context, string) ([]*entities.Notification, error) {
	return s.list, nil
}

func (s *stubNotificationService) MarkRead(_ context.Context, _, id string) error {
	if s.missing {
		return apperrors.NewNotFoundError("notification not found")
	}
	s.marked = append(s.marked, id)
	return nil
}

type stubProfileService struct {
	profile *entities.Profile
	input   *services.ProfileInput
}

func (s *stubProfileService) Get(ctx context.Context, actorID string) (*entities.PublicProfile, error) {
	return s.GetPublic(ctx, actorID)
}

func (s *stubProfileService) GetPublic(_ context.Context, userID string) (*entities.PublicProfile, error) {
	if s.profile == nil || s.profile.UserID != userID {
		return nil, apperrors.NewNotFoundError("profile not found")
	}
	return &entities.PublicProfile{Profile: *s.profile, BenchCount: 2}, nil
}

func (s *stubProfileService) Upsert(_ context.Context, actorID string, input services.ProfileInput) (*entities.Profile, error) {
	s.input = &input
	if input.Country != nil && *input.Country == "XX" {
		return nil, apperrors.NewValidationError("country must be an ISO 3166-1 country code")
	}
	return &entities.Profile{UserID: actorID, FullName: input.FullName}, nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

var errStorage = errors.New("connection reset by peer")
