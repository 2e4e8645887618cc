package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/providers"
	"github.com/zatekoja/benchmap/internal/domain/repositories"
	"github.com/zatekoja/benchmap/internal/domain/threads"
	"github.com/zatekoja/benchmap/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
)

// Dispatcher sends best-effort notifications for a write
type Dispatcher interface {
	Dispatch(ctx context.Context, t Trigger) DispatchResult
}

// CreateCommentInput is the payload for a comment or reply
type CreateCommentInput struct {
	Body     string  `json:"body"`
	ParentID *string `json:"parent_id"`
}

// CommentService handles comments and replies on benches
type CommentService struct {
	commentRepo repositories.CommentRepository
	profileRepo repositories.ProfileRepository
	dispatcher  Dispatcher
	eventBus    providers.EventBus
}

// NewCommentService creates a new comment service. eventBus may be nil.
func NewCommentService(
	commentRepo repositories.CommentRepository,
	profileRepo repositories.ProfileRepository,
	dispatcher Dispatcher,
	eventBus providers.EventBus,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		profileRepo: profileRepo,
		dispatcher:  dispatcher,
		eventBus:    eventBus,
	}
}

// List returns a bench's comments oldest first with author names resolved
func (s *CommentService) List(ctx context.Context, benchID string) ([]entities.Comment, error) {
	comments, err := s.commentRepo.ListByBench(ctx, benchID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return comments, nil
	}

	userIDs := make([]string, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
	}

	names, err := s.profileRepo.GetNames(ctx, userIDs)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("bench_id", benchID).Msg("Failed to resolve comment author names")
		return comments, nil
	}

	for i := range comments {
		if name, ok := names[comments[i].UserID]; ok {
			comments[i].AuthorName = &name
		}
	}
	return comments, nil
}

// Threads returns the root comments of a bench, each with its descendants
// flattened into one chronological list
func (s *CommentService) Threads(ctx context.Context, benchID string) ([]threads.Thread, error) {
	comments, err := s.List(ctx, benchID)
	if err != nil {
		return nil, err
	}
	return threads.Threads(comments), nil
}

// Create stores a comment by actorID, then notifies the bench owner and the
// parent comment's author. The parent is not required to exist.
func (s *CommentService) Create(ctx context.Context, actorID, benchID string, input CreateCommentInput) (*entities.Comment, error) {
	if actorID == "" {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, apperrors.NewValidationError("body is required")
	}

	var parentID *string
	if input.ParentID != nil {
		if trimmed := strings.TrimSpace(*input.ParentID); trimmed != "" {
			parentID = &trimmed
		}
	}

	comment := &entities.Comment{
		ID:        uuid.New().String(),
		BenchID:   benchID,
		UserID:    actorID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
		ParentID:  parentID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if names, err := s.profileRepo.GetNames(ctx, []string{actorID}); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("user_id", actorID).Msg("Failed to resolve comment author name")
	} else if name, ok := names[actorID]; ok {
		comment.AuthorName = &name
	}

	commentID := comment.ID
	_ = s.dispatcher.Dispatch(ctx, Trigger{
		Type:            entities.NotificationComment,
		BenchID:         benchID,
		ActorID:         actorID,
		CommentID:       &commentID,
		ParentCommentID: parentID,
	})

	publishBenchEvent(ctx, s.eventBus, benchID, entities.BenchEventComment, actorID)
	return comment, nil
}
