package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/fanout"
	"github.com/zatekoja/benchmap/internal/domain/repositories"
	"github.com/zatekoja/benchmap/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
)

// NotificationListLimit caps how many notifications a user sees
const NotificationListLimit = 100

// Trigger describes the write that may notify other users
type Trigger struct {
	Type    entities.NotificationType
	BenchID string
	ActorID string

	// CommentID is the new comment for comment triggers
	CommentID *string

	// ParentCommentID is set when the comment is a reply
	ParentCommentID *string
}

// DispatchResult reports what a dispatch did. Callers discard it; it exists
// for logging and tests.
type DispatchResult struct {
	Recipients []string
	Created    int
	Failures   []error
}

// NotificationService creates and serves notifications
type NotificationService struct {
	benchRepo        repositories.BenchRepository
	commentRepo      repositories.CommentRepository
	notificationRepo repositories.NotificationRepository
	profileRepo      repositories.ProfileRepository
	metrics          *observability.Metrics
	now              func() time.Time
}

// NewNotificationService creates a new notification service. metrics may be nil.
func NewNotificationService(
	benchRepo repositories.BenchRepository,
	commentRepo repositories.CommentRepository,
	notificationRepo repositories.NotificationRepository,
	profileRepo repositories.ProfileRepository,
	metrics *observability.Metrics,
) *NotificationService {
	return &NotificationService{
		benchRepo:        benchRepo,
		commentRepo:      commentRepo,
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		metrics:          metrics,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// Dispatch notifies the bench owner and, for replies, the parent comment's
// author. It never fails: lookup and insert errors are logged and collected
// in the result.
func (s *NotificationService) Dispatch(ctx context.Context, t Trigger) DispatchResult {
	var result DispatchResult
	logger := observability.LoggerFromContext(ctx).With().
		Str("bench_id", t.BenchID).
		Str("actor_id", t.ActorID).
		Str("notification_type", string(t.Type)).
		Logger()

	fail := func(err error, msg string) {
		result.Failures = append(result.Failures, err)
		observability.RecordNotification(ctx, s.metrics, string(t.Type), false)
		logger.Warn().Err(err).Msg(msg)
	}

	owner, err := s.benchRepo.GetOwner(ctx, t.BenchID)
	if err != nil {
		fail(err, "Failed to look up bench owner for notification")
	}

	var parentAuthor *string
	if t.ParentCommentID != nil && *t.ParentCommentID != "" {
		author, err := s.commentRepo.GetAuthor(ctx, *t.ParentCommentID)
		switch {
		case apperrors.IsType(err, apperrors.ErrorTypeNotFound):
			// parent deleted in the meantime; only the owner is notified
		case err != nil:
			fail(err, "Failed to look up parent comment author for notification")
		default:
			parentAuthor = &author
		}
	}

	result.Recipients = fanout.Recipients(t.ActorID, owner, parentAuthor)

	var commentID *string
	if t.Type == entities.NotificationComment {
		commentID = t.CommentID
	}

	for _, recipient := range result.Recipients {
		actor := t.ActorID
		notification := &entities.Notification{
			ID:         uuid.New().String(),
			UserID:     recipient,
			Type:       t.Type,
			BenchID:    t.BenchID,
			FromUserID: &actor,
			CommentID:  commentID,
			CreatedAt:  s.now(),
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			fail(err, "Failed to store notification")
			continue
		}
		result.Created++
		observability.RecordNotification(ctx, s.metrics, string(t.Type), true)
	}

	return result
}

// List returns the actor's latest notifications, newest first, with the
// bench title and the acting user's name resolved where possible
func (s *NotificationService) List(ctx context.Context, actorID string) ([]*entities.Notification, error) {
	if actorID == "" {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, actorID, NotificationListLimit)
	if err != nil {
		return nil, err
	}
	if len(notifications) == 0 {
		return notifications, nil
	}

	benchIDs := make([]string, 0, len(notifications))
	fromIDs := make([]string, 0, len(notifications))
	for _, n := range notifications {
		benchIDs = append(benchIDs, n.BenchID)
		if n.FromUserID != nil {
			fromIDs = append(fromIDs, *n.FromUserID)
		}
	}

	logger := observability.LoggerFromContext(ctx)
	titles, err := s.benchRepo.GetTitles(ctx, benchIDs)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to resolve bench titles for notifications")
		titles = nil
	}
	names, err := s.profileRepo.GetNames(ctx, fromIDs)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to resolve actor names for notifications")
		names = nil
	}

	for _, n := range notifications {
		if title, ok := titles[n.BenchID]; ok {
			n.BenchTitle = &title
		}
		if n.FromUserID != nil {
			if name, ok := names[*n.FromUserID]; ok {
				n.FromUserName = &name
			}
		}
	}
	return notifications, nil
}

// MarkRead marks one of the actor's notifications as read. Marking it again
// keeps the first read time.
func (s *NotificationService) MarkRead(ctx context.Context, actorID, id string) error {
	if actorID == "" {
		return apperrors.NewUnauthorizedError("authentication required")
	}

	found, err := s.notificationRepo.MarkRead(ctx, id, actorID, s.now())
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFoundError("notification not found")
	}
	return nil
}
