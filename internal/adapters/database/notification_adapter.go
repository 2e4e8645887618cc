package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/repositories"
	"github.com/zatekoja/benchmap/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
)

const notificationsTable = "notifications"

// NotificationAdapter implements NotificationRepository
type NotificationAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

var _ repositories.NotificationRepository = (*NotificationAdapter)(nil)

// NewNotificationAdapter creates a new notification adapter
func NewNotificationAdapter(client *postgres.Client) *NotificationAdapter {
	return &NotificationAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a notification
func (a *NotificationAdapter) Create(ctx context.Context, n *entities.Notification) error {
	defer a.client.ObserveQuery(ctx, "notifications.create", time.Now())

	record := goqu.Record{
		"id":           n.ID,
		"user_id":      n.UserID,
		"type":         string(n.Type),
		"bench_id":     n.BenchID,
		"from_user_id": nullString(n.FromUserID),
		"comment_id":   nullString(n.CommentID),
		"created_at":   n.CreatedAt,
	}

	query, args, err := a.db.Insert(notificationsTable).Rows(record).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create notification", err)
	}
	return nil
}

// ListByUser returns up to limit notifications addressed to userID, newest first
func (a *NotificationAdapter) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.Notification, error) {
	defer a.client.ObserveQuery(ctx, "notifications.list_by_user", time.Now())

	query, args, err := a.db.From(notificationsTable).
		Select("id", "user_id", "type", "bench_id", "from_user_id", "comment_id", "created_at", "read_at").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list notifications", err)
	}
	defer rows.Close()

	notifications := make([]*entities.Notification, 0)
	for rows.Next() {
		var (
			n          entities.Notification
			kind       string
			fromUserID sql.NullString
			commentID  sql.NullString
			readAt     sql.NullTime
		)
		if err := rows.Scan(&n.ID, &n.UserID, &kind, &n.BenchID, &fromUserID, &commentID, &n.CreatedAt, &readAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan notification", err)
		}
		n.Type = entities.NotificationType(kind)
		n.FromUserID = stringPtr(fromUserID)
		n.CommentID = stringPtr(commentID)
		n.ReadAt = timePtr(readAt)
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to list notifications", err)
	}
	return notifications, nil
}

// MarkRead stamps read_at unless it is already set
func (a *NotificationAdapter) MarkRead(ctx context.Context, id, userID string, at time.Time) (bool, error) {
	defer a.client.ObserveQuery(ctx, "notifications.mark_read", time.Now())

	query, args, err := a.db.Update(notificationsTable).
		Set(goqu.Record{"read_at": goqu.L("COALESCE(read_at, ?)", at)}).
		Where(goqu.Ex{"id": id, "user_id": userID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return false, apperrors.NewInternalError("failed to mark notification read", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.NewInternalError("failed to read update result", err)
	}
	return affected > 0, nil
}
