package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/repositories"
	"github.com/zatekoja/benchmap/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
)

const commentsTable = "bench_comments"

// CommentAdapter implements CommentRepository
type CommentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

var _ repositories.CommentRepository = (*CommentAdapter)(nil)

// NewCommentAdapter creates a new comment adapter
func NewCommentAdapter(client *postgres.Client) *CommentAdapter {
	return &CommentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a comment. parent_id is stored as given, without checking
// that the parent exists.
func (a *CommentAdapter) Create(ctx context.Context, comment *entities.Comment) error {
	defer a.client.ObserveQuery(ctx, "bench_comments.create", time.Now())

	record := goqu.Record{
		"id":         comment.ID,
		"bench_id":   comment.BenchID,
		"user_id":    comment.UserID,
		"body":       comment.Body,
		"parent_id":  nullString(comment.ParentID),
		"created_at": comment.CreatedAt,
	}

	query, args, err := a.db.Insert(commentsTable).Rows(record).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("bench not found")
		}
		return apperrors.NewInternalError("failed to create comment", err)
	}
	return nil
}

// ListByBench returns a bench's comments oldest first
func (a *CommentAdapter) ListByBench(ctx context.Context, benchID string) ([]entities.Comment, error) {
	defer a.client.ObserveQuery(ctx, "bench_comments.list_by_bench", time.Now())

	query, args, err := a.db.From(commentsTable).
		Select("id", "bench_id", "user_id", "body", "created_at", "parent_id").
		Where(goqu.Ex{"bench_id": benchID}).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list comments", err)
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		var (
			c        entities.Comment
			parentID sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.BenchID, &c.UserID, &c.Body, &c.CreatedAt, &parentID); err != nil {
			return nil, apperrors.NewInternalError("failed to scan comment", err)
		}
		c.ParentID = stringPtr(parentID)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to list comments", err)
	}
	return comments, nil
}

// GetAuthor returns the user who wrote a comment
func (a *CommentAdapter) GetAuthor(ctx context.Context, commentID string) (string, error) {
	defer a.client.ObserveQuery(ctx, "bench_comments.get_author", time.Now())

	query, args, err := a.db.From(commentsTable).
		Select("user_id").
		Where(goqu.Ex{"id": commentID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return "", apperrors.NewInternalError("failed to build query", err)
	}

	var author string
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&author)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.NewNotFoundError("comment not found")
	}
	if err != nil {
		return "", apperrors.NewInternalError("failed to get comment author", err)
	}
	return author, nil
}
