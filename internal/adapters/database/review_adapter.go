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

const reviewsTable = "bench_reviews"

// ReviewAdapter implements ReviewRepository
type ReviewAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

var _ repositories.ReviewRepository = (*ReviewAdapter)(nil)

// NewReviewAdapter creates a new review adapter
func NewReviewAdapter(client *postgres.Client) *ReviewAdapter {
	return &ReviewAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Upsert inserts the review or overwrites rating and timestamp of the
// existing one for the same (bench, user) pair
func (a *ReviewAdapter) Upsert(ctx context.Context, review *entities.Review) error {
	defer a.client.ObserveQuery(ctx, "bench_reviews.upsert", time.Now())

	record := goqu.Record{
		"bench_id":   review.BenchID,
		"user_id":    review.UserID,
		"rating":     review.Rating,
		"created_at": review.CreatedAt,
	}

	query, args, err := a.db.Insert(reviewsTable).
		Rows(record).
		OnConflict(goqu.DoUpdate("bench_id, user_id", goqu.Record{
			"rating":     goqu.L("EXCLUDED.rating"),
			"created_at": goqu.L("EXCLUDED.created_at"),
		})).
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("bench not found")
		}
		return apperrors.NewInternalError("failed to save review", err)
	}
	return nil
}

// GetByBenchAndUser retrieves one user's review of a bench
func (a *ReviewAdapter) GetByBenchAndUser(ctx context.Context, benchID, userID string) (*entities.Review, error) {
	defer a.client.ObserveQuery(ctx, "bench_reviews.get_by_bench_and_user", time.Now())

	query, args, err := a.db.From(reviewsTable).
		Select("bench_id", "user_id", "rating", "created_at").
		Where(goqu.Ex{"bench_id": benchID, "user_id": userID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	var review entities.Review
	err = a.client.DB().QueryRowContext(ctx, query, args...).
		Scan(&review.BenchID, &review.UserID, &review.Rating, &review.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("review not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get review", err)
	}
	return &review, nil
}

// ListRatings returns the (bench, rating) pairs of every review, or of the
// given benches only
func (a *ReviewAdapter) ListRatings(ctx context.Context, benchIDs ...string) ([]entities.ReviewRating, error) {
	defer a.client.ObserveQuery(ctx, "bench_reviews.list_ratings", time.Now())

	ds := a.db.From(reviewsTable).Select("bench_id", "rating")
	if len(benchIDs) > 0 {
		ds = ds.Where(goqu.Ex{"bench_id": uniqueStrings(benchIDs)})
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list review ratings", err)
	}
	defer rows.Close()

	ratings := make([]entities.ReviewRating, 0)
	for rows.Next() {
		var r entities.ReviewRating
		if err := rows.Scan(&r.BenchID, &r.Rating); err != nil {
			return nil, apperrors.NewInternalError("failed to scan review rating", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to list review ratings", err)
	}
	return ratings, nil
}
