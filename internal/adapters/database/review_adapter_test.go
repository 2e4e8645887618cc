package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
)

func TestReviewAdapter_Upsert(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewReviewAdapter(client)

	mock.ExpectExec(sqlFragment(`INSERT INTO "bench_reviews"`) + ".*" +
		sqlFragment(`ON CONFLICT (bench_id, user_id) DO UPDATE SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := adapter.Upsert(context.Background(), &entities.Review{
		BenchID:   "b1",
		UserID:    "u2",
		Rating:    4,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewAdapter_Upsert_MissingBench(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewReviewAdapter(client)

	mock.ExpectExec(sqlFragment(`INSERT INTO "bench_reviews"`)).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	err := adapter.Upsert(context.Background(), &entities.Review{BenchID: "gone", UserID: "u2", Rating: 3})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestReviewAdapter_GetByBenchAndUser(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewReviewAdapter(client)

	created := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(sqlFragment(`FROM "bench_reviews" WHERE (("bench_id" = $1) AND ("user_id" = $2))`)).
		WithArgs("b1", "u2").
		WillReturnRows(sqlmock.NewRows([]string{"bench_id", "user_id", "rating", "created_at"}).
			AddRow("b1", "u2", 5, created))

	review, err := adapter.GetByBenchAndUser(context.Background(), "b1", "u2")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, created, review.CreatedAt)

	mock.ExpectQuery(sqlFragment(`FROM "bench_reviews"`)).
		WithArgs("b1", "u3").
		WillReturnRows(sqlmock.NewRows([]string{"bench_id", "user_id", "rating", "created_at"}))

	_, err = adapter.GetByBenchAndUser(context.Background(), "b1", "u3")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewAdapter_ListRatings(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewReviewAdapter(client)

	mock.ExpectQuery(sqlFragment(`SELECT "bench_id", "rating" FROM "bench_reviews"`) + "$").
		WillReturnRows(sqlmock.NewRows([]string{"bench_id", "rating"}).
			AddRow("b1", 4).
			AddRow("b1", 5).
			AddRow("b2", 3))

	ratings, err := adapter.ListRatings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entities.ReviewRating{
		{BenchID: "b1", Rating: 4},
		{BenchID: "b1", Rating: 5},
		{BenchID: "b2", Rating: 3},
	}, ratings)

	mock.ExpectQuery(sqlFragment(`WHERE ("bench_id" IN ($1))`)).
		WithArgs("b2").
		WillReturnRows(sqlmock.NewRows([]string{"bench_id", "rating"}).AddRow("b2", 3))

	ratings, err = adapter.ListRatings(context.Background(), "b2")
	require.NoError(t, err)
	assert.Len(t, ratings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
