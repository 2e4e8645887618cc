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

const benchesTable = "benches"

var benchColumns = []interface{}{
	"id", "title", "description", "lat", "lng", "category",
	"accessibility", "crowd", "view", "vibe",
	"created_at", "user_id", "created_by_name",
}

// BenchAdapter implements BenchRepository
type BenchAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

var _ repositories.BenchRepository = (*BenchAdapter)(nil)

// NewBenchAdapter creates a new bench adapter
func NewBenchAdapter(client *postgres.Client) *BenchAdapter {
	return &BenchAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns every bench, newest first
func (a *BenchAdapter) List(ctx context.Context) ([]*entities.Bench, error) {
	defer a.client.ObserveQuery(ctx, "benches.list", time.Now())

	query, args, err := a.db.From(benchesTable).
		Select(benchColumns...).
		Order(goqu.I("created_at").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list benches", err)
	}
	defer rows.Close()

	benches := make([]*entities.Bench, 0)
	for rows.Next() {
		bench, err := scanBench(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan bench", err)
		}
		benches = append(benches, bench)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to list benches", err)
	}

	return benches, nil
}

// GetByID retrieves a bench by ID
func (a *BenchAdapter) GetByID(ctx context.Context, id string) (*entities.Bench, error) {
	defer a.client.ObserveQuery(ctx, "benches.get_by_id", time.Now())

	query, args, err := a.db.From(benchesTable).
		Select(benchColumns...).
		Where(goqu.Ex{"id": id}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	bench, err := scanBench(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("bench not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get bench", err)
	}
	return bench, nil
}

// Create persists a new bench
func (a *BenchAdapter) Create(ctx context.Context, bench *entities.Bench) error {
	defer a.client.ObserveQuery(ctx, "benches.create", time.Now())

	record := goqu.Record{
		"id":              bench.ID,
		"title":           bench.Title,
		"description":     bench.Description,
		"lat":             bench.Lat,
		"lng":             bench.Lng,
		"category":        string(bench.Category),
		"accessibility":   bench.Ratings.Accessibility,
		"crowd":           bench.Ratings.Crowd,
		"view":            bench.Ratings.View,
		"vibe":            bench.Ratings.Vibe,
		"created_at":      bench.CreatedAt,
		"user_id":         nullString(bench.UserID),
		"created_by_name": nullString(bench.CreatedByName),
	}

	query, args, err := a.db.Insert(benchesTable).Rows(record).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create bench", err)
	}
	return nil
}

// DeleteOwned deletes the bench only when userID created it
func (a *BenchAdapter) DeleteOwned(ctx context.Context, id, userID string) (bool, error) {
	defer a.client.ObserveQuery(ctx, "benches.delete_owned", time.Now())

	query, args, err := a.db.Delete(benchesTable).
		Where(goqu.Ex{"id": id, "user_id": userID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return false, apperrors.NewInternalError("failed to delete bench", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.NewInternalError("failed to read delete result", err)
	}
	return affected > 0, nil
}

// GetOwner returns the creator of a bench
func (a *BenchAdapter) GetOwner(ctx context.Context, id string) (*string, error) {
	defer a.client.ObserveQuery(ctx, "benches.get_owner", time.Now())

	query, args, err := a.db.From(benchesTable).
		Select("user_id").
		Where(goqu.Ex{"id": id}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	var owner sql.NullString
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("bench not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get bench owner", err)
	}
	return stringPtr(owner), nil
}

// GetTitles resolves bench titles by ID
func (a *BenchAdapter) GetTitles(ctx context.Context, ids []string) (map[string]string, error) {
	defer a.client.ObserveQuery(ctx, "benches.get_titles", time.Now())

	titles := make(map[string]string)
	ids = uniqueStrings(ids)
	if len(ids) == 0 {
		return titles, nil
	}

	query, args, err := a.db.From(benchesTable).
		Select("id", "title").
		Where(goqu.Ex{"id": ids}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get bench titles", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, apperrors.NewInternalError("failed to scan bench title", err)
		}
		titles[id] = title
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to get bench titles", err)
	}
	return titles, nil
}

// CountByUser counts benches created by a user
func (a *BenchAdapter) CountByUser(ctx context.Context, userID string) (int, error) {
	defer a.client.ObserveQuery(ctx, "benches.count_by_user", time.Now())

	query, args, err := a.db.From(benchesTable).
		Select(goqu.COUNT("*")).
		Where(goqu.Ex{"user_id": userID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewInternalError("failed to count benches", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBench(row rowScanner) (*entities.Bench, error) {
	var (
		bench         entities.Bench
		category      string
		userID        sql.NullString
		createdByName sql.NullString
	)

	err := row.Scan(
		&bench.ID,
		&bench.Title,
		&bench.Description,
		&bench.Lat,
		&bench.Lng,
		&category,
		&bench.Ratings.Accessibility,
		&bench.Ratings.Crowd,
		&bench.Ratings.View,
		&bench.Ratings.Vibe,
		&bench.CreatedAt,
		&userID,
		&createdByName,
	)
	if err != nil {
		return nil, err
	}

	bench.Category = entities.NormalizeCategory(category)
	bench.UserID = stringPtr(userID)
	bench.CreatedByName = stringPtr(createdByName)
	return &bench, nil
}
