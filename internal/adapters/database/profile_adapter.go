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

const profilesTable = "profiles"

// ProfileAdapter implements ProfileRepository
type ProfileAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

var _ repositories.ProfileRepository = (*ProfileAdapter)(nil)

// NewProfileAdapter creates a new profile adapter
func NewProfileAdapter(client *postgres.Client) *ProfileAdapter {
	return &ProfileAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// GetByUserID retrieves a profile
func (a *ProfileAdapter) GetByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	defer a.client.ObserveQuery(ctx, "profiles.get_by_user_id", time.Now())

	query, args, err := a.db.From(profilesTable).
		Select("user_id", "full_name", "country", "date_of_birth", "created_at", "updated_at").
		Where(goqu.Ex{"user_id": userID}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	var (
		p           entities.Profile
		fullName    sql.NullString
		country     sql.NullString
		dateOfBirth sql.NullTime
	)
	err = a.client.DB().QueryRowContext(ctx, query, args...).
		Scan(&p.UserID, &fullName, &country, &dateOfBirth, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("profile not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get profile", err)
	}

	p.FullName = stringPtr(fullName)
	p.Country = stringPtr(country)
	p.DateOfBirth = dateString(dateOfBirth)
	return &p, nil
}

// GetNames resolves full names for the given users
func (a *ProfileAdapter) GetNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	defer a.client.ObserveQuery(ctx, "profiles.get_names", time.Now())

	names := make(map[string]string)
	userIDs = uniqueStrings(userIDs)
	if len(userIDs) == 0 {
		return names, nil
	}

	query, args, err := a.db.From(profilesTable).
		Select("user_id", "full_name").
		Where(goqu.Ex{"user_id": userIDs}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get profile names", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID   string
			fullName sql.NullString
		)
		if err := rows.Scan(&userID, &fullName); err != nil {
			return nil, apperrors.NewInternalError("failed to scan profile name", err)
		}
		if fullName.Valid && fullName.String != "" {
			names[userID] = fullName.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to get profile names", err)
	}
	return names, nil
}

// Upsert creates or replaces the profile. created_at of an existing row is kept
// and written back into profile.
func (a *ProfileAdapter) Upsert(ctx context.Context, profile *entities.Profile) error {
	defer a.client.ObserveQuery(ctx, "profiles.upsert", time.Now())

	record := goqu.Record{
		"user_id":       profile.UserID,
		"full_name":     nullString(profile.FullName),
		"country":       nullString(profile.Country),
		"date_of_birth": nullString(profile.DateOfBirth),
		"created_at":    profile.CreatedAt,
		"updated_at":    profile.UpdatedAt,
	}

	query, args, err := a.db.Insert(profilesTable).
		Rows(record).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"full_name":     goqu.L("EXCLUDED.full_name"),
			"country":       goqu.L("EXCLUDED.country"),
			"date_of_birth": goqu.L("EXCLUDED.date_of_birth"),
			"updated_at":    goqu.L("EXCLUDED.updated_at"),
		})).
		Returning("created_at").
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build upsert query", err)
	}

	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&profile.CreatedAt); err != nil {
		return apperrors.NewInternalError("failed to save profile", err)
	}
	return nil
}
