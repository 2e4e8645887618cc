package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
)

var profileRowColumns = []string{"user_id", "full_name", "country", "date_of_birth", "created_at", "updated_at"}

func TestProfileAdapter_GetByUserID(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewProfileAdapter(client)

	t0 := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	dob := time.Date(1990, 7, 14, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(sqlFragment(`FROM "profiles" WHERE ("user_id" = $1)`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(profileRowColumns).AddRow("u1", "Anna", "FR", dob, t0, t0))

	profile, err := adapter.GetByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Anna", *profile.FullName)
	assert.Equal(t, "FR", *profile.Country)
	assert.Equal(t, "1990-07-14", *profile.DateOfBirth)

	mock.ExpectQuery(sqlFragment(`FROM "profiles"`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(profileRowColumns))

	_, err = adapter.GetByUserID(context.Background(), "nobody")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileAdapter_GetNames(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewProfileAdapter(client)

	mock.ExpectQuery(sqlFragment(`SELECT "user_id", "full_name" FROM "profiles" WHERE ("user_id" IN ($1, $2))`)).
		WithArgs("u1", "u2").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "full_name"}).
			AddRow("u1", "Anna").
			AddRow("u2", nil))

	names, err := adapter.GetNames(context.Background(), []string{"u1", "u2", "u1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"u1": "Anna"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileAdapter_Upsert(t *testing.T) {
	client, mock := newMockClient(t)
	adapter := NewProfileAdapter(client)

	original := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(sqlFragment(`INSERT INTO "profiles"`) + ".*" +
		sqlFragment(`ON CONFLICT (user_id) DO UPDATE SET`) + ".*" +
		sqlFragment(`RETURNING "created_at"`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(original))

	name := "Anna"
	now := time.Now().UTC()
	profile := &entities.Profile{UserID: "u1", FullName: &name, CreatedAt: now, UpdatedAt: now}

	require.NoError(t, adapter.Upsert(context.Background(), profile))
	assert.Equal(t, original, profile.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
