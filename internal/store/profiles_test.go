package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	apperrors "innovator-match/internal/common/errors"
	"innovator-match/internal/common/logger"
	"innovator-match/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*ProfileStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewProfileStore(Options{
		DB:        db,
		Cache:     nil, // cache disabled in unit tests
		CacheTTL:  time.Minute,
		PoolLimit: 100,
		Logger:    logger.NewTestLogger(t),
	})
	return store, mock
}

func profileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "type", "tags", "location", "organization", "description",
	})
}

func TestProfileStore_GetProfile(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(profileRows().AddRow(
			"p1", "Nora", "startup", []byte(`["AI","Health"]`), "Riyadh", "NoraTech", "builds things",
		))

	profile, err := store.GetProfile(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", profile.ID)
	assert.Equal(t, models.TypeStartup, profile.Type)
	assert.Equal(t, []string{"AI", "Health"}, profile.Tags)
	assert.Equal(t, "Riyadh", profile.Location)
	assert.Equal(t, "NoraTech", profile.Organization)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileStore_GetProfile_NullableColumns(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(profileRows().AddRow(
			"p1", "Nora", "individual", []byte(`[]`), nil, nil, nil,
		))

	profile, err := store.GetProfile(context.Background(), "p1")
	require.NoError(t, err)

	assert.Empty(t, profile.Location)
	assert.Empty(t, profile.Organization)
	assert.Empty(t, profile.Tags)
}

func TestProfileStore_GetProfile_NotFound(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetProfile(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeProfileNotFound, apperrors.CodeOf(err))
	assert.False(t, apperrors.IsRetryable(err))
}

func TestProfileStore_GetProfile_QueryError(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id = \$1`).
		WithArgs("p1").
		WillReturnError(fmt.Errorf("connection reset"))

	_, err := store.GetProfile(context.Background(), "p1")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeProfileQueryFailed, apperrors.CodeOf(err))
	assert.True(t, apperrors.IsRetryable(err))
}

func TestProfileStore_GetCandidatePool(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id <> \$1`).
		WithArgs("viewer-1", 100).
		WillReturnRows(profileRows().
			AddRow("c1", "A", "startup", []byte(`["AI"]`), "Riyadh", nil, nil).
			AddRow("c2", "B", "research", []byte(`["health","robotics"]`), "Dubai", "KAUST", nil))

	pool, err := store.GetCandidatePool(context.Background(), "viewer-1")
	require.NoError(t, err)

	require.Len(t, pool, 2)
	assert.Equal(t, "c1", pool[0].ID)
	assert.Equal(t, []string{"health", "robotics"}, pool[1].Tags)
}

func TestProfileStore_GetCandidatePool_SkipsUnreadableRows(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id <> \$1`).
		WithArgs("viewer-1", 100).
		WillReturnRows(profileRows().
			AddRow("c1", "A", "startup", []byte(`not-json`), nil, nil, nil).
			AddRow("c2", "B", "startup", []byte(`["AI"]`), "Riyadh", nil, nil))

	pool, err := store.GetCandidatePool(context.Background(), "viewer-1")
	require.NoError(t, err)

	// The undecodable row is skipped, not fatal.
	require.Len(t, pool, 1)
	assert.Equal(t, "c2", pool[0].ID)
}

func TestProfileStore_GetCandidatePool_QueryError(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id <> \$1`).
		WithArgs("viewer-1", 100).
		WillReturnError(fmt.Errorf("timeout"))

	_, err := store.GetCandidatePool(context.Background(), "viewer-1")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeProfileQueryFailed, apperrors.CodeOf(err))
}

func TestProfileStore_GetCandidatePool_Empty(t *testing.T) {
	store, mock := setupStore(t)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id <> \$1`).
		WithArgs("only-user", 100).
		WillReturnRows(profileRows())

	pool, err := store.GetCandidatePool(context.Background(), "only-user")
	require.NoError(t, err)
	assert.Empty(t, pool)
}
