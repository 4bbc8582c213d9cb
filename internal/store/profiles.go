// internal/store/profiles.go

// Package store reads innovator profiles from Postgres. Profile writes happen
// elsewhere in the platform; the engine only ever reads.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	apperrors "innovator-match/internal/common/errors"
	"innovator-match/internal/common/logger"
	"innovator-match/internal/common/metrics"
	"innovator-match/internal/models"

	"github.com/redis/go-redis/v9"
)

const profileColumns = "id, name, type, tags, location, organization, description"

// ProfileStore serves single profiles and candidate pools, with an optional
// Redis read-through cache for single-profile lookups.
type ProfileStore struct {
	db        *sql.DB
	cache     *redis.Client
	cacheTTL  time.Duration
	poolLimit int
	logger    logger.Logger
}

// Options configures a ProfileStore. Cache may be nil to disable caching.
type Options struct {
	DB        *sql.DB
	Cache     *redis.Client
	CacheTTL  time.Duration
	PoolLimit int
	Logger    logger.Logger
}

func NewProfileStore(opts Options) *ProfileStore {
	poolLimit := opts.PoolLimit
	if poolLimit <= 0 {
		poolLimit = 500
	}
	return &ProfileStore{
		db:        opts.DB,
		cache:     opts.Cache,
		cacheTTL:  opts.CacheTTL,
		poolLimit: poolLimit,
		logger:    opts.Logger.WithFields(map[string]interface{}{"component": "profile-store"}),
	}
}

// GetProfile fetches one profile by id, consulting the cache first.
func (s *ProfileStore) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	cacheKey := "profile:" + id
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var profile models.Profile
			if err := json.Unmarshal([]byte(val), &profile); err == nil {
				return &profile, nil
			}
		}
	}

	row := s.db.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE id = $1", id)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewProfileNotFoundError(id)
		}
		return nil, apperrors.NewProfileQueryFailedError(err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(profile); err == nil {
			s.cache.Set(ctx, cacheKey, data, s.cacheTTL)
		}
	}

	return profile, nil
}

// GetCandidatePool returns every profile eligible to be ranked for the
// viewer, excluding the viewer's own row. Rows that cannot be decoded are
// skipped and logged; a bad row never aborts the pool.
func (s *ProfileStore) GetCandidatePool(ctx context.Context, viewerID string) ([]models.Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE id <> $1 ORDER BY created_at DESC LIMIT $2",
		viewerID, s.poolLimit)
	if err != nil {
		return nil, apperrors.NewProfileQueryFailedError(err)
	}
	defer rows.Close()

	var pool []models.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			s.logger.Warn("skipping unreadable profile row", map[string]interface{}{
				"viewerId": viewerID,
				"error":    err,
			})
			metrics.CandidatesSkipped.WithLabelValues(metrics.SkipUnreadable).Inc()
			continue
		}
		pool = append(pool, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewProfileQueryFailedError(err)
	}

	return pool, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	var (
		profile      models.Profile
		rawTags      []byte
		location     sql.NullString
		organization sql.NullString
		description  sql.NullString
	)

	err := row.Scan(&profile.ID, &profile.Name, &profile.Type, &rawTags,
		&location, &organization, &description)
	if err != nil {
		return nil, err
	}

	if len(rawTags) > 0 {
		if err := json.Unmarshal(rawTags, &profile.Tags); err != nil {
			return nil, err
		}
	}

	profile.Location = location.String
	profile.Organization = organization.String
	profile.Description = description.String

	return &profile, nil
}
