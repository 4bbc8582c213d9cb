// internal/ledger/ledger.go

// Package ledger persists per-(viewer, candidate) like/dislike dispositions.
// The engine only depends on the Preferences contract; the Redis
// implementation here is the platform's default backing store.
package ledger

import (
	"context"

	apperrors "innovator-match/internal/common/errors"
	"innovator-match/internal/common/logger"
	"innovator-match/internal/common/metrics"
	"innovator-match/internal/models"

	"github.com/redis/go-redis/v9"
)

// Preferences is the external disposition-store contract consumed by the
// ranking pipeline.
type Preferences interface {
	// Save upserts the (viewerID, targetID) -> disposition mapping.
	// Last write wins; repeated calls with any disposition are safe.
	Save(ctx context.Context, viewerID, targetID string, disposition models.Disposition) error

	// Query returns every known disposition for a viewer. An empty map means
	// no dispositions are recorded; a non-nil error means the ledger could
	// not be read and must not be treated as "all neutral".
	Query(ctx context.Context, viewerID string) (map[string]models.Disposition, error)
}

const keyPrefix = "prefs:"

func prefsKey(viewerID string) string {
	return keyPrefix + viewerID
}

// RedisLedger stores dispositions in one hash per viewer: field is the
// target profile id, value is the disposition. HSET gives the
// last-write-wins overwrite the contract requires.
type RedisLedger struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisLedger(client *redis.Client, log logger.Logger) *RedisLedger {
	return &RedisLedger{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "ledger"}),
	}
}

func (l *RedisLedger) Save(ctx context.Context, viewerID, targetID string, disposition models.Disposition) error {
	if !disposition.Valid() {
		return apperrors.NewInvalidDispositionError(string(disposition))
	}

	if err := l.client.HSet(ctx, prefsKey(viewerID), targetID, string(disposition)).Err(); err != nil {
		metrics.LedgerErrors.WithLabelValues("save").Inc()
		l.logger.Error("disposition write failed", map[string]interface{}{
			"viewerId": viewerID,
			"targetId": targetID,
			"error":    err,
		})
		return apperrors.NewLedgerWriteFailedError(err)
	}

	metrics.DispositionWrites.WithLabelValues(string(disposition)).Inc()
	return nil
}

func (l *RedisLedger) Query(ctx context.Context, viewerID string) (map[string]models.Disposition, error) {
	values, err := l.client.HGetAll(ctx, prefsKey(viewerID)).Result()
	if err != nil {
		metrics.LedgerErrors.WithLabelValues("query").Inc()
		return nil, apperrors.NewLedgerUnavailableError(err)
	}

	prefs := make(map[string]models.Disposition, len(values))
	for targetID, value := range values {
		disposition := models.Disposition(value)
		if !disposition.Valid() {
			// A foreign value in the hash is ignored rather than poisoning
			// the whole read.
			l.logger.Warn("ignoring unknown disposition value", map[string]interface{}{
				"viewerId": viewerID,
				"targetId": targetID,
				"value":    value,
			})
			continue
		}
		prefs[targetID] = disposition
	}
	return prefs, nil
}
