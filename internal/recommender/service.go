// internal/recommender/service.go

// Package recommender orchestrates the match engine: it pulls a candidate
// pool and the viewer's dispositions, runs the ranking pipeline, and records
// new dispositions.
package recommender

import (
	"context"
	"time"

	apperrors "innovator-match/internal/common/errors"
	"innovator-match/internal/common/logger"
	"innovator-match/internal/common/metrics"
	"innovator-match/internal/common/observability"
	"innovator-match/internal/ledger"
	"innovator-match/internal/matching"
	"innovator-match/internal/models"

	"github.com/google/uuid"
)

// CandidateSource is the external profile-store contract.
type CandidateSource interface {
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	GetCandidatePool(ctx context.Context, viewerID string) ([]models.Profile, error)
}

// Service is the engine's main entry point for callers.
type Service struct {
	store  CandidateSource
	prefs  ledger.Preferences
	ranker *matching.Ranker
	logger logger.Logger
	obs    *observability.Observability
}

// Dependencies wires a Service. Observability may be nil.
type Dependencies struct {
	Store         CandidateSource
	Preferences   ledger.Preferences
	Ranker        *matching.Ranker
	Logger        logger.Logger
	Observability *observability.Observability
}

func NewService(deps Dependencies) *Service {
	return &Service{
		store:  deps.Store,
		prefs:  deps.Preferences,
		ranker: deps.Ranker,
		logger: deps.Logger.WithFields(map[string]interface{}{"component": "recommender"}),
		obs:    deps.Observability,
	}
}

// Recommend returns the ranked matches for a viewer. An empty slice is a
// legitimate result (viewer without tags, or nothing scored above zero), not
// an error. A failed ledger read is an error: the pipeline never substitutes
// "neutral" for "could not determine disposition".
func (s *Service) Recommend(ctx context.Context, viewerID string) ([]models.MatchResult, error) {
	start := time.Now()
	log := s.logger.WithFields(map[string]interface{}{
		"requestId": uuid.New().String(),
		"viewerId":  viewerID,
	})

	viewer, err := s.store.GetProfile(ctx, viewerID)
	if err != nil {
		s.recordOutcome(ctx, "error", start)
		log.WithError(err).Error("failed to load viewer profile", nil)
		return nil, err
	}

	candidates, err := s.store.GetCandidatePool(ctx, viewerID)
	if err != nil {
		s.recordOutcome(ctx, "error", start)
		log.WithError(err).Error("failed to load candidate pool", nil)
		return nil, err
	}

	prefs, err := s.prefs.Query(ctx, viewerID)
	if err != nil {
		s.recordOutcome(ctx, "error", start)
		log.WithError(err).Error("failed to query preference ledger", nil)
		return nil, err
	}

	results := s.ranker.Rank(*viewer, candidates, prefs)

	metrics.RankDuration.Observe(time.Since(start).Seconds())
	s.recordOutcome(ctx, "ok", start)

	log.Info("recommendations computed", map[string]interface{}{
		"poolSize":   len(candidates),
		"results":    len(results),
		"durationMs": time.Since(start).Milliseconds(),
	})
	return results, nil
}

// RecordDisposition validates and persists a viewer's like/dislike feedback.
func (s *Service) RecordDisposition(ctx context.Context, viewerID, targetID string, disposition models.Disposition) error {
	if !disposition.Valid() {
		return apperrors.NewInvalidDispositionError(string(disposition))
	}
	if viewerID == targetID {
		return apperrors.NewSelfDispositionError(viewerID)
	}

	if err := s.prefs.Save(ctx, viewerID, targetID, disposition); err != nil {
		s.logger.WithError(err).Error("failed to record disposition", map[string]interface{}{
			"viewerId": viewerID,
			"targetId": targetID,
		})
		return err
	}

	s.logger.Info("disposition recorded", map[string]interface{}{
		"viewerId":    viewerID,
		"targetId":    targetID,
		"disposition": disposition,
	})
	return nil
}

// GetDispositions exposes the viewer's recorded dispositions to callers.
func (s *Service) GetDispositions(ctx context.Context, viewerID string) (map[string]models.Disposition, error) {
	return s.prefs.Query(ctx, viewerID)
}

func (s *Service) recordOutcome(ctx context.Context, status string, start time.Time) {
	metrics.RecommendationsServed.WithLabelValues(status).Inc()
	if s.obs != nil {
		s.obs.RecordRecommendation(ctx, status)
		s.obs.RecordRankDuration(ctx, time.Since(start), status)
	}
}
