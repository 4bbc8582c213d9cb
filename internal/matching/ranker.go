// internal/matching/ranker.go
package matching

import (
	"sort"

	"innovator-match/internal/common/logger"
	"innovator-match/internal/common/metrics"
	"innovator-match/internal/models"
)

// DefaultMaxResults caps how many matches a single ranking pass returns.
const DefaultMaxResults = 10

// Ranker runs the scoring pipeline over a candidate pool.
type Ranker struct {
	maxResults int
	logger     logger.Logger
}

// NewRanker creates a Ranker. A non-positive maxResults falls back to
// DefaultMaxResults.
func NewRanker(maxResults int, log logger.Logger) *Ranker {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Ranker{
		maxResults: maxResults,
		logger:     log.WithFields(map[string]interface{}{"component": "ranker"}),
	}
}

// Rank scores every eligible candidate against the viewer, filters out
// non-matches and disliked candidates, orders liked candidates ahead of
// neutral ones (descending score within each group, input order on ties) and
// truncates to the configured maximum.
//
// A viewer with no usable tags gets an empty result. The wider platform has a
// competing path that synthesizes default tags to avoid this; the engine
// keeps the strict policy so rankings stay a pure function of stored data.
func (r *Ranker) Rank(viewer models.Profile, candidates []models.Profile, prefs map[string]models.Disposition) []models.MatchResult {
	if NewTagSet(viewer.Tags).Len() == 0 {
		r.logger.Debug("viewer has no tags, returning empty result", map[string]interface{}{
			"viewerId": viewer.ID,
		})
		return []models.MatchResult{}
	}

	var liked, neutral []models.MatchResult

	for _, candidate := range candidates {
		if candidate.ID == viewer.ID {
			metrics.CandidatesSkipped.WithLabelValues(metrics.SkipSelf).Inc()
			continue
		}
		if candidate.Type == "" {
			r.logger.Warn("skipping malformed candidate", map[string]interface{}{
				"candidateId": candidate.ID,
				"reason":      "missing type",
			})
			metrics.CandidatesSkipped.WithLabelValues(metrics.SkipMalformed).Inc()
			continue
		}

		score, shared := Score(viewer, candidate)
		metrics.CandidatesScored.Inc()

		if score < 0 || score > 100 {
			// Internal logic error. Clamp and keep going rather than crash.
			r.logger.Error("score outside valid range", map[string]interface{}{
				"candidateId": candidate.ID,
				"score":       score,
			})
			score = clampScore(score)
		}
		if score <= 0 {
			metrics.CandidatesSkipped.WithLabelValues(metrics.SkipNoMatch).Inc()
			continue
		}

		if prefs[candidate.ID] == models.DispositionDislike {
			metrics.CandidatesSkipped.WithLabelValues(metrics.SkipDisliked).Inc()
			continue
		}

		result := models.MatchResult{
			Profile:    candidate,
			Score:      score,
			SharedTags: shared,
			Highlight:  Highlight(viewer, candidate, shared),
		}
		if prefs[candidate.ID] == models.DispositionLike {
			liked = append(liked, result)
		} else {
			neutral = append(neutral, result)
		}
	}

	sortByScore(liked)
	sortByScore(neutral)

	ranked := make([]models.MatchResult, 0, len(liked)+len(neutral))
	ranked = append(ranked, liked...)
	ranked = append(ranked, neutral...)
	if len(ranked) > r.maxResults {
		ranked = ranked[:r.maxResults]
	}
	return ranked
}

// sortByScore orders results by descending score. The sort is stable so ties
// keep the candidate pool's original order.
func sortByScore(results []models.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
