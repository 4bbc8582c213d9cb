// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_recommendations_served_total",
			Help: "Total number of recommendation requests served",
		},
		[]string{"status"},
	)

	CandidatesScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_candidates_scored_total",
			Help: "Total number of candidates run through the similarity scorer",
		},
	)

	CandidatesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_candidates_skipped_total",
			Help: "Total number of candidates excluded from ranking",
		},
		[]string{"reason"},
	)

	RankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "match_rank_duration_seconds",
			Help: "Duration of a full ranking pass in seconds",
		},
	)

	DispositionWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_disposition_writes_total",
			Help: "Total number of disposition upserts by value",
		},
		[]string{"disposition"},
	)

	LedgerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_ledger_errors_total",
			Help: "Total number of preference ledger failures by operation",
		},
		[]string{"operation"},
	)
)

// Skip reasons used with CandidatesSkipped.
const (
	SkipSelf       = "self"
	SkipMalformed  = "malformed"
	SkipDisliked   = "disliked"
	SkipNoMatch    = "no_match"
	SkipUnreadable = "unreadable"
)
