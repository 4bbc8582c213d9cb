// internal/matching/scorer.go
package matching

import (
	"math"
	"strings"

	"innovator-match/internal/models"
)

// Component weights of the compatibility formula. Fixed so every score stays
// auditable by hand.
const (
	tagWeight      = 0.5
	typeWeight     = 0.3
	locationWeight = 0.2

	sameTypeScore      = 1.0
	differentTypeScore = 0.5

	sameLocationScore    = 1.0
	noLocationMatchScore = 0.3
)

// Score computes the 0-100 compatibility score for a (viewer, candidate)
// pair along with the shared tags. Shared tags carry the candidate's original
// casing in the candidate's original order. Pure and deterministic.
func Score(viewer, candidate models.Profile) (int, []string) {
	viewerTags := NewTagSet(viewer.Tags)
	candidateTags := NewTagSet(candidate.Tags)

	shared := candidateTags.SharedWith(viewerTags)

	tagSimilarity := 0.0
	if n := max(viewerTags.Len(), candidateTags.Len()); n > 0 {
		tagSimilarity = float64(len(shared)) / float64(n)
	}

	typeScore := differentTypeScore
	if viewer.Type == candidate.Type {
		typeScore = sameTypeScore
	}

	locationScore := noLocationMatchScore
	if sameLocation(viewer.Location, candidate.Location) {
		locationScore = sameLocationScore
	}

	score := int(math.Round(100 * (tagSimilarity*tagWeight + typeScore*typeWeight + locationScore*locationWeight)))
	return clampScore(score), shared
}

// sameLocation requires both locations to be present; comparison is
// case-insensitive, exact-match only.
func sameLocation(a, b string) bool {
	return a != "" && b != "" && strings.EqualFold(a, b)
}

// clampScore guards against rounding artifacts. The formula keeps scores in
// [0, 100] by construction.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
