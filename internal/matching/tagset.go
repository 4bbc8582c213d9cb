// internal/matching/tagset.go
package matching

import "strings"

// TagSet is a case-insensitive, duplicate-free view over a profile's tags.
// Lookup keys are lower-cased; the original casing of the first occurrence is
// kept so tags can be reported the way the owner wrote them, in the order the
// owner listed them.
type TagSet struct {
	original map[string]string // lower-cased tag -> original casing
	ordered  []string          // lower-cased tags in first-seen order
}

// NewTagSet normalizes a raw tag collection. Normalization is idempotent:
// building a set from an already-normalized set yields an equal set.
func NewTagSet(tags []string) TagSet {
	s := TagSet{original: make(map[string]string, len(tags))}
	for _, tag := range tags {
		key := strings.ToLower(strings.TrimSpace(tag))
		if key == "" {
			continue
		}
		if _, seen := s.original[key]; seen {
			continue
		}
		s.original[key] = strings.TrimSpace(tag)
		s.ordered = append(s.ordered, key)
	}
	return s
}

// Len returns the number of distinct tags.
func (s TagSet) Len() int {
	return len(s.ordered)
}

// Contains reports case-insensitive membership.
func (s TagSet) Contains(tag string) bool {
	_, ok := s.original[strings.ToLower(tag)]
	return ok
}

// Normalized returns the lower-cased tags in first-seen order.
func (s TagSet) Normalized() []string {
	out := make([]string, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// SharedWith returns the tags present in both sets, rendered with this set's
// original casing and in this set's order. Called on the candidate's set so
// shared tags carry the candidate's spelling.
func (s TagSet) SharedWith(other TagSet) []string {
	shared := make([]string, 0, len(s.ordered))
	for _, key := range s.ordered {
		if other.Contains(key) {
			shared = append(shared, s.original[key])
		}
	}
	return shared
}
