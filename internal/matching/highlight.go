// internal/matching/highlight.go
package matching

import (
	"fmt"
	"strings"

	"innovator-match/internal/models"
)

// highlightContext carries everything a highlight rule may inspect.
type highlightContext struct {
	viewer     models.Profile
	candidate  models.Profile
	sharedTags []string
}

func (c highlightContext) sameType() bool {
	return c.viewer.Type == c.candidate.Type
}

func (c highlightContext) sameLocation() bool {
	return sameLocation(c.viewer.Location, c.candidate.Location)
}

func (c highlightContext) hasShared() bool {
	return len(c.sharedTags) > 0
}

// highlightRule pairs a predicate with the sentence it renders.
type highlightRule struct {
	matches func(highlightContext) bool
	render  func(highlightContext) string
}

// highlightRules is evaluated top to bottom; the first matching rule wins and
// later rules never apply. Keep the order aligned with product copy.
var highlightRules = []highlightRule{
	{
		matches: func(c highlightContext) bool { return c.sameType() && c.hasShared() },
		render: func(c highlightContext) string {
			return fmt.Sprintf("Both %ss with shared interests in %s.", c.candidate.Type, humanList(c.sharedTags))
		},
	},
	{
		matches: func(c highlightContext) bool { return c.sameType() },
		render: func(c highlightContext) string {
			return fmt.Sprintf("Fellow %s in %s.", c.candidate.Type, c.candidate.Organization)
		},
	},
	{
		matches: func(c highlightContext) bool { return len(c.sharedTags) >= 3 },
		render: func(c highlightContext) string {
			return fmt.Sprintf("Strong match with %s across multiple areas: %s.", c.candidate.Name, humanList(c.sharedTags))
		},
	},
	{
		matches: func(c highlightContext) bool { return c.sameLocation() && c.hasShared() },
		render: func(c highlightContext) string {
			return fmt.Sprintf("Based in %s with shared interests in %s.", c.candidate.Location, humanList(c.sharedTags))
		},
	},
	{
		matches: func(c highlightContext) bool { return c.sameLocation() },
		render: func(c highlightContext) string {
			return fmt.Sprintf("Located in %s with complementary expertise.", c.candidate.Location)
		},
	},
	{
		matches: func(c highlightContext) bool { return c.hasShared() },
		render: func(c highlightContext) string {
			return fmt.Sprintf("%s shares your passion for %s.", c.candidate.Name, humanList(c.sharedTags))
		},
	},
	{
		matches: func(highlightContext) bool { return true },
		render: func(c highlightContext) string {
			return fmt.Sprintf("%s works in %s with complementary expertise.", c.candidate.Name, c.candidate.Organization)
		},
	},
}

// Highlight derives the one-sentence explanation shown next to a match.
// Deterministic: same inputs always produce the same sentence.
func Highlight(viewer, candidate models.Profile, sharedTags []string) string {
	ctx := highlightContext{viewer: viewer, candidate: candidate, sharedTags: sharedTags}
	for _, rule := range highlightRules {
		if rule.matches(ctx) {
			return rule.render(ctx)
		}
	}
	return "" // unreachable, the last rule always matches
}

// humanList renders a natural-language comma list: "A", "A and B",
// "A, B, and C". Empty input renders as the empty string.
func humanList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
