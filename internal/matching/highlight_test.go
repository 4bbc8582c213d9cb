package matching

import (
	"testing"

	"innovator-match/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestHighlight_RulePrecedence(t *testing.T) {
	viewer := models.Profile{
		ID:       "viewer-1",
		Name:     "Nora",
		Type:     models.TypeStartup,
		Tags:     []string{"AI", "Health"},
		Location: "Riyadh",
	}

	tests := []struct {
		name       string
		candidate  models.Profile
		sharedTags []string
		want       string
	}{
		{
			name: "rule 1: same type with shared tags",
			candidate: models.Profile{
				Name: "MedTech Co", Type: models.TypeStartup,
				Organization: "MedTech", Location: "Riyadh",
			},
			sharedTags: []string{"ai"},
			want:       "Both startups with shared interests in ai.",
		},
		{
			name: "rule 2: same type without shared tags",
			candidate: models.Profile{
				Name: "MedTech Co", Type: models.TypeStartup,
				Organization: "MedTech Labs",
			},
			sharedTags: nil,
			want:       "Fellow startup in MedTech Labs.",
		},
		{
			name: "rule 3: three shared tags, different type",
			candidate: models.Profile{
				Name: "Dr. Salem", Type: models.TypeResearch,
				Location: "Dubai",
			},
			sharedTags: []string{"ai", "health", "robotics"},
			want:       "Strong match with Dr. Salem across multiple areas: ai, health, and robotics.",
		},
		{
			name: "rule 4: same location with shared tags",
			candidate: models.Profile{
				Name: "Dr. Salem", Type: models.TypeResearch,
				Location: "riyadh",
			},
			sharedTags: []string{"ai", "health"},
			want:       "Based in riyadh with shared interests in ai and health.",
		},
		{
			name: "rule 5: same location without shared tags",
			candidate: models.Profile{
				Name: "Dr. Salem", Type: models.TypeResearch,
				Location: "Riyadh",
			},
			sharedTags: nil,
			want:       "Located in Riyadh with complementary expertise.",
		},
		{
			name: "rule 6: shared tags only",
			candidate: models.Profile{
				Name: "Dr. Salem", Type: models.TypeResearch,
				Location: "Dubai",
			},
			sharedTags: []string{"health"},
			want:       "Dr. Salem shares your passion for health.",
		},
		{
			name: "rule 7: default fallback",
			candidate: models.Profile{
				Name: "Dr. Salem", Type: models.TypeResearch,
				Organization: "KAUST", Location: "Dubai",
			},
			sharedTags: nil,
			want:       "Dr. Salem works in KAUST with complementary expertise.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(viewer, tt.candidate, tt.sharedTags)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHighlight_EarlierRuleWins(t *testing.T) {
	viewer := models.Profile{
		ID: "v", Type: models.TypeStartup,
		Tags: []string{"AI", "Health", "Robotics"}, Location: "Riyadh",
	}
	// Same type, same location and three shared tags: rules 1, 3, 4 and 6 all
	// match, but rule 1 is first.
	candidate := models.Profile{
		Name: "Rival", Type: models.TypeStartup, Location: "Riyadh",
	}
	shared := []string{"ai", "health", "robotics"}

	got := Highlight(viewer, candidate, shared)
	assert.Equal(t, "Both startups with shared interests in ai, health, and robotics.", got)
}

func TestHumanList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"ai"}, "ai"},
		{"pair", []string{"ai", "health"}, "ai and health"},
		{"triple", []string{"ai", "health", "fintech"}, "ai, health, and fintech"},
		{"four", []string{"a", "b", "c", "d"}, "a, b, c, and d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanList(tt.items))
		})
	}
}
