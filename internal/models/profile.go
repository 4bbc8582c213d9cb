// internal/models/profile.go
package models

// ProfileType identifies what kind of innovator a profile represents.
type ProfileType string

const (
	TypeStartup     ProfileType = "startup"
	TypeResearch    ProfileType = "research"
	TypeInvestor    ProfileType = "investor"
	TypeIndividual  ProfileType = "individual"
	TypeAccelerator ProfileType = "accelerator"
	TypeIncubator   ProfileType = "incubator"
	TypeCorporate   ProfileType = "corporate"
	TypeGovernment  ProfileType = "government"
)

// Profile is a read-only view of an innovator as stored by the platform.
// Name, Organization and Description are display-only and never scored.
type Profile struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Type         ProfileType `json:"type"`
	Tags         []string    `json:"tags"`
	Location     string      `json:"location,omitempty"`
	Organization string      `json:"organization,omitempty"`
	Description  string      `json:"description,omitempty"`
}

// MatchResult is one ranked candidate for a viewer. Results are computed on
// demand and never persisted.
type MatchResult struct {
	Profile    Profile  `json:"profile"`
	Score      int      `json:"score"`
	SharedTags []string `json:"sharedTags"`
	Highlight  string   `json:"highlight"`
}

// Disposition is a viewer's recorded feedback about one candidate.
type Disposition string

const (
	DispositionLike    Disposition = "like"
	DispositionDislike Disposition = "dislike"
)

// Valid reports whether d is one of the two accepted disposition values.
func (d Disposition) Valid() bool {
	return d == DispositionLike || d == DispositionDislike
}
