package types

// CriticalKeywords is the small keyword set used to steer and audit generated
// text. It is a deterministic projection of a RequirementsRecord; it is never
// injected into output as fact.
type CriticalKeywords struct {
	MustMention  []string `json:"must_mention"`
	Industry     []string `json:"industry"`
	Technologies []string `json:"technologies"`
	Skills       []string `json:"skills"`
}

// RankedEntry pairs an experience entry with its relevance evidence against
// one requirements record. Scores are recomputed per request, never persisted.
type RankedEntry struct {
	Entry               *ExperienceEntry `json:"-"`
	Score               float64          `json:"score"`
	MatchedTechnologies []string         `json:"matched_technologies,omitempty"`
	MatchedTags         []string         `json:"matched_tags,omitempty"`
}
