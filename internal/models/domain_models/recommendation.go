package domain_models

import "localexplorer/internal/catalog"

// ScoredExperience pairs a catalog entry with its deterministic 0-100 match
// score and the four-line rationale, one line per scoring component in the
// order interest, budget, duration, group.
type ScoredExperience struct {
	Experience catalog.Experience `json:"experience"`
	Score      int                `json:"score"`
	Rationale  []string           `json:"rationale"`
}

// RecommendedExperience is the machine-readable form of one top-N item.
type RecommendedExperience struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Score       int      `json:"score"`
	Rationale   []string `json:"rationale"`
}
