package response_models

import "localexplorer/internal/models/domain_models"

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
}

// RecommendationListResponse carries the machine-readable top-N list plus
// both renderings produced from it.
type RecommendationListResponse struct {
	Recommendations []domain_models.RecommendedExperience `json:"recommendations"`
	Text            string                                `json:"text"`
	HTML            string                                `json:"html"`
}
