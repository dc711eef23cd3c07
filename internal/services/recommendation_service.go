package services

import (
	"fmt"
	"strings"

	"localexplorer/internal/models/domain_models"
)

const (
	// DefaultTopN is how many ranked experiences are shown per confirmation.
	DefaultTopN = 3

	// ValidationThreshold drops single-component matches (a lone group-fit
	// ten points) from the confirmed list as noise.
	ValidationThreshold = 10

	NoMatchesMessage = "Sorry, I couldn't find any experiences that matched your preferences. Could you share more details?"
)

type RecommendationServiceInterface interface {
	SelectTopN(ranked []domain_models.ScoredExperience, topN int) (string, []domain_models.RecommendedExperience)
	Validate(items []domain_models.RecommendedExperience) []domain_models.RecommendedExperience
}

// RecommendationService truncates the ranked list to the best N entries and
// renders both the conversational message and the machine-readable list.
type RecommendationService struct{}

func NewRecommendationService() RecommendationServiceInterface {
	return &RecommendationService{}
}

func (r *RecommendationService) SelectTopN(ranked []domain_models.ScoredExperience, topN int) (string, []domain_models.RecommendedExperience) {
	if len(ranked) == 0 {
		return NoMatchesMessage, []domain_models.RecommendedExperience{}
	}

	if topN > len(ranked) {
		topN = len(ranked)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Here are the top %d experiences I recommend:", topN))

	items := make([]domain_models.RecommendedExperience, 0, topN)
	for i, rec := range ranked[:topN] {
		b.WriteString(fmt.Sprintf("\n\n%d. **%s**", i+1, rec.Experience.Name))
		b.WriteString(fmt.Sprintf("\n   • Description: %s", rec.Experience.Description))
		b.WriteString(fmt.Sprintf("\n   • Score: %d points", rec.Score))
		b.WriteString(fmt.Sprintf("\n   • Why I picked it: %s", strings.Join(rec.Rationale, "; ")))

		items = append(items, domain_models.RecommendedExperience{
			Name:        rec.Experience.Name,
			Description: rec.Experience.Description,
			Score:       rec.Score,
			Rationale:   rec.Rationale,
		})
	}

	b.WriteString("\n\nWould you like to book one of these, or explore more options?")
	return b.String(), items
}

// Validate keeps only items scoring above the threshold, preserving order.
func (r *RecommendationService) Validate(items []domain_models.RecommendedExperience) []domain_models.RecommendedExperience {
	confirmed := make([]domain_models.RecommendedExperience, 0, len(items))
	for _, item := range items {
		if item.Score > ValidationThreshold {
			confirmed = append(confirmed, item)
		}
	}
	return confirmed
}
