package services

import (
	"fmt"
	"sort"
	"strings"

	"localexplorer/internal/catalog"
	"localexplorer/internal/models/domain_models"
)

const (
	maxInterestScore  = 40
	pointsPerInterest = 10
	budgetFitScore    = 30
	durationFitScore  = 20
	groupFitScore     = 10

	// A traveler day is assumed to hold eight hours of experience time.
	experienceHoursPerDay = 8.0
)

type ScoringServiceInterface interface {
	ScoreExperiences(profile domain_models.TravelerProfile, cat *catalog.Catalog) []domain_models.ScoredExperience
}

// ScoringService computes the deterministic 0-100 match score for every
// catalog entry. Scoring is a pure function of (profile, entry); no entry's
// score depends on any other entry or on prior turns.
type ScoringService struct{}

func NewScoringService() ScoringServiceInterface {
	return &ScoringService{}
}

func (s *ScoringService) ScoreExperiences(profile domain_models.TravelerProfile, cat *catalog.Catalog) []domain_models.ScoredExperience {
	entries := cat.Entries()
	scored := make([]domain_models.ScoredExperience, 0, len(entries))
	for _, entry := range entries {
		score, rationale := scoreEntry(profile, entry)
		scored = append(scored, domain_models.ScoredExperience{
			Experience: entry,
			Score:      score,
			Rationale:  rationale,
		})
	}

	// Equal scores keep their catalog order; no secondary tie-break key.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// scoreEntry sums the four independent components, emitting one rationale
// line per component in the fixed order interest, budget, duration, group.
func scoreEntry(profile domain_models.TravelerProfile, entry catalog.Experience) (int, []string) {
	score := 0
	rationale := make([]string, 0, 4)

	budget := 0
	if profile.BudgetAED != nil {
		budget = *profile.BudgetAED
	}
	days := 0.0
	if profile.DurationDays != nil {
		days = *profile.DurationDays
	}
	availableHours := days * experienceHoursPerDay
	groupType := strings.ToLower(profile.GroupType)

	overlap := interestOverlap(profile.Interests, entry.Tags)
	interestScore := len(overlap) * pointsPerInterest
	if interestScore > maxInterestScore {
		interestScore = maxInterestScore
	}
	score += interestScore
	if len(overlap) > 0 {
		rationale = append(rationale, fmt.Sprintf("Interest match: %s +%d", strings.Join(overlap, ", "), interestScore))
	} else {
		rationale = append(rationale, "Interest match: none +0")
	}

	if entry.MinBudget <= budget && budget <= entry.MaxBudget {
		score += budgetFitScore
		rationale = append(rationale, fmt.Sprintf("Budget %d within [%d-%d] +%d", budget, entry.MinBudget, entry.MaxBudget, budgetFitScore))
	} else {
		rationale = append(rationale, fmt.Sprintf("Budget %d outside [%d-%d] +0", budget, entry.MinBudget, entry.MaxBudget))
	}

	if entry.DurationHours <= availableHours {
		score += durationFitScore
		rationale = append(rationale, fmt.Sprintf("Duration %gh fits in %gh +%d", entry.DurationHours, availableHours, durationFitScore))
	} else {
		rationale = append(rationale, fmt.Sprintf("Duration %gh too long for %gh +0", entry.DurationHours, availableHours))
	}

	if containsString(entry.SuitableFor, groupType) {
		score += groupFitScore
		rationale = append(rationale, fmt.Sprintf("Group '%s' is suitable +%d", groupType, groupFitScore))
	} else {
		rationale = append(rationale, fmt.Sprintf("Group '%s' not a match +0", groupType))
	}

	return score, rationale
}

func interestOverlap(interests, tags []string) []string {
	tagSet := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tagSet[tag] = true
	}

	var overlap []string
	for _, interest := range catalog.NormalizeSet(interests) {
		if tagSet[interest] {
			overlap = append(overlap, interest)
		}
	}
	sort.Strings(overlap)
	return overlap
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
