package domain_models

import (
	"localexplorer/internal/catalog"
)

// Required profile fields, in the order clarification prompts must list them.
var RequiredProfileFields = []string{"interests", "budget_aed", "duration_days", "group_type"}

var ValidGroupTypes = []string{"solo", "couple", "family", "friends", "group"}

// TravelerProfile holds the structured preferences extracted from the
// conversation. Pointer and slice fields stay nil until collected.
type TravelerProfile struct {
	Interests                []string `json:"interests,omitempty"`
	BudgetAED                *int     `json:"budget_aed,omitempty"`
	DurationDays             *float64 `json:"duration_days,omitempty"`
	GroupType                string   `json:"group_type,omitempty"`
	ExperienceTypePreference []string `json:"experience_type_preference,omitempty"`
	// Accepted from the tool schema, currently not consulted by scoring.
	StrictBudgetMatch *bool `json:"strict_budget_match,omitempty"`
}

func IsValidGroupType(groupType string) bool {
	for _, g := range ValidGroupTypes {
		if g == groupType {
			return true
		}
	}
	return false
}

// Merge copies fields present on incoming onto p, leaving already-collected
// fields intact unless the new turn restates them. Negative numeric values
// are treated as absent.
func (p *TravelerProfile) Merge(incoming TravelerProfile) {
	if len(incoming.Interests) > 0 {
		p.Interests = catalog.NormalizeSet(incoming.Interests)
	}
	if incoming.BudgetAED != nil && *incoming.BudgetAED >= 0 {
		budget := *incoming.BudgetAED
		p.BudgetAED = &budget
	}
	if incoming.DurationDays != nil && *incoming.DurationDays >= 0 {
		days := *incoming.DurationDays
		p.DurationDays = &days
	}
	if incoming.GroupType != "" && IsValidGroupType(incoming.GroupType) {
		p.GroupType = incoming.GroupType
	}
	if len(incoming.ExperienceTypePreference) > 0 {
		p.ExperienceTypePreference = catalog.NormalizeSet(incoming.ExperienceTypePreference)
	}
	if incoming.StrictBudgetMatch != nil {
		strict := *incoming.StrictBudgetMatch
		p.StrictBudgetMatch = &strict
	}
}

// MissingFields lists the required fields not yet collected, always in the
// fixed order interests, budget_aed, duration_days, group_type.
func (p *TravelerProfile) MissingFields() []string {
	var missing []string
	if len(p.Interests) == 0 {
		missing = append(missing, "interests")
	}
	if p.BudgetAED == nil {
		missing = append(missing, "budget_aed")
	}
	if p.DurationDays == nil {
		missing = append(missing, "duration_days")
	}
	if p.GroupType == "" {
		missing = append(missing, "group_type")
	}
	return missing
}

func (p *TravelerProfile) Complete() bool {
	return len(p.MissingFields()) == 0
}

// MarkAllMissing clears the four required fields so a profile update restarts
// collection from scratch.
func (p *TravelerProfile) MarkAllMissing() {
	p.Interests = nil
	p.BudgetAED = nil
	p.DurationDays = nil
	p.GroupType = ""
}
