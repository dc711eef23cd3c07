package utils

import (
	"fmt"
	"html"
	"strings"

	"localexplorer/internal/models/domain_models"
)

// Fixed marker set cycled by index modulo 6 in both renderings.
var recommendationMarkers = []string{"🏜️", "🏖️", "🎢", "🕌", "🛍️", "🌆"}

// FormatRecommendations renders the machine-readable top-N list as a plain
// text bullet list.
func FormatRecommendations(items []domain_models.RecommendedExperience) string {
	if len(items) == 0 {
		return "Sorry, no suitable attractions found."
	}

	var b strings.Builder
	b.WriteString("**Top Dubai Attractions for You:**\n")
	for i, item := range items {
		marker := recommendationMarkers[i%len(recommendationMarkers)]
		b.WriteString(fmt.Sprintf("\n%s **%s**\n*%s*\n", marker, item.Name, item.Description))
	}
	return b.String()
}

// FormatRecommendationsHTML renders the same list as an HTML fragment of
// attraction cards.
func FormatRecommendationsHTML(items []domain_models.RecommendedExperience) string {
	if len(items) == 0 {
		return "<p>Sorry, no suitable attractions found.</p>"
	}

	var b strings.Builder
	b.WriteString("<h3>Top Dubai Attractions for You:</h3>")
	for i, item := range items {
		marker := recommendationMarkers[i%len(recommendationMarkers)]
		b.WriteString(fmt.Sprintf(`
<div class="attraction-card">
    <h4>%s %s</h4>
    <p>%s</p>
</div>`, marker, html.EscapeString(item.Name), html.EscapeString(item.Description)))
	}
	return b.String()
}
