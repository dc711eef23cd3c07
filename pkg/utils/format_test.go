package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localexplorer/internal/models/domain_models"
)

func listOf(names ...string) []domain_models.RecommendedExperience {
	items := make([]domain_models.RecommendedExperience, 0, len(names))
	for _, name := range names {
		items = append(items, domain_models.RecommendedExperience{
			Name:        name,
			Description: name + " description",
		})
	}
	return items
}

func TestFormatRecommendationsEmpty(t *testing.T) {
	assert.Equal(t, "Sorry, no suitable attractions found.", FormatRecommendations(nil))
	assert.Equal(t, "<p>Sorry, no suitable attractions found.</p>", FormatRecommendationsHTML(nil))
}

func TestFormatRecommendationsPlainText(t *testing.T) {
	out := FormatRecommendations(listOf("Desert Safari", "Kite Beach Day"))

	assert.True(t, strings.HasPrefix(out, "**Top Dubai Attractions for You:**"))
	assert.Contains(t, out, "🏜️ **Desert Safari**")
	assert.Contains(t, out, "🏖️ **Kite Beach Day**")
	assert.Contains(t, out, "*Desert Safari description*")
}

func TestFormatRecommendationsMarkerCycleWrapsAtSix(t *testing.T) {
	items := listOf("A", "B", "C", "D", "E", "F", "G")
	out := FormatRecommendations(items)

	// The seventh entry reuses the first marker.
	assert.Contains(t, out, "🏜️ **A**")
	assert.Contains(t, out, "🌆 **F**")
	assert.Contains(t, out, "🏜️ **G**")
}

func TestFormatRecommendationsHTMLCards(t *testing.T) {
	out := FormatRecommendationsHTML(listOf("Desert Safari"))

	assert.True(t, strings.HasPrefix(out, "<h3>Top Dubai Attractions for You:</h3>"))
	assert.Contains(t, out, `<div class="attraction-card">`)
	assert.Contains(t, out, "🏜️ Desert Safari</h4>")
}

func TestFormatRecommendationsHTMLEscapesContent(t *testing.T) {
	items := []domain_models.RecommendedExperience{{
		Name:        `Souk <Deira> & Co`,
		Description: `"Gold" tour`,
	}}

	out := FormatRecommendationsHTML(items)

	require.NotContains(t, out, "<Deira>")
	assert.Contains(t, out, "Souk &lt;Deira&gt; &amp; Co")
	assert.Contains(t, out, "&#34;Gold&#34; tour")
}
