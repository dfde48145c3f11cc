package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bell-lookup/internal/channel"
)

func TestViewShowsHeaderControlsAndFooter(t *testing.T) {
	v := createTestModel().View()
	for _, want := range []string{
		appTitle,
		appSubtitle,
		"SEARCH CHANNEL",
		"FILTER BY BUNDLE",
		"All Bundles",
		"CATEGORY",
		"Showing 3 channels",
		footerLine,
	} {
		assert.Contains(t, v, want)
	}
}

func TestResultsRenderCards(t *testing.T) {
	m := createTestModel()
	m.width = 140
	out := m.renderResults()
	for _, want := range []string{"TSN", "502", "Sports", "B1", "B3", "✓ $5", "Add-on Only", "News Pack", "$4.99/mo", "✗ N/A"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "No channels found")
}

func TestColumnsFor(t *testing.T) {
	tests := map[int]int{0: 1, 60: 1, 79: 1, 80: 2, 119: 2, 120: 3, 200: 3}
	for width, want := range tests {
		assert.Equal(t, want, columnsFor(width), "width %d", width)
	}
}

func TestRenderCardWidth(t *testing.T) {
	card := channel.BuildCard(channel.Channel{Name: strings.Repeat("Very Long Channel Name ", 5), Number: "1234", Bundles: "Bundle 2"})
	out := renderCard(card, 40)
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 40, "line %q", line)
	}
	assert.Contains(t, out, "…")
	assert.Contains(t, out, "B2 (with pick 10)")
}

func TestCardWithoutAddOnHasNoAddOnRow(t *testing.T) {
	out := renderCard(channel.BuildCard(channel.Channel{Name: "TSN", Bundles: "Bundle 1"}), 40)
	assert.NotContains(t, out, "Add-on Pkg")
	assert.NotContains(t, out, "Add-on Only")
}

func TestNoResultsSuggestions(t *testing.T) {
	m := press(createTestModel(), "t", "n")
	require.True(t, m.State().NoResults())

	out := m.renderResults()
	assert.Contains(t, out, "No channels found")
	assert.Contains(t, out, "Try adjusting your filters or search query.")
	assert.Contains(t, out, "Did you mean")
	assert.Contains(t, out, "TSN")
	assert.Empty(t, m.State().Matches(), "suggestions must not change the filter result")
}

func TestNoResultsWithoutQueryHasNoSuggestions(t *testing.T) {
	m := press(createTestModel(), "tab", "tab", "right", "shift+tab", "right")
	// News + Bundle 1 matches nothing.
	require.True(t, m.State().NoResults())
	assert.NotContains(t, m.renderResults(), "Did you mean")
}
