package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	bellBlue   = lipgloss.Color("#3B82F6")
	bellNavy   = lipgloss.Color("#0052CC")
	mutedGray  = lipgloss.Color("245")
	borderGray = lipgloss.Color("240")
)

// --- UI Styles ---
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(bellNavy).Padding(0, 1)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#93C5FD")).Italic(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	helpStyle     = lipgloss.NewStyle().Foreground(mutedGray).Italic(true)
	dividerStyle  = lipgloss.NewStyle().Foreground(borderGray)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250"))
	focusStyle    = lipgloss.NewStyle().Bold(true).Foreground(bellBlue)

	selectorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectorFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(bellNavy)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderGray).
			Padding(0, 1)
	cardNameStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	cardNumberStyle   = lipgloss.NewStyle().Bold(true).Foreground(bellBlue)
	cardCategoryStyle = lipgloss.NewStyle().Foreground(mutedGray)
	cardLabelStyle    = lipgloss.NewStyle().Foreground(mutedGray).Bold(true)
	naStyle           = lipgloss.NewStyle().Foreground(mutedGray)
	addOnNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60A5FA"))
	addOnPriceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#93C5FD"))

	badgeStyles = map[string]lipgloss.Style{
		"B1":                badge("#14532D", "#BBF7D0"),
		"B2 (with pick 10)": badge("#1E3A8A", "#BFDBFE"),
		"B3":                badge("#581C87", "#E9D5FF"),
	}
	addOnOnlyStyle = badge("#374151", "#E5E7EB")

	emptyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
)

func badge(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Background(lipgloss.Color(bg)).Foreground(lipgloss.Color(fg))
}

// renderFooter creates the footer: optional status line, then help lines.
func renderFooter(statusLine string, helpLines ...string) string {
	var b strings.Builder
	if statusLine != "" {
		b.WriteString(subtleStyle.Render(statusLine) + "\n")
	}
	for _, line := range helpLines {
		b.WriteString(helpStyle.Render(line) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
