package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"bell-lookup/internal/channel"
)

const (
	appTitle    = "Bell TV Channel Lookup"
	appSubtitle = "Lookup any Bell TV channel by name or number, filter by bundle or category."
	footerLine  = "© Last updated Feb 2026."

	cardGap = 1
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	if m.state.Loading() {
		b.WriteString(m.spinner.View() + " " + subtleStyle.Render("Loading channels..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

// chrome renders everything but the result area; used for sizing.
func (m Model) chrome() string {
	return strings.Join([]string{
		m.renderHeader(),
		m.renderControls(),
		m.renderStatus(),
		"",
		m.renderFooter(),
	}, "\n")
}

func (m Model) renderHeader() string {
	div := dividerStyle.Render(strings.Repeat("─", max(m.width, 20)))
	return titleStyle.Render(appTitle) + "\n" + subtitleStyle.Render(appSubtitle) + "\n" + div
}

func (m Model) renderControls() string {
	label := func(f focusField, text string) string {
		if m.focus == f {
			return focusStyle.Render("▸ " + strings.ToUpper(text))
		}
		return labelStyle.Render("  " + strings.ToUpper(text))
	}
	selector := func(f focusField, text string) string {
		s := "‹ " + text + " ›"
		if m.focus == f {
			return selectorFocusStyle.Render(s)
		}
		return selectorStyle.Render(s)
	}

	rows := []string{
		label(focusSearch, "Search Channel") + "  " + m.search.View(),
		label(focusBundle, "Filter by Bundle") + "  " + selector(focusBundle, m.state.Bundle().Label()),
		label(focusCategory, "Category") + "  " + selector(focusCategory, categoryLabel(m.state.Category())),
	}
	return strings.Join(rows, "\n")
}

func categoryLabel(c string) string {
	if c == channel.All || c == "" {
		return "All Categories"
	}
	return c
}

func (m Model) renderStatus() string {
	if m.state.Loading() {
		return subtleStyle.Render(m.state.Summary())
	}
	return okStyle.Render("✓ ") + m.state.Summary()
}

func (m Model) renderFooter() string {
	help := "tab: next field • ←/→: change selection • esc: clear search • ctrl+r: reload • q/ctrl+c: quit"
	if m.focus == focusSearch {
		help = "tab: next field • ↑/↓ pgup/pgdn: scroll • esc: clear search • ctrl+r: reload • ctrl+c: quit"
	}
	return renderFooter(footerLine, help)
}

// renderResults lays out the matching cards, or the empty-result block.
func (m Model) renderResults() string {
	if m.state.Loading() {
		return ""
	}
	matches := m.state.Matches()
	if len(matches) == 0 {
		return m.renderNoResults()
	}

	cols := columnsFor(m.width)
	colWidth := (max(m.width, 30) - (cols-1)*cardGap) / cols

	var rows []string
	for start := 0; start < len(matches); start += cols {
		end := min(start+cols, len(matches))
		cells := make([]string, 0, cols*2)
		for i, c := range matches[start:end] {
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, renderCard(channel.BuildCard(c), colWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderNoResults() string {
	var b strings.Builder
	b.WriteString(emptyTitleStyle.Render("No channels found") + "\n")
	b.WriteString(subtleStyle.Render("Try adjusting your filters or search query."))
	if names := suggestions(m.state.Query(), m.state.Channels()); len(names) > 0 {
		b.WriteString("\n\n" + labelStyle.Render("Did you mean: ") + strings.Join(names, ", "))
	}
	return b.String()
}

// columnsFor maps terminal width to 1, 2 or 3 card columns.
func columnsFor(width int) int {
	switch {
	case width >= 120:
		return 3
	case width >= 80:
		return 2
	default:
		return 1
	}
}

// renderCard draws one card whose total width, borders included, is width.
func renderCard(card channel.Card, width int) string {
	inner := max(width-4, 10) // border + horizontal padding

	number := cardNumberStyle.Render(card.Number)
	nameMax := inner - lipgloss.Width(number) - 1
	name := cardNameStyle.Render(truncate.StringWithTail(card.Name, uint(max(nameMax, 1)), "…"))
	gap := max(inner-lipgloss.Width(name)-lipgloss.Width(number), 1)

	lines := []string{
		name + strings.Repeat(" ", gap) + number,
		cardCategoryStyle.Render(truncate.StringWithTail(card.Category, uint(inner), "…")),
		"",
		cardLabelStyle.Render("AVAILABLE IN"),
		renderBadges(card),
		"",
		spread("A la Carte 10", renderAlaCarte(card.AlaCarte), inner),
	}
	if card.AddOn != nil {
		lines = append(lines, spread("Add-on Pkg", addOnNameStyle.Render(card.AddOn.Name), inner))
		if card.AddOn.Price != "" {
			lines = append(lines, spread("", addOnPriceStyle.Render(card.AddOn.Price), inner))
		}
	}
	return cardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderBadges(card channel.Card) string {
	if card.AddOnOnly {
		return addOnOnlyStyle.Render("Add-on Only")
	}
	if len(card.Badges) == 0 {
		return naStyle.Render("-")
	}
	parts := make([]string, len(card.Badges))
	for i, b := range card.Badges {
		parts[i] = badgeStyles[b].Render(b)
	}
	return strings.Join(parts, " ")
}

func renderAlaCarte(row channel.AlaCarteRow) string {
	if row.Available {
		return okStyle.Render("✓ " + row.Price)
	}
	return naStyle.Render("✗ " + row.Price)
}

// spread puts label on the left and value on the right of a width-wide line.
func spread(label, value string, width int) string {
	l := cardCategoryStyle.Render(label)
	gap := max(width-lipgloss.Width(l)-lipgloss.Width(value), 1)
	return fmt.Sprint(l, strings.Repeat(" ", gap), value)
}
