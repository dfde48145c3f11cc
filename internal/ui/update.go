package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bell-lookup/internal/channel"
	"bell-lookup/internal/directory"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.refreshResults()
		return m, nil

	case channelsLoadedMsg:
		m.state = directory.Apply(m.state, msg.list, msg.err)
		m.refreshResults()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case "ctrl+r":
		if m.state.Loading() {
			return m, nil
		}
		m.state = m.state.Reloading()
		return m, tea.Batch(m.spinner.Tick, m.loadCmd())
	case "esc":
		if m.search.Value() == "" {
			return m, nil
		}
		m.search.SetValue("")
		m.state = m.state.WithQuery("")
		m.refreshResults()
		return m, nil
	case "pgdown", "pgup", "ctrl+d", "ctrl+u", "up", "down":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if q := m.search.Value(); q != m.state.Query() {
			m.state = m.state.WithQuery(q)
			m.refreshResults()
		}
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.cycle(-1)
	case "right", "l", "enter", " ":
		m.cycle(1)
	case "k", "j":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setFocus(f focusField) {
	m.focus = f
	if f == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}

// cycle steps the focused selector by d, wrapping at both ends.
func (m *Model) cycle(d int) {
	switch m.focus {
	case focusBundle:
		m.state = m.state.WithBundle(channel.Bundles[step(channel.Bundles, m.state.Bundle(), d)])
	case focusCategory:
		cats := m.state.Categories()
		m.state = m.state.WithCategory(cats[step(cats, m.state.Category(), d)])
	default:
		return
	}
	m.refreshResults()
}

// step moves d places from v in list, wrapping at both ends. A value that
// is no longer listed restarts at the first entry, which is always All.
func step[T comparable](list []T, v T, d int) int {
	i := slices.Index(list, v)
	if i < 0 {
		return 0
	}
	return wrap(i+d, len(list))
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (m *Model) resize() {
	m.viewport.Width = m.width
	h := m.height - lipgloss.Height(m.chrome())
	if h < 3 {
		h = 3
	}
	m.viewport.Height = h
}

// refreshResults re-renders the result area from the current state.
func (m *Model) refreshResults() {
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
}
