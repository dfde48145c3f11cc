package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"bell-lookup/internal/channel"
	"bell-lookup/internal/directory"
)

// ---------- Messages / Cmds ----------
type channelsLoadedMsg struct {
	list []channel.Channel
	err  error
}

func (m Model) loadCmd() tea.Cmd {
	src, timeout := m.src, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		list, err := directory.Load(ctx, src)
		return channelsLoadedMsg{list: list, err: err}
	}
}
