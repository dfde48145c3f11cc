package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"bell-lookup/internal/directory"
)

type focusField int

const (
	focusSearch focusField = iota
	focusBundle
	focusCategory
	focusCount
)

const defaultLoadTimeout = 30 * time.Second

// Model is the channel lookup screen. All filter state lives in state; the
// widgets only mirror it.
type Model struct {
	state   directory.State
	src     directory.Source
	timeout time.Duration

	focus         focusField
	search        textinput.Model
	spinner       spinner.Model
	viewport      viewport.Model
	width, height int
}

// New returns the initial model; Init starts the first load from src.
func New(src directory.Source) Model {
	si := textinput.New()
	si.Placeholder = "e.g. TSN, CNN, 1500..."
	si.Prompt = "⌕ "
	si.CharLimit = 100
	si.Width = 40
	si.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = subtleStyle

	m := Model{
		state:    directory.New(),
		src:      src,
		timeout:  defaultLoadTimeout,
		focus:    focusSearch,
		search:   si,
		spinner:  sp,
		viewport: viewport.New(80, 20), // resized on the first WindowSizeMsg
		width:    80,
	}
	m.refreshResults()
	return m
}

// WithTimeout bounds every fetch started by the model.
func (m Model) WithTimeout(d time.Duration) Model {
	if d > 0 {
		m.timeout = d
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.loadCmd())
}

// State exposes the current view state snapshot.
func (m Model) State() directory.State { return m.state }
