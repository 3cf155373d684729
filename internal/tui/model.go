package tui

import (
	"tserr/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Summary model.Summary

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// View Modes
	ShowFiles bool // false = error-code ranking, true = file ranking

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of tallies to show
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state with every entry visible.
func InitialModel(s model.Summary) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.CharLimit = 50
	ti.Width = 20

	m := AppModel{
		Summary:     s,
		InputBuffer: ti,
		SelectedIdx: 0,
	}
	m.resetFilter()
	return m
}

// tallies returns the ranked list the left panel is currently showing.
func (m *AppModel) tallies() []model.Tally {
	if m.ShowFiles {
		return m.Summary.Files
	}
	return m.Summary.Codes
}

func (m *AppModel) resetFilter() {
	ts := m.tallies()
	m.FilteredIndices = make([]int, len(ts))
	for i := range ts {
		m.FilteredIndices[i] = i
	}
}
