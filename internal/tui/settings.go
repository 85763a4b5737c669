package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"contextmd/internal/config"
	"contextmd/internal/tui/state"
)

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.ui = state.CloseModal(m.ui)
	case key.Matches(msg, m.keys.Up):
		m.ui = state.MoveRow(m.ui, -1)
	case key.Matches(msg, m.keys.Down):
		m.ui = state.MoveRow(m.ui, 1)
	case key.Matches(msg, m.keys.Prev):
		m = m.cycleSetting(-1)
	case key.Matches(msg, m.keys.Next):
		m = m.cycleSetting(1)
	}
	return m, nil
}

// cycleSetting moves the focused preference to its next or previous value.
// Every change is persisted and pushed to the preview.
func (m Model) cycleSetting(delta int) Model {
	switch m.ui.Row {
	case state.ThemeRow:
		m.prefs.SetTheme(cycle(config.ThemeModes, m.prefs.Theme, delta))
	case state.LanguageRow:
		m.prefs.SetLanguage(cycle(config.SupportedLanguages, m.prefs.Lang, delta))
		m.keys = newKeyMap(m.bundle())
	}
	m.changed()
	return m
}

func cycle[T comparable](list []T, cur T, delta int) T {
	i := 0
	for j, v := range list {
		if v == cur {
			i = j
			break
		}
	}
	n := len(list)
	return list[((i+delta)%n+n)%n]
}
