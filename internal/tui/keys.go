package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"contextmd/internal/i18n"
)

type keyMap struct {
	EditorOnly  key.Binding
	SplitView   key.Binding
	PreviewOnly key.Binding
	Export      key.Binding
	Download    key.Binding
	Clear       key.Binding
	Settings    key.Binding
	Quit        key.Binding

	// modal keys
	Copy  key.Binding
	Close key.Binding
	Up    key.Binding
	Down  key.Binding
	Prev  key.Binding
	Next  key.Binding
}

// newKeyMap builds the bindings with help text in the UI language.
func newKeyMap(b i18n.Bundle) keyMap {
	t := b.Tooltips
	return keyMap{
		EditorOnly:  key.NewBinding(key.WithKeys("alt+1", "f1"), key.WithHelp("F1", t.EditorOnly)),
		SplitView:   key.NewBinding(key.WithKeys("alt+2", "f2"), key.WithHelp("F2", t.SplitView)),
		PreviewOnly: key.NewBinding(key.WithKeys("alt+3", "f3"), key.WithHelp("F3", t.PreviewOnly)),
		Export:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("^O", t.ExportJSON)),
		Download:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", t.Download)),
		Clear:       key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("^L", t.Clear)),
		Settings:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("^G", t.Settings)),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("^C", b.Keys.Quit)),

		Copy:  key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", b.Export.Copy)),
		Close: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", b.Export.Close)),
		Up:    key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑", b.Keys.Move)),
		Down:  key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓", b.Keys.Move)),
		Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", b.Keys.Change)),
		Next:  key.NewBinding(key.WithKeys("right", "l", "enter", " "), key.WithHelp("→", b.Keys.Change)),
	}
}

// toolbar lists the bindings shown in the toolbar, in button order.
func (k keyMap) toolbar() []key.Binding {
	return []key.Binding{k.EditorOnly, k.SplitView, k.PreviewOnly, k.Export, k.Download, k.Clear, k.Settings, k.Quit}
}
