package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"contextmd/internal/config"
)

// markdownRenderer renders the preview pane. The glamour renderer is
// rebuilt only when the pane width or the effective theme changes.
type markdownRenderer struct {
	r       *glamour.TermRenderer
	width   int
	style   string
	noColor bool
}

func newMarkdownRenderer(noColor bool) *markdownRenderer {
	return &markdownRenderer{noColor: noColor}
}

func styleFor(theme config.ThemeMode, noColor bool) string {
	switch {
	case noColor:
		return "notty"
	case theme == config.Light:
		return "light"
	default:
		return "dark"
	}
}

// Render returns text formatted for the terminal. Rendering errors fall
// back to the raw text.
func (m *markdownRenderer) Render(text string, width int, theme config.ThemeMode) string {
	if width < 10 {
		width = 10
	}
	style := styleFor(theme, m.noColor)
	if m.r == nil || width != m.width || style != m.style {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		m.r, m.width, m.style = r, width, style
	}
	out, err := m.r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
