package toolbar

import (
    "github.com/charmbracelet/bubbles/help"
    "github.com/charmbracelet/bubbles/key"
    "github.com/charmbracelet/lipgloss"

    "contextmd/internal/i18n"
    "contextmd/internal/tui/state"
    "contextmd/internal/tui/util"
)

type Toolbar struct{}

func NewToolbar() Toolbar { return Toolbar{} }

// ModeLabel is the localized tooltip of a view mode.
func ModeLabel(v state.ViewMode, t i18n.Tooltips) string {
    switch v {
    case state.EDITOR:
        return t.EditorOnly
    case state.PREVIEW:
        return t.PreviewOnly
    default:
        return t.SplitView
    }
}

// View renders the title, the active view mode and the key hints, truncated
// to width.
func (Toolbar) View(s state.UIState, b i18n.Bundle, h help.Model, bindings []key.Binding, pal util.Palette, noColor bool) string {
    title := lipgloss.NewStyle().Bold(true)
    mode := lipgloss.NewStyle()
    if !noColor {
        title = title.Foreground(pal.Primary)
        mode = mode.Foreground(pal.Muted)
    }
    left := title.Render(b.Title) + " " + mode.Render("["+ModeLabel(s.View, b.Tooltips)+"]") + "  "
    h.Width = s.Width - lipgloss.Width(left)
    if h.Width < 0 {
        h.Width = 0
    }
    line := left + h.ShortHelpView(bindings)
    if s.Width > 0 {
        line = lipgloss.NewStyle().MaxWidth(s.Width).Render(line)
    }
    return line
}
