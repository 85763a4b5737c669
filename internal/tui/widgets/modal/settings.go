package modal

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "contextmd/internal/config"
    "contextmd/internal/i18n"
    "contextmd/internal/tui/state"
    "contextmd/internal/tui/util"
)

// SettingsView lists the theme and language choices with the focused row
// highlighted.
func SettingsView(s state.UIState, theme config.ThemeMode, lang config.Language, b i18n.Bundle, pal util.Palette, noColor bool) string {
    st := b.Settings
    rows := []struct {
        row   state.SettingsRow
        name  string
        value string
    }{
        {state.ThemeRow, st.Theme, st.Modes.Mode(string(theme))},
        {state.LanguageRow, st.Language, i18n.LanguageName(string(lang))},
    }
    nameW := 0
    for _, r := range rows {
        if n := lipgloss.Width(r.name); n > nameW {
            nameW = n
        }
    }

    sel := lipgloss.NewStyle().Bold(true)
    hint := lipgloss.NewStyle()
    if !noColor {
        sel = sel.Foreground(pal.Primary)
        hint = hint.Foreground(pal.Muted)
    }

    var sb strings.Builder
    for _, r := range rows {
        name := r.name + strings.Repeat(" ", nameW-lipgloss.Width(r.name))
        line := fmt.Sprintf("  %s   ‹ %s ›", name, r.value)
        if r.row == s.Row {
            line = sel.Render(fmt.Sprintf("> %s   ‹ %s ›", name, r.value))
        }
        sb.WriteString(line + "\n")
    }
    sb.WriteString("\n" + hint.Render(fmt.Sprintf("↑/↓ %s   ←/→ %s   esc %s", b.Keys.Move, b.Keys.Change, b.Export.Close)))
    return Box(st.Title, sb.String(), s.Width, pal, noColor)
}
