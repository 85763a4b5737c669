package footer

import (
    "strings"

    "github.com/charmbracelet/lipgloss"

    "contextmd/internal/i18n"
    "contextmd/internal/tui/state"
    "contextmd/internal/tui/util"
)

type Footer struct{}

func NewFooter() Footer { return Footer{} }

// View composes the footer: statistic chips on the left, the current
// notice, the preview URL and the local-mode marker on the right.
func (Footer) View(s state.UIState, chips string, b i18n.Bundle, previewURL string, pal util.Palette, noColor bool) string {
    right := []string{}
    if s.Notice != "" {
        right = append(right, s.Notice)
    }
    if previewURL != "" {
        right = append(right, previewURL)
    }
    right = append(right, "● "+b.Notices.LocalMode)
    r := strings.Join(right, "  ")
    if !noColor {
        r = lipgloss.NewStyle().Foreground(pal.Muted).Render(r)
    }

    gap := s.Width - lipgloss.Width(chips) - lipgloss.Width(r)
    if gap < 2 {
        gap = 2
    }
    line := chips + strings.Repeat(" ", gap) + r
    if s.Width > 0 {
        line = lipgloss.NewStyle().MaxWidth(s.Width).Render(line)
    }
    return line
}
