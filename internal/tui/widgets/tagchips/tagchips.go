package tagchips

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"

    "contextmd/internal/i18n"
    "contextmd/internal/tui/state"
    "contextmd/internal/tui/util"
)

// View renders the statistic chips in a stable order using colored chips,
// or bracketed ASCII when noColor is set.
func View(tags []state.Tag, labels i18n.Stats, pal util.Palette, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, labels, pal, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, labels i18n.Stats, pal util.Palette, noColor bool) string {
    label := chipLabel(t, labels)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t, pal).Render(label)
}

func chipLabel(t state.Tag, labels i18n.Stats) string {
    switch t.Kind {
    case state.CHARS:
        return fmt.Sprintf("%d %s", t.Value, labels.Chars)
    case state.LINES:
        return fmt.Sprintf("%d %s", t.Value, labels.Lines)
    case state.WORDS:
        return fmt.Sprintf("%d %s", t.Value, labels.Words)
    default:
        return fmt.Sprintf("%d", t.Value)
    }
}

func chipStyle(t state.Tag, pal util.Palette) lipgloss.Style {
    base := lipgloss.NewStyle().Padding(0, 1).Foreground(pal.ChipFg)
    switch t.Kind {
    case state.CHARS:
        return base.Background(pal.Primary)
    case state.LINES:
        return base.Background(pal.Success)
    default:
        return base.Background(pal.Muted)
    }
}
