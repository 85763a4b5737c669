package modal

import (
    "github.com/charmbracelet/lipgloss"
    xansi "github.com/charmbracelet/x/ansi"

    "contextmd/internal/i18n"
    "contextmd/internal/tui/state"
    "contextmd/internal/tui/util"
)

// exportFieldRows is the visible height of the escaped-line field.
const exportFieldRows = 8

// ExportFieldSize is the content size of the export field on a screen of
// width sw. The caller scrolls a viewport of this size over WrapField.
func ExportFieldSize(sw int) (w, h int) {
    w = boxWidth(sw) - 4
    if w < 1 {
        w = 1
    }
    return w, exportFieldRows
}

// WrapField breaks the escaped line into rows of width cells. Joining the
// rows gives back the line unchanged.
func WrapField(text string, width int) string {
    return xansi.Hardwrap(text, width, true)
}

// ExportView shows the escaped snapshot taken when the modal opened and
// the copy/close actions. field is the visible part of the snapshot and
// scroll, when not empty, its scroll position.
func ExportView(s state.UIState, field, scroll string, b i18n.Bundle, pal util.Palette, noColor bool) string {
    e := b.Export
    muted := lipgloss.NewStyle()
    label := lipgloss.NewStyle().Bold(true)
    box := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
    copyBtn := lipgloss.NewStyle().Padding(0, 1)
    closeBtn := lipgloss.NewStyle().Padding(0, 1)
    if !noColor {
        muted = muted.Foreground(pal.Muted)
        box = box.BorderForeground(pal.Border)
        copyBtn = copyBtn.Background(pal.Primary).Foreground(pal.ChipFg)
        closeBtn = closeBtn.Foreground(pal.Text)
        if s.Copied {
            copyBtn = copyBtn.Background(pal.Success)
        }
    }

    copyLabel := "[c] " + e.Copy
    if s.Copied {
        copyLabel = "✓ " + e.Copied
    }
    heading := label.Render(e.Label)
    if scroll != "" {
        heading += " " + muted.Render("↕ "+scroll)
    }
    body := muted.Render(e.Desc) + "\n\n" +
        heading + "\n" +
        box.Render(field) + "\n\n" +
        lipgloss.JoinHorizontal(lipgloss.Top, copyBtn.Render(copyLabel), "  ", closeBtn.Render("[esc] "+e.Close))
    return Box(e.Title, body, s.Width, pal, noColor)
}

// boxWidth is the inner text width of a Box on a screen of width sw.
func boxWidth(sw int) int { return outerWidth(sw) - 4 }
