package pane

import (
    "github.com/charmbracelet/lipgloss"

    "contextmd/internal/tui/util"
)

// chrome is the rows and columns a pane spends on its border and label.
const (
    chromeW = 2
    chromeH = 3
)

type Pane struct{}

func NewPane() Pane { return Pane{} }

// Inner returns the content size available inside a pane of the given
// outer size.
func Inner(width, height int) (w, h int) {
    w, h = width-chromeW, height-chromeH
    if w < 1 {
        w = 1
    }
    if h < 1 {
        h = 1
    }
    return w, h
}

// View frames body under a label. width and height are the outer size.
func (Pane) View(label, body string, width, height int, focused bool, pal util.Palette, noColor bool) string {
    w, h := Inner(width, height)
    header := lipgloss.NewStyle().Bold(true)
    box := lipgloss.NewStyle().
        Border(lipgloss.RoundedBorder()).
        Width(w).
        Height(h + 1).
        MaxHeight(height)
    if !noColor {
        header = header.Foreground(pal.Muted)
        border := pal.Border
        if focused {
            border = pal.Primary
            header = header.Foreground(pal.Primary)
        }
        box = box.BorderForeground(border)
    }
    body = lipgloss.NewStyle().MaxWidth(w).MaxHeight(h).Render(body)
    return box.Render(header.Render(label) + "\n" + body)
}
