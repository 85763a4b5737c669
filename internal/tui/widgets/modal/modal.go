package modal

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    xansi "github.com/charmbracelet/x/ansi"

    "contextmd/internal/tui/util"
)

// Box frames title and body as a modal sized from the screen width.
func Box(title, body string, screenWidth int, pal util.Palette, noColor bool) string {
    w := outerWidth(screenWidth)
    header := lipgloss.NewStyle().Bold(true)
    box := lipgloss.NewStyle().
        Width(w).
        Padding(1, 2).
        Border(lipgloss.RoundedBorder())
    if !noColor {
        header = header.Foreground(pal.Primary)
        box = box.BorderForeground(pal.Primary).Background(pal.Surface)
    }
    return box.Render(header.Render(title) + "\n\n" + body)
}

func outerWidth(sw int) int {
    w := sw - 12
    if w > 72 {
        w = 72
    }
    if w < 24 {
        w = 24
    }
    return w
}

// Bounds returns where Overlay places fg on a w×h screen.
func Bounds(fg string, w, h int) (x, y, fw, fh int) {
    fw, fh = lipgloss.Width(fg), lipgloss.Height(fg)
    if fw > w {
        fw = w
    }
    if fh > h {
        fh = h
    }
    x, y = (w-fw)/2, (h-fh)/2
    if x < 0 {
        x = 0
    }
    if y < 0 {
        y = 0
    }
    return x, y, fw, fh
}

// Inside reports whether the cell (cx, cy) lies on the modal. Clicks that
// miss it land on the backdrop.
func Inside(fg string, w, h, cx, cy int) bool {
    x, y, fw, fh := Bounds(fg, w, h)
    return cx >= x && cx < x+fw && cy >= y && cy < y+fh
}

// Overlay draws fg centered over bg, leaving the rest of bg visible.
func Overlay(bg, fg string, w, h int) string {
    bgLines := splitLinesN(bg, h)
    fgLines := strings.Split(fg, "\n")
    x, y, fgW, fgH := Bounds(fg, w, h)
    if fgW <= 0 || fgH <= 0 {
        return strings.Join(bgLines, "\n")
    }
    for i := 0; i < fgH && y+i < len(bgLines); i++ {
        bgLine := bgLines[y+i]
        left := xansi.Cut(bgLine, 0, x)
        if n := xansi.StringWidth(left); n < x {
            left += strings.Repeat(" ", x-n)
        }
        right := xansi.Cut(bgLine, x+fgW, w)

        fgLine := fgLines[i]
        if n := xansi.StringWidth(fgLine); n < fgW {
            fgLine += strings.Repeat(" ", fgW-n)
        } else if n > fgW {
            fgLine = xansi.Cut(fgLine, 0, fgW)
        }
        bgLines[y+i] = left + fgLine + right
    }
    return strings.Join(bgLines, "\n")
}

func splitLinesN(s string, n int) []string {
    lines := strings.Split(s, "\n")
    if len(lines) >= n {
        return lines[:n]
    }
    out := make([]string, 0, n)
    out = append(out, lines...)
    for len(out) < n {
        out = append(out, "")
    }
    return out
}
