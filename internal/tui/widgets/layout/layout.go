package layout

import (
    "github.com/charmbracelet/lipgloss"

    "contextmd/internal/tui/state"
)

// ChromeRows is the height taken by the toolbar and the footer.
const ChromeRows = 2

const fallbackWidth = 80

type Layout struct{}

func NewLayout() Layout { return Layout{} }

// Widths returns the outer widths of the editor and preview panes. A
// hidden pane gets zero.
func (Layout) Widths(s state.UIState) (editor, preview int) {
    w := s.Width
    if w <= 0 {
        w = fallbackWidth
    }
    switch s.View {
    case state.EDITOR:
        return w, 0
    case state.PREVIEW:
        return 0, w
    }
    editor = w / 2
    return editor, w - editor
}

// BodyHeight is the pane height left after the toolbar and footer.
func (Layout) BodyHeight(s state.UIState) int {
    h := s.Height - ChromeRows
    if h < 4 {
        h = 4
    }
    return h
}

// View places the visible panes side by side in view-mode order.
func (Layout) View(s state.UIState, editor, preview string) string {
    switch s.View {
    case state.EDITOR:
        return editor
    case state.PREVIEW:
        return preview
    }
    return lipgloss.JoinHorizontal(lipgloss.Top, editor, preview)
}
