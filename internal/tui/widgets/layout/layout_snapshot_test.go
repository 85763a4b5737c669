package layout

import (
    "strings"
    "testing"

    "contextmd/internal/tui/state"
)

func TestWidthsPerView(t *testing.T) {
    l := NewLayout()
    e, p := l.Widths(state.UIState{View: state.SPLIT, Width: 81})
    if e != 40 || p != 41 {
        t.Fatalf("split: expected 40/41, got %d/%d", e, p)
    }
    e, p = l.Widths(state.UIState{View: state.EDITOR, Width: 81})
    if e != 81 || p != 0 {
        t.Fatalf("editor: expected 81/0, got %d/%d", e, p)
    }
    e, p = l.Widths(state.UIState{View: state.PREVIEW, Width: 81})
    if e != 0 || p != 81 {
        t.Fatalf("preview: expected 0/81, got %d/%d", e, p)
    }
}

func TestSplitSnapshot(t *testing.T) {
    out := NewLayout().View(state.UIState{View: state.SPLIT}, "LEFT", "RIGHT")
    if out != "LEFTRIGHT" {
        t.Fatalf("unexpected split join %q", out)
    }
}

func TestSinglePaneSnapshot(t *testing.T) {
    l := NewLayout()
    if out := l.View(state.UIState{View: state.EDITOR}, "LEFT", "RIGHT"); strings.Contains(out, "RIGHT") {
        t.Fatalf("editor view must not include the preview")
    }
    if out := l.View(state.UIState{View: state.PREVIEW}, "LEFT", "RIGHT"); strings.Contains(out, "LEFT") {
        t.Fatalf("preview view must not include the editor")
    }
}

func TestBodyHeight(t *testing.T) {
    l := NewLayout()
    if h := l.BodyHeight(state.UIState{Height: 30}); h != 28 {
        t.Fatalf("expected 28, got %d", h)
    }
    if h := l.BodyHeight(state.UIState{Height: 1}); h != 4 {
        t.Fatalf("expected floor of 4, got %d", h)
    }
}
