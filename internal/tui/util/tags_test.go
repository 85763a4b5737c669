package util

import (
    "testing"

    "contextmd/internal/config"
    "contextmd/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
    for i, t := range tags {
        if t.Kind == k {
            return i, true
        }
    }
    return -1, false
}

func TestTagOrderAndCounters(t *testing.T) {
    tags := ComputeTags("# Hi 😀\nsecond line")
    if len(tags) != 3 {
        t.Fatalf("expected 3 tags, got %d", len(tags))
    }
    for want, k := range []state.TagKind{state.CHARS, state.LINES, state.WORDS} {
        if idx, ok := findKind(tags, k); !ok || idx != want {
            t.Fatalf("expected kind %d at %d, got %d (ok=%v)", k, want, idx, ok)
        }
    }
    // "# Hi " (5) + emoji (2 UTF-16 units) + "\n" (1) + "second line" (11)
    if tags[0].Value != 19 {
        t.Fatalf("chars: expected 19, got %d", tags[0].Value)
    }
    if tags[1].Value != 2 {
        t.Fatalf("lines: expected 2, got %d", tags[1].Value)
    }
    if tags[2].Value != 5 {
        t.Fatalf("words: expected 5, got %d", tags[2].Value)
    }
}

func TestEmptyDocumentTags(t *testing.T) {
    tags := ComputeTags("")
    if tags[0].Value != 0 || tags[1].Value != 1 || tags[2].Value != 0 {
        t.Fatalf("unexpected counters for empty text: %+v", tags)
    }
}

func TestPaletteFor(t *testing.T) {
    if PaletteFor(config.Light) != LightPalette() {
        t.Fatalf("expected light palette")
    }
    if PaletteFor(config.Dark) != DarkPalette() {
        t.Fatalf("expected dark palette")
    }
}

func TestNoColorEnv(t *testing.T) {
    t.Setenv("NO_COLOR", "1")
    if !NoColor(false) {
        t.Fatalf("expected NO_COLOR to disable color")
    }
}
