package tagchips

import (
    "strings"
    "testing"

    "contextmd/internal/i18n"
    "contextmd/internal/tui/state"
    "contextmd/internal/tui/util"
)

func TestNoColorUsesBrackets(t *testing.T) {
    tags := []state.Tag{{Kind: state.CHARS, Value: 3}, {Kind: state.LINES, Value: 1}, {Kind: state.WORDS, Value: 1}}
    out := View(tags, i18n.For("en").Stats, util.DarkPalette(), true)
    if out != "[3 chars] [1 lines] [1 words]" {
        t.Fatalf("unexpected chips %q", out)
    }
}

func TestColorDecisionBelongsToCaller(t *testing.T) {
    t.Setenv("NO_COLOR", "1")
    tags := []state.Tag{{Kind: state.CHARS, Value: 3}}
    out := View(tags, i18n.For("en").Stats, util.DarkPalette(), false)
    if strings.Contains(out, "[") {
        t.Fatalf("chips must follow the noColor argument, got %q", out)
    }
    if !strings.Contains(out, "3 chars") {
        t.Fatalf("missing label in %q", out)
    }
}

func TestEmpty(t *testing.T) {
    if out := View(nil, i18n.For("en").Stats, util.DarkPalette(), true); out != "" {
        t.Fatalf("expected no chips, got %q", out)
    }
}
