package util

import (
    "contextmd/internal/document"
    "contextmd/internal/tui/state"
)

// ComputeTags derives the footer chips from the document text. It runs on
// every frame; the counters are never cached.
//
// The returned slice preserves a stable order: chars, lines, words.
func ComputeTags(text string) []state.Tag {
    st := document.Measure(text)
    return []state.Tag{
        {Kind: state.CHARS, Value: st.Chars},
        {Kind: state.LINES, Value: st.Lines},
        {Kind: state.WORDS, Value: st.Words},
    }
}
