package state

// TagKind enumerates the footer chips.
type TagKind int

const (
    // Stable ordering for display: chars, lines, words
    CHARS TagKind = iota
    LINES
    WORDS
)

// Tag represents a single status chip with its counter.
type Tag struct {
    Kind  TagKind
    Value int
}
