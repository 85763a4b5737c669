package state

import "contextmd/internal/document"

// SetView selects a view mode. Exactly one mode is active at any time.
func SetView(s UIState, v ViewMode) UIState {
    switch v {
    case EDITOR, PREVIEW, SPLIT:
        s.View = v
    }
    return s
}

// OpenExport opens the export modal and snapshots the escaped form of text.
// It is refused while another modal is open.
func OpenExport(s UIState, text string) UIState {
    if s.Modal != NoModal {
        return s
    }
    s.Modal = ExportModal
    s.Escaped = document.EscapeLine(text)
    s.Copied = false
    return s
}

// OpenSettings opens the settings modal on its first row. It is refused
// while another modal is open.
func OpenSettings(s UIState) UIState {
    if s.Modal != NoModal {
        return s
    }
    s.Modal = SettingsModal
    s.Row = ThemeRow
    return s
}

// CloseModal closes whichever modal is open.
func CloseModal(s UIState) UIState {
    s.Modal = NoModal
    s.Copied = false
    return s
}

// MarkCopied shows the copy confirmation and starts a new revert sequence.
func MarkCopied(s UIState) UIState {
    s.Copied = true
    s.CopySeq++
    return s
}

// ResetCopied reverts the confirmation unless a newer copy superseded seq.
func ResetCopied(s UIState, seq int) UIState {
    if seq == s.CopySeq {
        s.Copied = false
    }
    return s
}

// MoveRow moves the settings focus, clamped to the available rows.
func MoveRow(s UIState, delta int) UIState {
    r := int(s.Row) + delta
    if r < int(ThemeRow) {
        r = int(ThemeRow)
    }
    if r > int(LanguageRow) {
        r = int(LanguageRow)
    }
    s.Row = SettingsRow(r)
    return s
}

// Resize records the terminal size and shows the narrow notice when split
// view is too narrow to show two usable panes.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for borders.
func Resize(s UIState, width, height int, narrow string) UIState {
    s.Width = width
    s.Height = height
    if s.View == SPLIT && s.MinCol > 0 && width < 2*s.MinCol+3 {
        s.Notice = narrow
        s.NoticeSeq++
    }
    return s
}

// SetNotice shows a transient message and returns the sequence to clear it with.
func SetNotice(s UIState, msg string) (UIState, int) {
    s.Notice = msg
    s.NoticeSeq++
    return s, s.NoticeSeq
}

// ClearNotice clears the notice unless a newer one replaced it.
func ClearNotice(s UIState, seq int) UIState {
    if seq == s.NoticeSeq {
        s.Notice = ""
    }
    return s
}
