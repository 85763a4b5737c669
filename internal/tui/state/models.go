package state

// ViewMode selects which panes are visible.
type ViewMode int

const (
    SPLIT ViewMode = iota // default
    EDITOR
    PREVIEW
)

func (v ViewMode) String() string {
    switch v {
    case EDITOR:
        return "EDITOR"
    case PREVIEW:
        return "PREVIEW"
    default:
        return "SPLIT"
    }
}

func (v ViewMode) ShowsEditor() bool  { return v != PREVIEW }
func (v ViewMode) ShowsPreview() bool { return v != EDITOR }

// Modal is the overlay currently open. A single field keeps the two
// modals mutually exclusive.
type Modal int

const (
    NoModal Modal = iota
    ExportModal
    SettingsModal
)

// SettingsRow is the focused row of the settings modal.
type SettingsRow int

const (
    ThemeRow SettingsRow = iota
    LanguageRow
)

// UIState holds cross-widget UI state used by the toolbar, panes, footer
// and modals.
type UIState struct {
    View  ViewMode
    Modal Modal

    // Export modal: the escaped snapshot taken when it opened, and the
    // transient confirmation. CopySeq tags each confirmation so only the
    // matching revert clears it.
    Escaped string
    Copied  bool
    CopySeq int

    // Settings modal
    Row SettingsRow

    // Layout
    Width  int
    Height int
    MinCol int

    // Notices and ephemeral messages
    Notice    string
    NoticeSeq int
}
