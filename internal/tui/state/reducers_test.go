package state

import "testing"

func TestDefaultViewIsSplit(t *testing.T) {
    var s UIState
    if s.View != SPLIT { t.Fatalf("expected SPLIT by default") }
    if !s.View.ShowsEditor() || !s.View.ShowsPreview() { t.Fatalf("expected both panes in SPLIT") }
}

func TestSetViewPaneVisibility(t *testing.T) {
    s := SetView(UIState{}, EDITOR)
    if s.View.ShowsPreview() { t.Fatalf("EDITOR must hide the preview pane") }
    if !s.View.ShowsEditor() { t.Fatalf("EDITOR must show the editor pane") }

    s = SetView(s, PREVIEW)
    if s.View.ShowsEditor() { t.Fatalf("PREVIEW must hide the editor pane") }
    if !s.View.ShowsPreview() { t.Fatalf("PREVIEW must show the preview pane") }

    s = SetView(s, SPLIT)
    if !s.View.ShowsEditor() || !s.View.ShowsPreview() { t.Fatalf("SPLIT must show both panes") }
}

func TestSetViewIgnoresUnknownMode(t *testing.T) {
    s := SetView(UIState{}, PREVIEW)
    s = SetView(s, ViewMode(42))
    if s.View != PREVIEW { t.Fatalf("expected unknown mode to be ignored, got %v", s.View) }
}

func TestViewSequenceLeavesOneActiveMode(t *testing.T) {
    s := UIState{}
    for _, v := range []ViewMode{EDITOR, EDITOR, PREVIEW, SPLIT, PREVIEW, EDITOR} {
        s = SetView(s, v)
        if s.View != v { t.Fatalf("expected %v, got %v", v, s.View) }
        shown := 0
        if s.View.ShowsEditor() { shown++ }
        if s.View.ShowsPreview() { shown++ }
        if shown == 0 { t.Fatalf("no pane visible in %v", s.View) }
    }
}

func TestOpenExportSnapshotsEscapedText(t *testing.T) {
    s := OpenExport(UIState{}, "a\nb")
    if s.Modal != ExportModal { t.Fatalf("expected export modal open") }
    if s.Escaped != `a\nb` { t.Fatalf("unexpected snapshot %q", s.Escaped) }

    first := s.Escaped
    s = OpenExport(CloseModal(s), "a\nb")
    if s.Escaped != first { t.Fatalf("reopening unchanged text must yield the same snapshot") }

    s = OpenExport(CloseModal(s), "a\nc")
    if s.Escaped != `a\nc` { t.Fatalf("reopening after an edit must reflect the new text, got %q", s.Escaped) }
}

func TestOpenExportResetsCopied(t *testing.T) {
    s := MarkCopied(OpenExport(UIState{}, "x"))
    s = OpenExport(CloseModal(s), "x")
    if s.Copied { t.Fatalf("expected copied flag reset on open") }
}

func TestModalsAreMutuallyExclusive(t *testing.T) {
    s := OpenSettings(UIState{})
    s = OpenExport(s, "x")
    if s.Modal != SettingsModal { t.Fatalf("export must not open over settings") }
    if s.Escaped != "" { t.Fatalf("refused open must not take a snapshot") }

    s = OpenExport(CloseModal(s), "x")
    s = OpenSettings(s)
    if s.Modal != ExportModal { t.Fatalf("settings must not open over export") }

    s = CloseModal(s)
    if s.Modal != NoModal { t.Fatalf("expected no modal after close") }
}

func TestCopiedRevertHonorsSequence(t *testing.T) {
    s := MarkCopied(UIState{})
    first := s.CopySeq
    s = MarkCopied(s)
    s = ResetCopied(s, first)
    if !s.Copied { t.Fatalf("stale revert must not clear a newer confirmation") }
    s = ResetCopied(s, s.CopySeq)
    if s.Copied { t.Fatalf("expected confirmation cleared") }
}

func TestMoveRowClamps(t *testing.T) {
    s := MoveRow(UIState{}, -1)
    if s.Row != ThemeRow { t.Fatalf("expected clamp at first row") }
    s = MoveRow(s, 5)
    if s.Row != LanguageRow { t.Fatalf("expected clamp at last row") }
}

func TestResizeNarrowNotice(t *testing.T) {
    s := UIState{MinCol: 20}
    s = Resize(s, 30, 10, "too narrow") // threshold = 2*20+3 = 43; 30 < 43 => notice
    if s.Width != 30 || s.Height != 10 { t.Fatalf("expected size recorded") }
    if s.Notice != "too narrow" { t.Fatalf("expected the given narrow notice, got %q", s.Notice) }
    if s.View != SPLIT { t.Fatalf("resize must not change the selected view") }

    wide := Resize(UIState{MinCol: 20}, 43, 10, "too narrow")
    if wide.Notice != "" { t.Fatalf("no notice expected at the threshold, got %q", wide.Notice) }
    editor := Resize(UIState{MinCol: 20, View: EDITOR}, 30, 10, "too narrow")
    if editor.Notice != "" { t.Fatalf("single-pane views are never too narrow") }
}

func TestNoticeSequence(t *testing.T) {
    s, first := SetNotice(UIState{}, "one")
    s, second := SetNotice(s, "two")
    s = ClearNotice(s, first)
    if s.Notice != "two" { t.Fatalf("stale clear must keep the newer notice") }
    s = ClearNotice(s, second)
    if s.Notice != "" { t.Fatalf("expected notice cleared") }
}
