package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"contextmd/internal/config"
	"contextmd/internal/document"
	"contextmd/internal/i18n"
	"contextmd/internal/preview"
	"contextmd/internal/tui/state"
	"contextmd/internal/tui/util"
	"contextmd/internal/tui/widgets/footer"
	"contextmd/internal/tui/widgets/layout"
	"contextmd/internal/tui/widgets/modal"
	"contextmd/internal/tui/widgets/pane"
	"contextmd/internal/tui/widgets/tagchips"
	"contextmd/internal/tui/widgets/toolbar"
)

// minColumn is the narrowest pane split view is comfortable with.
const minColumn = 20

// Publisher receives every new revision of the document and preferences.
// The browser preview server implements it.
type Publisher interface {
	Publish(preview.Snapshot)
}

// Options configures the editor.
type Options struct {
	Doc       *document.Document
	Prefs     *config.Preferences
	Clipboard Clipboard // nil: system clipboard
	Fs        afero.Fs  // nil: OS filesystem
	OutDir    string    // where downloads go; "" means the working directory
	Publisher Publisher // optional

	// PreviewURL is shown in the footer when the browser preview runs.
	PreviewURL string

	Log     *zap.Logger
	NoColor bool
}

// Run starts the editor and blocks until the user quits.
func Run(o Options) error {
	p := tea.NewProgram(New(o), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// ===== Model =====

type Model struct {
	doc   *document.Document
	prefs *config.Preferences
	ui    state.UIState

	editor     textarea.Model
	preview    viewport.Model
	exportView viewport.Model
	md         *markdownRenderer

	keys    keyMap
	help    help.Model
	layout  layout.Layout
	pane    pane.Pane
	toolbar toolbar.Toolbar
	footer  footer.Footer

	clip       Clipboard
	fs         afero.Fs
	outDir     string
	pub        Publisher
	rev        uint64
	previewURL string

	log     *zap.Logger
	noColor bool
}

// New builds the editor model around o.Doc. Missing options get defaults.
func New(o Options) Model {
	if o.Doc == nil {
		o.Doc = document.New(document.Sample)
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	if o.Prefs == nil {
		o.Prefs = config.Load(config.OpenStore(afero.NewMemMapFs(), "settings.yaml", o.Log), config.SystemEnv{}, o.Log)
	}
	if o.Clipboard == nil {
		o.Clipboard = systemClipboard{}
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.OutDir == "" {
		o.OutDir = "."
	}

	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = true
	ta.Prompt = ""
	ta.SetValue(document.NormalizeNewlines(o.Doc.Text()))
	ta.Focus()
	// the textarea expands tabs; the document starts from what the editor shows
	if v := ta.Value(); v != o.Doc.Text() {
		o.Log.Debug("document normalized for editing", zap.Int("before", len(o.Doc.Text())), zap.Int("after", len(v)))
		o.Doc.Set(v)
	}

	vp := viewport.New(0, 0)

	m := Model{
		doc:        o.Doc,
		prefs:      o.Prefs,
		ui:         state.UIState{View: state.SPLIT, MinCol: minColumn},
		editor:     ta,
		preview:    vp,
		exportView: viewport.New(0, 0),
		md:         newMarkdownRenderer(o.NoColor),
		help:       help.New(),
		layout:     layout.NewLayout(),
		pane:       pane.NewPane(),
		toolbar:    toolbar.NewToolbar(),
		footer:     footer.NewFooter(),
		clip:       o.Clipboard,
		fs:         o.Fs,
		outDir:     o.OutDir,
		pub:        o.Publisher,
		previewURL: o.PreviewURL,
		log:        o.Log,
		noColor:    o.NoColor,
	}
	m.keys = newKeyMap(m.bundle())
	m.resize()
	m.changed()
	return m
}

func (m Model) Init() tea.Cmd { return textarea.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		seq := m.ui.NoticeSeq
		m.ui = state.Resize(m.ui, msg.Width, msg.Height, m.bundle().Notices.Narrow)
		m.resize()
		m.refreshPreview()
		m.fitExport()
		if m.ui.NoticeSeq != seq {
			return m, clearNoticeAfter(m.ui.NoticeSeq)
		}
		return m, nil

	case copyResultMsg:
		return m.handleCopyResult(msg)

	case resetCopiedMsg:
		m.ui = state.ResetCopied(m.ui, msg.seq)
		return m, nil

	case clearNoticeMsg:
		m.ui = state.ClearNotice(m.ui, msg.seq)
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	switch m.ui.Modal {
	case state.ExportModal:
		return m.updateExport(msg)
	case state.SettingsModal:
		return m.updateSettings(msg)
	}

	switch {
	case key.Matches(msg, m.keys.EditorOnly):
		return m.setView(state.EDITOR), nil
	case key.Matches(msg, m.keys.SplitView):
		return m.setView(state.SPLIT), nil
	case key.Matches(msg, m.keys.PreviewOnly):
		return m.setView(state.PREVIEW), nil
	case key.Matches(msg, m.keys.Export):
		m.ui = state.OpenExport(m.ui, m.doc.Text())
		m.fitExport()
		m.exportView.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Settings):
		m.ui = state.OpenSettings(m.ui)
		return m, nil
	case key.Matches(msg, m.keys.Download):
		return m.download()
	case key.Matches(msg, m.keys.Clear):
		m.doc.Clear()
		m.editor.Reset()
		m.changed()
		return m.notify(m.bundle().Notices.Cleared)
	}

	var cmd tea.Cmd
	if m.ui.View.ShowsEditor() {
		before := m.editor.Value()
		m.editor, cmd = m.editor.Update(msg)
		if after := m.editor.Value(); after != before {
			m.doc.Set(after)
			m.changed()
		}
		return m, cmd
	}
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

// updateMouse scrolls the preview or the export field with the wheel and
// closes an open modal when a click lands on the backdrop.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ui.Modal != state.NoModal {
		inside := modal.Inside(m.modalView(), m.width(), m.height(), msg.X, msg.Y)
		switch {
		case !inside && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.ui = state.CloseModal(m.ui)
		case inside && m.ui.Modal == state.ExportModal && tea.MouseEvent(msg).IsWheel():
			var cmd tea.Cmd
			m.exportView, cmd = m.exportView.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	editorW, _ := m.layout.Widths(m.ui)
	if !m.ui.View.ShowsPreview() || msg.X < editorW {
		return m, nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	b := m.bundle()
	pal := m.palette()
	lang := string(m.prefs.Lang)

	editorW, previewW := m.layout.Widths(m.ui)
	bodyH := m.layout.BodyHeight(m.ui)
	var ed, pv string
	if editorW > 0 {
		ed = m.pane.View(i18n.Upper(lang, b.Editor), m.editor.View(), editorW, bodyH, m.ui.Modal == state.NoModal, pal, m.noColor)
	}
	if previewW > 0 {
		pv = m.pane.View(i18n.Upper(lang, b.Preview), m.preview.View(), previewW, bodyH, !m.ui.View.ShowsEditor(), pal, m.noColor)
	}

	chips := tagchips.View(util.ComputeTags(m.doc.Text()), b.Stats, pal, m.noColor)
	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.toolbar.View(m.ui, b, m.help, m.keys.toolbar(), pal, m.noColor),
		m.layout.View(m.ui, ed, pv),
		m.footer.View(m.ui, chips, b, m.previewURL, pal, m.noColor),
	)
	if fg := m.modalView(); fg != "" {
		h := m.ui.Height
		if h <= 0 {
			h = lipgloss.Height(screen)
		}
		screen = modal.Overlay(screen, fg, m.width(), h)
	}
	return screen
}

func (m Model) modalView() string {
	b := m.bundle()
	switch m.ui.Modal {
	case state.ExportModal:
		return modal.ExportView(m.ui, m.exportView.View(), m.exportScroll(), b, m.palette(), m.noColor)
	case state.SettingsModal:
		return modal.SettingsView(m.ui, m.prefs.Theme, m.prefs.Lang, b, m.palette(), m.noColor)
	}
	return ""
}

// ===== helpers =====

func (m Model) bundle() i18n.Bundle { return i18n.For(string(m.prefs.Lang)) }

func (m Model) palette() util.Palette { return util.PaletteFor(m.prefs.Effective()) }

func (m Model) width() int {
	if m.ui.Width > 0 {
		return m.ui.Width
	}
	return 80
}

func (m Model) height() int {
	if m.ui.Height > 0 {
		return m.ui.Height
	}
	return 24
}

func (m Model) setView(v state.ViewMode) Model {
	m.ui = state.SetView(m.ui, v)
	if m.ui.View.ShowsEditor() {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
	m.resize()
	m.refreshPreview()
	return m
}

// resize fits the editor and preview to their panes.
func (m *Model) resize() {
	editorW, previewW := m.layout.Widths(m.ui)
	bodyH := m.layout.BodyHeight(m.ui)
	if editorW > 0 {
		w, h := pane.Inner(editorW, bodyH)
		m.editor.SetWidth(w)
		m.editor.SetHeight(h)
	}
	if previewW > 0 {
		w, h := pane.Inner(previewW, bodyH)
		m.preview.Width = w
		m.preview.Height = h
	}
}

// fitExport sizes the export field to the modal and loads the snapshot.
func (m *Model) fitExport() {
	if m.ui.Modal != state.ExportModal {
		return
	}
	w, h := modal.ExportFieldSize(m.ui.Width)
	content := modal.WrapField(m.ui.Escaped, w)
	if n := lipgloss.Height(content); n < h {
		h = n
	}
	m.exportView.Width = w
	m.exportView.Height = h
	m.exportView.SetContent(content)
}

// exportScroll is the field's scroll position, empty when it all fits.
func (m Model) exportScroll() string {
	if m.exportView.AtTop() && m.exportView.AtBottom() {
		return ""
	}
	return fmt.Sprintf("%3.f%%", m.exportView.ScrollPercent()*100)
}

// refreshPreview re-renders the document while the preview is visible.
func (m *Model) refreshPreview() {
	if !m.ui.View.ShowsPreview() {
		return
	}
	m.preview.SetContent(m.md.Render(m.doc.Text(), m.preview.Width, m.prefs.Effective()))
}

// changed bumps the revision after an edit or a preference change.
func (m *Model) changed() {
	m.rev++
	m.refreshPreview()
	if m.pub != nil {
		m.pub.Publish(preview.Snapshot{
			Text:     m.doc.Text(),
			Theme:    m.prefs.Theme,
			Lang:     m.prefs.Lang,
			Revision: m.rev,
		})
	}
}
