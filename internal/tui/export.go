package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"contextmd/internal/document"
	"contextmd/internal/tui/state"
)

// Clipboard is where the export modal copies to.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// copyCmd writes text off the event loop and reports back.
func copyCmd(c Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{err: c.WriteAll(text)}
	}
}

func (m Model) updateExport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.clip, m.ui.Escaped)
	case key.Matches(msg, m.keys.Close):
		m.ui = state.CloseModal(m.ui)
	default:
		var cmd tea.Cmd
		m.exportView, cmd = m.exportView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleCopyResult shows the confirmation on success. Failures are only
// logged; the confirmation simply never appears.
func (m Model) handleCopyResult(msg copyResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error("clipboard write failed", zap.Error(msg.err))
		return m, nil
	}
	m.ui = state.MarkCopied(m.ui)
	return m, resetCopiedAfter(m.ui.CopySeq)
}

// download writes document.md into the output directory, replacing any
// previous file, and reports the outcome as a notice.
func (m Model) download() (tea.Model, tea.Cmd) {
	b := m.bundle()
	path, err := document.Download(m.fs, m.outDir, m.doc.Text())
	if err != nil {
		m.log.Warn("download failed", zap.String("dir", m.outDir), zap.Error(err))
		return m.notify(fmt.Sprintf(b.Notices.DownloadFailed, err))
	}
	m.log.Info("document saved", zap.String("path", path), zap.String("type", document.MediaType))
	return m.notify(fmt.Sprintf(b.Notices.Downloaded, path))
}

func (m Model) notify(msg string) (tea.Model, tea.Cmd) {
	var seq int
	m.ui, seq = state.SetNotice(m.ui, msg)
	return m, clearNoticeAfter(seq)
}
