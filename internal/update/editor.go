package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/noted/internal/model"
)

func (m Model) handleEditorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Blur()
		m.State.Focus = FocusNav
		m.Status = StatusBar{Text: "saved"}
		return m, nil
	case "ctrl+l":
		m.toggleMode(model.ModeBullet)
		return m, nil
	case "ctrl+t":
		m.toggleMode(model.ModeTask)
		return m, nil
	case "ctrl+x":
		m.toggleCursorLine()
		return m, nil
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, tea.Batch(cmd, m.commitEdit(before, m.editor.Value()))
}

// commitEdit writes the edit through to the store first. Any formatter
// rewrite is returned as a command so it lands as a separate update.
func (m *Model) commitEdit(before, after string) tea.Cmd {
	if before == after || m.readOnly {
		return nil
	}
	id := m.State.SelectedNoteID
	m.Store.UpdateContent(context.Background(), id, after)
	m.reportStoreWarning()

	follow, ok := m.State.Formatter.Observe(before, after)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return FormatFollowUpMsg{NoteID: id, Base: after, Content: follow.Content}
	}
}

// applyFollowUp drops rewrites for a note that is no longer open or whose
// text moved on since the rewrite was computed.
func (m *Model) applyFollowUp(msg FormatFollowUpMsg) {
	if m.readOnly || msg.NoteID != m.State.SelectedNoteID || msg.Base != m.editor.Value() {
		m.logger.Debug("format follow-up dropped", "note", msg.NoteID)
		return
	}
	m.editor.SetValue(msg.Content)
	m.Store.UpdateContent(context.Background(), msg.NoteID, msg.Content)
	m.reportStoreWarning()
}

func (m *Model) toggleMode(mode model.FormattingMode) {
	if m.readOnly {
		m.Status = readOnlyStatus()
		return
	}
	before := m.editor.Value()
	after := m.State.Formatter.Toggle(mode, before)
	if after != before {
		m.editor.SetValue(after)
		m.Store.UpdateContent(context.Background(), m.State.SelectedNoteID, after)
		m.reportStoreWarning()
	}
	m.Status = StatusBar{Text: fmt.Sprintf("mode: %s", m.State.Formatter.Mode())}
}

func readOnlyStatus() StatusBar {
	return StatusBar{Text: fmt.Sprintf("note is longer than %d lines; read-only here", editorLineLimit), IsError: true}
}

func (m *Model) toggleCursorLine() {
	line := m.editor.Line()
	if !m.Store.ToggleLine(context.Background(), m.State.SelectedNoteID, line) {
		m.Status = StatusBar{Text: "no checkbox on this line"}
		return
	}
	m.refreshEditor()
	m.Status = StatusBar{Text: "checkbox toggled"}
	m.reportStoreWarning()
}
