package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/noted/internal/model"
)

func (m *Model) switchSection(s Section) {
	m.State.Section = s
	if s == SectionTasks {
		m.State.TaskCursor = clamp(m.State.TaskCursor, 0, len(m.Store.Tasks())-1)
	}
	m.Status = StatusBar{Text: fmt.Sprintf("switched to %s", s)}
}

func (m Model) handleNotesKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	ctx := context.Background()
	ordered := m.orderedNotes()
	switch msg.String() {
	case "j", "down":
		if m.State.NoteCursor < len(ordered)-1 {
			m.openNote(ordered[m.State.NoteCursor+1].ID)
		}
	case "k", "up":
		if m.State.NoteCursor > 0 {
			m.openNote(ordered[m.State.NoteCursor-1].ID)
		}
	case "enter", "e", "i":
		return m, m.focusEditor()
	case "n":
		m.createNote("")
		return m, m.focusEditor()
	case "d":
		m.deleteSelected()
	case "p":
		m.togglePin()
	case "c":
		note, ok := m.Store.Get(m.State.SelectedNoteID)
		if !ok {
			return m, nil
		}
		next := model.NextColor(note.Color)
		if m.Store.SetColor(ctx, note.ID, next) {
			m.Status = StatusBar{Text: fmt.Sprintf("color: %s", next)}
		}
		m.reportStoreWarning()
	case "r":
		m.toggleRich()
	case "y":
		return m, m.copySelected()
	}
	return m, nil
}

func (m *Model) focusEditor() tea.Cmd {
	if m.readOnly {
		m.Status = readOnlyStatus()
		return nil
	}
	m.State.Focus = FocusEditor
	m.Status = StatusBar{Text: "editing"}
	return m.editor.Focus()
}

func (m *Model) createNote(text string) model.Note {
	ctx := context.Background()
	note := m.Store.Create(ctx)
	if text != "" {
		m.Store.UpdateContent(ctx, note.ID, text)
	}
	m.State.Section = SectionNotes
	m.openNote(note.ID)
	m.Status = StatusBar{Text: "note created"}
	m.reportStoreWarning()
	return note
}

func (m *Model) deleteSelected() bool {
	id := m.State.SelectedNoteID
	note, ok := m.Store.Get(id)
	if !ok || !m.Store.Delete(context.Background(), id) {
		return false
	}
	m.Status = StatusBar{Text: fmt.Sprintf("deleted %q", note.Title)}
	m.reopenAfterRemoval()
	m.reportStoreWarning()
	return true
}

func (m *Model) togglePin() {
	note, ok := m.Store.Get(m.State.SelectedNoteID)
	if !ok {
		return
	}
	m.setPinned(note.ID, !note.Pinned)
}

func (m *Model) setPinned(id string, pinned bool) bool {
	if !m.Store.SetPinned(context.Background(), id, pinned) {
		return false
	}
	m.openNote(id)
	if pinned {
		m.Status = StatusBar{Text: "pinned"}
	} else {
		m.Status = StatusBar{Text: "unpinned"}
	}
	m.reportStoreWarning()
	return true
}

func (m *Model) toggleRich() {
	note, ok := m.Store.Get(m.State.SelectedNoteID)
	if !ok {
		return
	}
	m.setRich(note.ID, !note.IsRich())
}

func (m *Model) setRich(id string, on bool) bool {
	if !m.Store.SetRich(context.Background(), id, on) {
		return false
	}
	m.refreshEditor()
	if on {
		m.Status = StatusBar{Text: "rich text on"}
	} else {
		m.Status = StatusBar{Text: "rich text off"}
	}
	m.reportStoreWarning()
	return true
}

// copySelected returns a command that writes the open note to the system
// clipboard outside the update loop.
func (m *Model) copySelected() tea.Cmd {
	note, ok := m.Store.Get(m.State.SelectedNoteID)
	if !ok {
		return nil
	}
	content := note.Content
	return func() tea.Msg {
		if err := clipboardWrite(content); err != nil {
			return AppErrorMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return SetStatusMsg{Text: "copied to clipboard"}
	}
}
