package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	tasks := m.Store.Tasks()
	switch msg.String() {
	case "j", "down":
		if m.State.TaskCursor < len(tasks)-1 {
			m.State.TaskCursor++
		}
	case "k", "up":
		if m.State.TaskCursor > 0 {
			m.State.TaskCursor--
		}
	case " ", "x":
		if len(tasks) == 0 {
			return m, nil
		}
		m.toggleTaskAt(clamp(m.State.TaskCursor, 0, len(tasks)-1))
	case "enter":
		if len(tasks) == 0 {
			return m, nil
		}
		task := tasks[clamp(m.State.TaskCursor, 0, len(tasks)-1)]
		m.openNote(task.NoteID)
		return m, m.focusEditor()
	}
	return m, nil
}

// toggleTaskAt flips the task at position id of the current extraction.
// The editor is reloaded when the task lives in the open note.
func (m *Model) toggleTaskAt(id int) {
	task, ok := m.Store.ToggleTask(context.Background(), id)
	if !ok {
		return
	}
	if task.NoteID == m.State.SelectedNoteID {
		m.refreshEditor()
	}
	state := "open"
	if task.Completed {
		state = "done"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s: %s", state, task.Text)}
	m.reportStoreWarning()
}
