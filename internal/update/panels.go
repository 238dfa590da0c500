package update

import (
	"github.com/sandeepkv93/noted/internal/views"
)

func (m Model) renderTabs() string {
	return views.RenderTabs(views.TabsData{
		Tabs:   []string{string(SectionNotes), string(SectionTasks)},
		Active: string(m.State.Section),
	})
}

func (m Model) renderNotesPane() string {
	return views.RenderNotesPanel(views.NotesPanelData{
		ListView: m.noteList.View(),
		Count:    m.Store.Len(),
	})
}

func (m Model) renderTaskPane() string {
	tasks := m.Store.Tasks()
	items := make([]views.TaskItemData, 0, len(tasks))
	open, done := 0, 0
	for _, t := range tasks {
		if t.Completed {
			done++
		} else {
			open++
		}
		items = append(items, views.TaskItemData{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			NoteTitle: m.titleOf(t.NoteID),
			Line:      t.LineIndex,
		})
	}
	return views.RenderTaskPanel(views.TaskPanelData{
		Items:    items,
		Cursor:   m.State.TaskCursor,
		Focused:  m.State.Focus == FocusNav,
		Open:     open,
		Complete: done,
	})
}

func (m Model) renderEditorPane() string {
	note, ok := m.Store.Get(m.State.SelectedNoteID)
	if !ok {
		return "(no note)"
	}
	return views.RenderEditorPanel(views.EditorPanelData{
		Title:       note.Title,
		Mode:        m.State.Formatter.Mode().String(),
		Editing:     m.State.Focus == FocusEditor,
		Rich:        note.IsRich(),
		Tags:        note.Tags,
		Color:       string(note.Color),
		Pinned:      note.Pinned,
		Created:     note.CreatedAt.Local().Format("2006-01-02 15:04"),
		EditorView:  m.editor.View(),
		PreviewView: m.previewViewport.View(),
	})
}

func (m Model) renderPaletteIfActive() string {
	if !m.Palette.Active {
		return ""
	}
	return "\n\n" + views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}
