package update

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/noted/internal/model"
	"github.com/sandeepkv93/noted/internal/richtext"
)

const (
	minLeftWidth   = 28
	listHeight     = 14
	editorHeight   = 12
	previewHeight  = 8
	chromeRows     = 10
	panelPadding   = 4
	maxLeftPercent = 35

	// editorLineLimit is the textarea's fixed line capacity. SetValue drops
	// anything past it, so longer notes are shown but not editable.
	editorLineLimit = 10000
)

var renderPreview = richtext.Render

func (m *Model) initBubbleComponents() {
	m.noteList = list.New([]list.Item{}, list.NewDefaultDelegate(), minLeftWidth, listHeight)
	m.noteList.Title = "Notes"
	m.noteList.SetShowHelp(false)
	m.noteList.SetFilteringEnabled(false)
	m.noteList.SetShowStatusBar(false)

	m.editor = textarea.New()
	m.editor.SetWidth(m.editorWidth)
	m.editor.SetHeight(editorHeight)
	m.editor.ShowLineNumbers = false
	m.editor.CharLimit = 0
	m.editor.MaxHeight = 0
	m.editor.Placeholder = "Start typing. ctrl+t starts a checklist."

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.previewViewport = viewport.New(m.editorWidth, previewHeight)
}

func (m *Model) syncBubbleData() {
	ordered := m.orderedNotes()
	items := make([]list.Item, 0, len(ordered))
	for _, n := range ordered {
		items = append(items, listItem{title: noteListTitle(n), description: noteListDescription(n)})
	}
	m.noteList.SetItems(items)
	if len(items) > 0 {
		m.noteList.Select(clamp(m.State.NoteCursor, 0, len(items)-1))
	}

	m.syncPreview()
}

// syncPreview re-renders the rich preview only when the source text or the
// wrap width moved since the last render.
func (m *Model) syncPreview() {
	m.previewViewport.Width = m.editorWidth
	key := ""
	source := ""
	if note, ok := m.Store.Get(m.State.SelectedNoteID); ok && note.IsRich() {
		source = m.Store.EditorText(note.ID)
		key = strconv.Itoa(m.editorWidth) + "\x00" + source
	}
	if key == m.previewKey {
		return
	}
	m.previewKey = key
	if key == "" {
		m.previewViewport.SetContent("")
		return
	}
	m.previewViewport.SetContent(renderPreview(richtext.Document{Source: source}, m.previewStyle, m.editorWidth))
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	left, right := m.paneWidths()
	m.editorWidth = max(right-panelPadding, minLeftWidth)
	m.editor.SetWidth(m.editorWidth)
	m.noteList.SetSize(left-panelPadding, max(height-chromeRows, listHeight/2))
	if h := height - chromeRows - previewHeight; h > 3 {
		m.editor.SetHeight(h)
	}
	m.helpModel.Width = right
}

// paneWidths splits the terminal between the navigation pane and the editor.
// Before the first WindowSizeMsg the view falls back to fixed defaults.
func (m Model) paneWidths() (int, int) {
	if m.width <= 0 {
		return 0, 0
	}
	left := max(m.width*maxLeftPercent/100, minLeftWidth)
	right := max(m.width-left-panelPadding, minLeftWidth)
	return left, right
}

// orderedNotes is the display order: pinned notes first, otherwise store order.
func (m Model) orderedNotes() []model.Note {
	all := m.Store.Notes()
	out := make([]model.Note, 0, len(all))
	for _, n := range all {
		if n.Pinned {
			out = append(out, n)
		}
	}
	for _, n := range all {
		if !n.Pinned {
			out = append(out, n)
		}
	}
	return out
}

// openNote makes id the edited note. The formatting mode never carries over
// from one note to another.
func (m *Model) openNote(id string) {
	if id != m.State.SelectedNoteID {
		m.State.Formatter.Reset()
	}
	m.State.SelectedNoteID = id
	for i, n := range m.orderedNotes() {
		if n.ID == id {
			m.State.NoteCursor = i
			break
		}
	}
	m.loadEditor(m.Store.EditorText(id))
}

// loadEditor replaces the editor text. A note longer than the textarea can
// hold is marked read-only so a truncated copy is never written back.
func (m *Model) loadEditor(text string) {
	m.readOnly = strings.Count(text, "\n")+1 > editorLineLimit
	if m.readOnly && m.State.Focus == FocusEditor {
		m.editor.Blur()
		m.State.Focus = FocusNav
	}
	m.editor.SetValue(text)
}

// refreshEditor reloads the editor after a store change made outside it,
// keeping the cursor on the same line.
func (m *Model) refreshEditor() {
	text := m.Store.EditorText(m.State.SelectedNoteID)
	if text == m.editor.Value() {
		return
	}
	row := m.editor.Line()
	m.loadEditor(text)
	for guard := m.editor.Length(); m.editor.Line() > row && guard > 0; guard-- {
		m.editor.CursorUp()
	}
	m.editor.CursorEnd()
}

// reopenAfterRemoval selects the note now at the cursor, creating a fresh
// one when the store was emptied.
func (m *Model) reopenAfterRemoval() {
	m.Store.EnsureNote(context.Background())
	ordered := m.orderedNotes()
	m.State.NoteCursor = clamp(m.State.NoteCursor, 0, len(ordered)-1)
	m.State.SelectedNoteID = ""
	m.openNote(ordered[m.State.NoteCursor].ID)
}

func (m *Model) reportStoreWarning() {
	if err := m.Store.LastWarning(); err != nil {
		m.Status = StatusBar{Text: "not saved: " + err.Error(), IsError: true}
	}
}

func noteListTitle(n model.Note) string {
	title := n.Title
	if n.Pinned {
		title = "* " + title
	}
	return title
}

func noteListDescription(n model.Note) string {
	parts := []string{n.CreatedAt.Local().Format("2006-01-02")}
	if n.Color.IsValid() && n.Color != "" && n.Color != model.ColorDefault {
		parts = append(parts, string(n.Color))
	}
	if len(n.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(n.Tags, " #"))
	}
	if n.IsRich() {
		parts = append(parts, "rich")
	}
	return strings.Join(parts, " | ")
}
