package views

import (
	"fmt"
	"strings"
)

type TabsData struct {
	Tabs   []string
	Active string
}

type TaskItemData struct {
	ID        int
	Text      string
	Completed bool
	NoteTitle string
	Line      int
}

type TaskPanelData struct {
	Items    []TaskItemData
	Cursor   int
	Focused  bool
	Open     int
	Complete int
}

type NotesPanelData struct {
	ListView string
	Count    int
}

type EditorPanelData struct {
	Title       string
	Mode        string
	Editing     bool
	Rich        bool
	Tags        []string
	Color       string
	Pinned      bool
	Created     string
	EditorView  string
	PreviewView string
}

type HelpPanelData struct {
	Focus    string
	Bindings []string
	HelpView string
}

func RenderTabs(data TabsData) string {
	parts := make([]string, 0, len(data.Tabs))
	for _, tab := range data.Tabs {
		if strings.EqualFold(tab, data.Active) {
			parts = append(parts, activeTabStyle.Render("["+tab+"]"))
			continue
		}
		parts = append(parts, tabStyle.Render(tab))
	}
	return strings.Join(parts, "")
}

func RenderNotesPanel(data NotesPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("notes: %d\n", data.Count))
	b.WriteString("actions: [enter]edit [n]new [d]delete [p]pin [c]color\n")
	b.WriteString(data.ListView)
	return strings.TrimSpace(b.String())
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("tasks: %d open, %d done\n", data.Open, data.Complete))
	b.WriteString("actions: [space]toggle [enter]open note\n")
	if len(data.Items) == 0 {
		b.WriteString("\n(no tasks: start a line with ☐ )")
		return strings.TrimSpace(b.String())
	}
	lastNote := ""
	for i, item := range data.Items {
		if item.NoteTitle != lastNote {
			b.WriteString(fmt.Sprintf("\n%s:\n", item.NoteTitle))
			lastNote = item.NoteTitle
		}
		cursor := " "
		if data.Focused && i == data.Cursor {
			cursor = ">"
		}
		box := "[ ]"
		text := item.Text
		if item.Completed {
			box = "[x]"
			text = doneStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, box, text))
	}
	return strings.TrimSpace(b.String())
}

func RenderEditorPanel(data EditorPanelData) string {
	var b strings.Builder
	title := data.Title
	if data.Pinned {
		title = "📌 " + title
	}
	b.WriteString(Swatch(data.Color) + title + "\n")
	meta := []string{"mode: " + data.Mode}
	if data.Rich {
		meta = append(meta, "rich")
	}
	if len(data.Tags) > 0 {
		meta = append(meta, "tags: "+strings.Join(data.Tags, ","))
	}
	if data.Created != "" {
		meta = append(meta, "created: "+data.Created)
	}
	b.WriteString(strings.Join(meta, " | ") + "\n")
	if data.Editing {
		b.WriteString("editing: [esc]done [ctrl+l]bullets [ctrl+t]tasks [ctrl+x]check line\n")
	} else {
		b.WriteString("[enter] to edit\n")
	}
	b.WriteString(data.EditorView)
	if strings.TrimSpace(data.PreviewView) != "" {
		b.WriteString("\n\npreview:\n")
		b.WriteString(data.PreviewView)
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s\n%s",
		strings.ToLower(data.Focus),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
