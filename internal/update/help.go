package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/noted/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return "\n\n" + m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.contextBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	focus := string(m.State.Section)
	if m.State.Focus == FocusEditor {
		focus = "editor"
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Focus:    focus,
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Section, Action: "switch Notes/Tasks"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) contextBindings() []KeyBinding {
	if m.State.Focus == FocusEditor {
		return []KeyBinding{
			{Key: "esc", Action: "stop editing"},
			{Key: "ctrl+l", Action: "toggle bullet mode"},
			{Key: "ctrl+t", Action: "toggle task mode"},
			{Key: "ctrl+x", Action: "check/uncheck cursor line"},
			{Key: "enter twice", Action: "leave list mode"},
		}
	}
	switch m.State.Section {
	case SectionNotes:
		return []KeyBinding{
			{Key: "j/k", Action: "select note"},
			{Key: "enter", Action: "edit note"},
			{Key: "n/d", Action: "new / delete note"},
			{Key: "p/c", Action: "pin / cycle color"},
			{Key: "r", Action: "toggle rich text"},
			{Key: "y", Action: "copy note"},
		}
	case SectionTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move task cursor"},
			{Key: "space", Action: "toggle task"},
			{Key: "enter", Action: "open owning note"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.contextBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.contextBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
