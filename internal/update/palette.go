package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/noted/internal/commands"
	"github.com/sandeepkv93/noted/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		m.commandInput, _ = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	cmd, err := commands.Parse(strings.TrimSpace(m.Palette.Input))
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m, nil
	}

	ctx := context.Background()
	var follow tea.Cmd
	unchanged := func(what string) error {
		return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: what}
	}
	res, err := commands.Execute(cmd, commands.Handlers{
		New: func(a commands.NewArgs) (commands.Result, error) {
			note := m.createNote(a.Text)
			return commands.Result{Message: fmt.Sprintf("created %q", m.titleOf(note.ID))}, nil
		},
		Delete: func() (commands.Result, error) {
			title := m.titleOf(m.State.SelectedNoteID)
			if !m.deleteSelected() {
				return commands.Result{}, unchanged("no note selected")
			}
			return commands.Result{Message: fmt.Sprintf("deleted %q", title)}, nil
		},
		Tag: func(a commands.TagArgs) (commands.Result, error) {
			if !m.Store.AddTag(ctx, m.State.SelectedNoteID, a.Tag) {
				return commands.Result{}, unchanged("tag already present: " + a.Tag)
			}
			return commands.Result{Message: "tagged #" + a.Tag}, nil
		},
		Untag: func(a commands.TagArgs) (commands.Result, error) {
			if !m.Store.RemoveTag(ctx, m.State.SelectedNoteID, a.Tag) {
				return commands.Result{}, unchanged("tag not present: " + a.Tag)
			}
			return commands.Result{Message: "removed #" + a.Tag}, nil
		},
		Color: func(a commands.ColorArgs) (commands.Result, error) {
			c, err := model.ParseColor(a.Color)
			if err != nil {
				return commands.Result{}, unchanged(err.Error())
			}
			m.Store.SetColor(ctx, m.State.SelectedNoteID, c)
			return commands.Result{Message: fmt.Sprintf("color: %s", c)}, nil
		},
		Pin: func(a commands.SwitchArgs) (commands.Result, error) {
			note, ok := m.Store.Get(m.State.SelectedNoteID)
			if !ok {
				return commands.Result{}, unchanged("no note selected")
			}
			on := a.On
			if a.Toggle {
				on = !note.Pinned
			}
			m.setPinned(note.ID, on)
			if on {
				return commands.Result{Message: "pinned"}, nil
			}
			return commands.Result{Message: "unpinned"}, nil
		},
		Rich: func(a commands.SwitchArgs) (commands.Result, error) {
			note, ok := m.Store.Get(m.State.SelectedNoteID)
			if !ok {
				return commands.Result{}, unchanged("no note selected")
			}
			on := a.On
			if a.Toggle {
				on = !note.IsRich()
			}
			m.setRich(note.ID, on)
			if on {
				return commands.Result{Message: "rich text on"}, nil
			}
			return commands.Result{Message: "rich text off"}, nil
		},
		Mode: func(a commands.ModeArgs) (commands.Result, error) {
			mode, ok := model.ParseFormattingMode(a.Mode)
			if !ok {
				return commands.Result{}, unchanged("unknown mode: " + a.Mode)
			}
			if m.readOnly {
				return commands.Result{}, unchanged(readOnlyStatus().Text)
			}
			if mode == model.ModeNone {
				m.State.Formatter.Reset()
			} else if m.State.Formatter.Mode() != mode {
				m.toggleMode(mode)
			}
			return commands.Result{Message: fmt.Sprintf("mode: %s", m.State.Formatter.Mode())}, nil
		},
		Copy: func() (commands.Result, error) {
			follow = m.copySelected()
			if follow == nil {
				return commands.Result{}, unchanged("no note selected")
			}
			return commands.Result{Message: "copying to clipboard"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message}
		m.reportStoreWarning()
	}
	m.closePalette()
	return m, follow
}

func (m Model) titleOf(id string) string {
	note, ok := m.Store.Get(id)
	if !ok {
		return ""
	}
	return note.Title
}
