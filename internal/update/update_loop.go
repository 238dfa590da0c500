package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/noted/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handle(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) handle(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.State.Focus == FocusEditor {
			return m.handleEditorKey(typed)
		}

		switch keyStr {
		case m.Keys.Palette:
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Section:
			if m.State.Section == SectionNotes {
				m.switchSection(SectionTasks)
			} else {
				m.switchSection(SectionNotes)
			}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		if m.State.Section == SectionTasks {
			return m.handleTasksKey(typed)
		}
		return m.handleNotesKey(typed)
	case FormatFollowUpMsg:
		m.applyFollowUp(typed)
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Error("app error", "err", typed.Err)
		}
		return m, nil
	}

	if m.State.Focus == FocusEditor {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := m.renderTabs() + "\n"
	if m.State.Section == SectionTasks {
		leftPane += m.renderTaskPane()
	} else {
		leftPane += m.renderNotesPane()
	}
	rightPane := m.renderEditorPane() + m.renderPaletteIfActive() + m.renderHelpIfVisible()

	title := ""
	if note, ok := m.Store.Get(m.State.SelectedNoteID); ok {
		title = note.Title
	}
	leftWidth, rightWidth := m.paneWidths()
	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("noted | section: %s | note: %s | mode: %s", m.State.Section, title, m.State.Formatter.Mode()),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		LeftWidth:  leftWidth,
		RightWidth: rightWidth,
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer:     m.footer(),
	})
}

func (m Model) footer() string {
	if m.State.Focus == FocusEditor {
		return "keys: esc leave editor | ctrl+l bullets | ctrl+t tasks | ctrl+x check line | ctrl+c quit"
	}
	return fmt.Sprintf("keys: %s section | j/k move | enter edit | %s cmd | %s help | %s quit", m.Keys.Section, m.Keys.Palette, m.Keys.Help, m.Keys.Quit)
}
