package update

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/noted/internal/model"
	"github.com/sandeepkv93/noted/internal/store"
)

type Section string

const (
	SectionNotes Section = "Notes"
	SectionTasks Section = "Tasks"
)

type Focus string

const (
	FocusNav    Focus = "nav"
	FocusEditor Focus = "editor"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Section string
	Palette string
	Help    string
	Quit    string
}

// AppState is the navigation state shared by every handler. The formatter
// belongs to the open note and is reset whenever another note is opened.
type AppState struct {
	Section        Section
	Focus          Focus
	SelectedNoteID string
	NoteCursor     int
	TaskCursor     int
	Formatter      model.Formatter
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Options struct {
	EditorWidth  int
	PreviewStyle string
	Logger       *slog.Logger
}

type Model struct {
	State       AppState
	Store       *store.Store
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	logger       *slog.Logger
	previewStyle string
	width        int
	height       int
	editorWidth  int
	readOnly     bool
	previewKey   string
	// Bubble components used for rich TUI controls
	noteList        list.Model
	editor          textarea.Model
	commandInput    textinput.Model
	helpModel       help.Model
	previewViewport viewport.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type AppErrorMsg struct {
	Err error
}

// FormatFollowUpMsg carries a rewrite computed by the formatter. It is
// delivered after the edit that produced it has been committed.
type FormatFollowUpMsg struct {
	NoteID  string
	Base    string
	Content string
}

func NewModel(st *store.Store, opts Options) Model {
	m := Model{
		State: AppState{
			Section: SectionNotes,
			Focus:   FocusNav,
		},
		Store: st,
		Keys: GlobalKeyMap{
			Section: "tab",
			Palette: "/",
			Help:    "?",
			Quit:    "q",
		},
		logger:       opts.Logger,
		previewStyle: opts.PreviewStyle,
		editorWidth:  opts.EditorWidth,
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.editorWidth <= 0 {
		m.editorWidth = 60
	}
	m.initBubbleComponents()

	first := st.EnsureNote(context.Background())
	if ordered := m.orderedNotes(); len(ordered) > 0 {
		first = ordered[0]
	}
	m.openNote(first.ID)
	m.reportStoreWarning()
	m.syncBubbleData()
	return m
}
