// Package store is the in-memory ordered note collection. Every mutation is
// written through to the repository in full. Persistence failures are never
// returned: a failed load yields an empty store and a failed save leaves
// memory ahead of disk. Both are logged and kept as LastWarning.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/noted/internal/model"
	"github.com/sandeepkv93/noted/internal/richtext"
	"github.com/sandeepkv93/noted/internal/storage"
)

type Store struct {
	repo   storage.Repository
	codec  richtext.Codec
	logger *slog.Logger
	newID  func() string
	now    func() time.Time

	notes   []model.Note
	lastErr error
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithCodec(c richtext.Codec) Option {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithClock(fn func() time.Time) Option {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

func New(repo storage.Repository, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		codec:  richtext.MarkdownCodec{},
		logger: slog.Default(),
		newID:  func() string { return uuid.NewString() },
		now:    time.Now,
		notes:  make([]model.Note, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory notes with the repository contents.
func (s *Store) Load(ctx context.Context) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		s.warn("load notes", err)
		s.notes = make([]model.Note, 0)
		return
	}
	notes := make([]model.Note, 0, len(records))
	for _, rec := range records {
		notes = append(notes, fromRecord(rec))
	}
	s.notes = notes
	s.lastErr = nil
	s.logger.Debug("notes loaded", "count", len(notes))
}

func (s *Store) Save(ctx context.Context) {
	records := make([]storage.Note, 0, len(s.notes))
	for _, n := range s.notes {
		records = append(records, toRecord(n))
	}
	if err := s.repo.Save(ctx, records); err != nil {
		s.warn("save notes", err)
		return
	}
	s.lastErr = nil
}

func (s *Store) warn(op string, err error) {
	s.lastErr = fmt.Errorf("%s: %w", op, err)
	s.logger.Warn("persistence failure ignored", "op", op, "err", err)
}

func (s *Store) LastWarning() error {
	return s.lastErr
}

func (s *Store) Len() int {
	return len(s.notes)
}

// Notes returns copies in store order.
func (s *Store) Notes() []model.Note {
	out := make([]model.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.Clone()
	}
	return out
}

func (s *Store) Index(id string) int {
	return slices.IndexFunc(s.notes, func(n model.Note) bool { return n.ID == id })
}

func (s *Store) Get(id string) (model.Note, bool) {
	i := s.Index(id)
	if i < 0 {
		return model.Note{}, false
	}
	return s.notes[i].Clone(), true
}

func (s *Store) Create(ctx context.Context) model.Note {
	n := model.NewNote(s.newID(), s.now())
	s.notes = append(s.notes, n)
	s.logger.Info("note created", "id", n.ID)
	s.Save(ctx)
	return n.Clone()
}

func (s *Store) Delete(ctx context.Context, id string) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	s.logger.Info("note deleted", "id", id)
	s.Save(ctx)
	return true
}

// EnsureNote keeps at least one note around once the app is running.
func (s *Store) EnsureNote(ctx context.Context) model.Note {
	if len(s.notes) > 0 {
		return s.notes[0].Clone()
	}
	return s.Create(ctx)
}

// EditorText is what the editor shows: markdown source for rich notes,
// plain content otherwise.
func (s *Store) EditorText(id string) string {
	i := s.Index(id)
	if i < 0 {
		return ""
	}
	n := s.notes[i]
	if !n.IsRich() {
		return n.Content
	}
	doc, err := s.codec.Decode(n.RichText)
	if err != nil {
		s.logger.Warn("rich text unreadable, showing plain content", "id", id, "err", err)
		return n.Content
	}
	return doc.Source
}

// UpdateContent stores new editor text. Rich notes re-encode the document
// and keep Content as its plain projection.
func (s *Store) UpdateContent(ctx context.Context, id, text string) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	n := &s.notes[i]
	if n.IsRich() {
		doc := richtext.Document{Source: text}
		data, err := s.codec.Encode(doc)
		if err != nil {
			s.logger.Warn("rich text encode failed", "id", id, "err", err)
			return false
		}
		if string(data) == string(n.RichText) {
			return false
		}
		n.RichText = data
		n.SetContent(doc.Plain())
	} else {
		if n.Content == text {
			return false
		}
		n.SetContent(text)
	}
	s.Save(ctx)
	return true
}

func (s *Store) Tasks() []model.TaskItem {
	return model.ExtractTasks(s.notes)
}

// ToggleTask flips the checkbox addressed by a task id from the current
// extraction pass. Rich notes get the same flip in their document.
func (s *Store) ToggleTask(ctx context.Context, taskID int) (model.TaskItem, bool) {
	task, ok := model.ToggleTask(s.notes, taskID)
	if !ok {
		return model.TaskItem{}, false
	}
	n := &s.notes[s.Index(task.NoteID)]
	if n.IsRich() && !s.toggleRichLine(n, task.LineIndex) {
		reverted, _ := model.ToggleTaskLine(n.Content, task.LineIndex)
		n.SetContent(reverted)
		return model.TaskItem{}, false
	}
	s.Save(ctx)
	return task, true
}

// ToggleLine flips the checkbox on one line of a note. Stale or unmarked
// lines are left alone.
func (s *Store) ToggleLine(ctx context.Context, noteID string, lineIndex int) bool {
	i := s.Index(noteID)
	if i < 0 {
		return false
	}
	n := &s.notes[i]
	next, ok := model.ToggleTaskLine(n.Content, lineIndex)
	if !ok {
		return false
	}
	if n.IsRich() {
		if !s.toggleRichLine(n, lineIndex) {
			return false
		}
	}
	n.SetContent(next)
	s.Save(ctx)
	return true
}

func (s *Store) toggleRichLine(n *model.Note, lineIndex int) bool {
	doc, err := s.codec.Decode(n.RichText)
	if err != nil {
		s.logger.Warn("rich text unreadable", "id", n.ID, "err", err)
		return false
	}
	src, ok := richtext.ToggleSourceLine(doc.Source, lineIndex)
	if !ok {
		return false
	}
	data, err := s.codec.Encode(richtext.Document{Source: src})
	if err != nil {
		s.logger.Warn("rich text encode failed", "id", n.ID, "err", err)
		return false
	}
	n.RichText = data
	return true
}

// SetRich converts a note between the plain and rich variants. Turning rich
// off keeps the plain projection as content.
func (s *Store) SetRich(ctx context.Context, id string, on bool) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	n := &s.notes[i]
	if n.IsRich() == on {
		return false
	}
	if !on {
		n.RichText = nil
		s.Save(ctx)
		return true
	}
	data, err := s.codec.Encode(richtext.FromPlain(n.Content))
	if err != nil {
		s.logger.Warn("rich text encode failed", "id", id, "err", err)
		return false
	}
	n.RichText = data
	n.SetContent(richtext.Document{Source: n.Content}.Plain())
	s.Save(ctx)
	return true
}

func (s *Store) SetPinned(ctx context.Context, id string, pinned bool) bool {
	return s.mutate(ctx, id, func(n *model.Note) bool {
		if n.Pinned == pinned {
			return false
		}
		n.Pinned = pinned
		return true
	})
}

func (s *Store) SetColor(ctx context.Context, id string, c model.Color) bool {
	if !c.IsValid() {
		return false
	}
	return s.mutate(ctx, id, func(n *model.Note) bool {
		if n.Color == c {
			return false
		}
		n.Color = c
		return true
	})
}

func (s *Store) AddTag(ctx context.Context, id, tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	return s.mutate(ctx, id, func(n *model.Note) bool {
		if n.HasTag(tag) {
			return false
		}
		n.Tags = append(n.Tags, tag)
		return true
	})
}

func (s *Store) RemoveTag(ctx context.Context, id, tag string) bool {
	return s.mutate(ctx, id, func(n *model.Note) bool {
		before := len(n.Tags)
		n.Tags = slices.DeleteFunc(n.Tags, func(t string) bool { return strings.EqualFold(t, tag) })
		return len(n.Tags) != before
	})
}

func (s *Store) mutate(ctx context.Context, id string, fn func(*model.Note) bool) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	if !fn(&s.notes[i]) {
		return false
	}
	s.Save(ctx)
	return true
}
