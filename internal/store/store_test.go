package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/noted/internal/model"
	"github.com/sandeepkv93/noted/internal/richtext"
	"github.com/sandeepkv93/noted/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	notes   []storage.Note
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeRepo) Load(context.Context) ([]storage.Note, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]storage.Note(nil), f.notes...), nil
}

func (f *fakeRepo) Save(_ context.Context, notes []storage.Note) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.notes = append([]storage.Note(nil), notes...)
	return nil
}

func (f *fakeRepo) Close() error { return nil }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(repo storage.Repository) *Store {
	seq := 0
	return New(repo,
		WithLogger(quietLogger()),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("note-%d", seq)
		}),
		WithClock(func() time.Time { return time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC) }),
	)
}

func TestLoadFailureYieldsEmptyStore(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("disk on fire")}
	s := newTestStore(repo)
	s.Load(t.Context())

	assert.Equal(t, 0, s.Len())
	require.Error(t, s.LastWarning())
	assert.Contains(t, s.LastWarning().Error(), "disk on fire")
}

func TestCorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("[{broken"), 0o644))
	s := newTestStore(storage.NewJSONFileRepository(path))
	s.Load(t.Context())
	assert.Equal(t, 0, s.Len())
	assert.Error(t, s.LastWarning())
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("read-only")}
	s := newTestStore(repo)

	n := s.Create(t.Context())
	assert.Equal(t, "note-1", n.ID)
	assert.Equal(t, 1, s.Len(), "memory keeps the note even when the write fails")
	assert.Equal(t, 1, repo.saves)
	assert.Error(t, s.LastWarning())

	repo.saveErr = nil
	s.UpdateContent(t.Context(), n.ID, "fixed")
	assert.NoError(t, s.LastWarning())
}

func TestCreateAppendsAndPersists(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestStore(repo)
	a := s.Create(t.Context())
	b := s.Create(t.Context())

	assert.Equal(t, model.UntitledNote, a.Title)
	assert.Empty(t, a.Content)
	assert.False(t, a.CreatedAt.IsZero())
	require.Len(t, repo.notes, 2)
	assert.Equal(t, a.ID, repo.notes[0].ID)
	assert.Equal(t, b.ID, repo.notes[1].ID)
}

func TestDeleteAndEnsureNote(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestStore(repo)
	a := s.Create(t.Context())
	b := s.Create(t.Context())
	c := s.Create(t.Context())

	require.True(t, s.Delete(t.Context(), b.ID))
	assert.False(t, s.Delete(t.Context(), "missing"))
	ids := []string{}
	for _, n := range s.Notes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{a.ID, c.ID}, ids)

	s.Delete(t.Context(), a.ID)
	s.Delete(t.Context(), c.ID)
	assert.Equal(t, 0, s.Len())
	replacement := s.EnsureNote(t.Context())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, replacement.ID, s.Notes()[0].ID)
	assert.Len(t, repo.notes, 1)
}

func TestUpdateContentDerivesTitle(t *testing.T) {
	s := newTestStore(&fakeRepo{})
	n := s.Create(t.Context())
	require.True(t, s.UpdateContent(t.Context(), n.ID, "\n  Groceries  \n☐ milk"))
	assert.False(t, s.UpdateContent(t.Context(), n.ID, "\n  Groceries  \n☐ milk"), "unchanged text is not rewritten")

	got, ok := s.Get(n.ID)
	require.True(t, ok)
	assert.Equal(t, "Groceries", got.Title)
}

func TestToggleTaskAcrossNotes(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestStore(repo)
	a := s.Create(t.Context())
	b := s.Create(t.Context())
	s.UpdateContent(t.Context(), a.ID, "A\n☐ one")
	s.UpdateContent(t.Context(), b.ID, "B\n☑ two\n☐ three")

	tasks := s.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, b.ID, tasks[2].NoteID)
	assert.Equal(t, 2, tasks[2].LineIndex)

	task, ok := s.ToggleTask(t.Context(), 2)
	require.True(t, ok)
	assert.True(t, task.Completed)
	assert.Equal(t, "B\n☑ two\n☑ three", repo.notes[1].Content)

	saves := repo.saves
	_, ok = s.ToggleTask(t.Context(), 3)
	assert.False(t, ok)
	assert.Equal(t, saves, repo.saves, "no-op toggles do not persist")
}

func TestToggleTaskLeavesRichNoteAloneWhenDocumentIsUnreadable(t *testing.T) {
	repo := &fakeRepo{notes: []storage.Note{{
		ID:           "broken",
		Title:        "☐ a",
		Content:      "☐ a",
		CreatedDate:  time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
		RichTextData: []byte{0xff, 0xfe},
	}}}
	s := newTestStore(repo)
	s.Load(t.Context())

	_, ok := s.ToggleTask(t.Context(), 0)
	assert.False(t, ok)
	got, _ := s.Get("broken")
	assert.Equal(t, "☐ a", got.Content, "plain projection must not drift from the document")
	assert.Zero(t, repo.saves)
}

func TestToggleLineWithStaleIndexIsNoop(t *testing.T) {
	s := newTestStore(&fakeRepo{})
	n := s.Create(t.Context())
	s.UpdateContent(t.Context(), n.ID, "☐ a\n☐ b\n☐ c")
	stale := s.Tasks()[2]

	s.UpdateContent(t.Context(), n.ID, "☐ a")
	assert.False(t, s.ToggleLine(t.Context(), stale.NoteID, stale.LineIndex))
	got, _ := s.Get(n.ID)
	assert.Equal(t, "☐ a", got.Content)
}

func TestRichNoteKeepsPlainProjectionInSync(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestStore(repo)
	n := s.Create(t.Context())
	s.UpdateContent(t.Context(), n.ID, "# Trip\n☐ **passport**")

	require.True(t, s.SetRich(t.Context(), n.ID, true))
	got, _ := s.Get(n.ID)
	require.True(t, got.IsRich())
	assert.Equal(t, "Trip\n☐ passport", got.Content)
	assert.Equal(t, "Trip", got.Title)
	assert.Equal(t, "# Trip\n☐ **passport**", s.EditorText(n.ID))

	require.True(t, s.UpdateContent(t.Context(), n.ID, "# Trip\n☐ **passport**\n☐ _tickets_"))
	got, _ = s.Get(n.ID)
	assert.Equal(t, "Trip\n☐ passport\n☐ tickets", got.Content)

	_, ok := s.ToggleTask(t.Context(), 1)
	require.True(t, ok)
	got, _ = s.Get(n.ID)
	assert.Equal(t, "Trip\n☐ passport\n☑ tickets", got.Content)
	doc, err := richtext.MarkdownCodec{}.Decode(got.RichText)
	require.NoError(t, err)
	assert.Equal(t, "# Trip\n☐ **passport**\n☑ _tickets_", doc.Source)

	require.True(t, s.SetRich(t.Context(), n.ID, false))
	got, _ = s.Get(n.ID)
	assert.False(t, got.IsRich())
	assert.Equal(t, "Trip\n☐ passport\n☑ tickets", s.EditorText(n.ID))
}

func TestMetadataMutations(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestStore(repo)
	n := s.Create(t.Context())

	assert.True(t, s.SetPinned(t.Context(), n.ID, true))
	assert.False(t, s.SetPinned(t.Context(), n.ID, true))
	assert.True(t, s.SetColor(t.Context(), n.ID, model.ColorGreen))
	assert.False(t, s.SetColor(t.Context(), n.ID, model.Color("mauve")))
	assert.True(t, s.AddTag(t.Context(), n.ID, "work"))
	assert.False(t, s.AddTag(t.Context(), n.ID, "WORK"))
	assert.False(t, s.AddTag(t.Context(), n.ID, "  "))
	assert.True(t, s.AddTag(t.Context(), n.ID, "home"))
	assert.True(t, s.RemoveTag(t.Context(), n.ID, "Work"))
	assert.False(t, s.RemoveTag(t.Context(), n.ID, "work"))

	require.Len(t, repo.notes, 1)
	assert.True(t, repo.notes[0].IsPinned)
	assert.Equal(t, "green", repo.notes[0].Color)
	assert.Equal(t, []string{"home"}, repo.notes[0].Tags)
}

func TestJSONRoundTripThroughStoreIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	repo := storage.NewJSONFileRepository(path)
	s := newTestStore(repo)
	n := s.Create(t.Context())
	s.UpdateContent(t.Context(), n.ID, "Hello\n☐ world")
	s.AddTag(t.Context(), n.ID, "x")
	s.SetRich(t.Context(), n.ID, true)

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	reloaded := newTestStore(repo)
	reloaded.Load(t.Context())
	require.Equal(t, 1, reloaded.Len())
	reloaded.Save(t.Context())

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
	assert.Equal(t, string(first), string(second))
}

func TestSaveAfterLoadKeepsForeignColorAndEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	written := `[{"id":"x","title":"X","content":"X","createdDate":"2026-02-09T12:00:00Z","tags":[],"isPinned":false,"color":"teal"}]`
	require.NoError(t, os.WriteFile(path, []byte(written), 0o644))

	s := newTestStore(storage.NewJSONFileRepository(path))
	s.Load(t.Context())
	require.Equal(t, 1, s.Len())
	assert.Equal(t, model.Color("teal"), s.Notes()[0].Color)
	s.Save(t.Context())

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, written, string(saved))
}
