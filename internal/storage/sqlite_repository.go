package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteRepository stores the same ordered collection in a sqlite database.
// Save rewrites every row inside one transaction.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one connection keeps the foreign_keys pragma in effect for every query
	db.SetMaxOpenConns(1)
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Load(ctx context.Context) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, content, created_at, rich_text, is_pinned, color
		FROM notes ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	out := make([]Note, 0)
	index := make(map[string]int)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		index[note.ID] = len(out)
		out = append(out, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tagRows, err := r.db.QueryContext(ctx, `SELECT note_id, tag FROM note_tags ORDER BY note_id, position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var noteID, tag string
		if err := tagRows.Scan(&noteID, &tag); err != nil {
			return nil, err
		}
		if i, ok := index[noteID]; ok {
			out[i].Tags = append(out[i].Tags, tag)
		}
	}
	return out, tagRows.Err()
}

func (r *SQLiteRepository) Save(ctx context.Context, notes []Note) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}
	for pos, in := range notes {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO notes (id, position, title, content, created_at, rich_text, is_pinned, color)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			in.ID, pos, in.Title, in.Content, mustTime(in.CreatedDate), nullBlob(in.RichTextData), boolInt(in.IsPinned), in.Color,
		); err != nil {
			return fmt.Errorf("insert note %s: %w", in.ID, err)
		}
		for tagPos, tag := range in.Tags {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO note_tags (note_id, position, tag) VALUES (?, ?, ?)`,
				in.ID, tagPos, tag,
			); err != nil {
				return fmt.Errorf("insert tag for %s: %w", in.ID, err)
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func nullBlob(v []byte) any {
	if len(v) == 0 {
		return nil
	}
	return v
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (Note, error) {
	var out Note
	var created string
	var rich []byte
	var pinned int
	if err := s.Scan(&out.ID, &out.Title, &out.Content, &created, &rich, &pinned, &out.Color); err != nil {
		return Note{}, err
	}
	createdAt, err := time.Parse(sqliteTimeLayout, created)
	if err != nil {
		return Note{}, fmt.Errorf("parse created_at for %s: %w", out.ID, err)
	}
	out.CreatedDate = createdAt
	if len(rich) > 0 {
		out.RichTextData = rich
	}
	out.IsPinned = pinned == 1
	return out, nil
}
