package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JSONFileRepository keeps every note in one JSON array on disk.
type JSONFileRepository struct {
	path string
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

func (r *JSONFileRepository) Path() string {
	return r.path
}

func (r *JSONFileRepository) Load(ctx context.Context) ([]Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Note{}, nil
		}
		return nil, fmt.Errorf("read notes file: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return []Note{}, nil
	}
	var notes []Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("decode notes file %s: %w", r.path, err)
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}

func (r *JSONFileRepository) Save(ctx context.Context, notes []Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := make([]Note, len(notes))
	for i, n := range notes {
		if n.Tags == nil {
			n.Tags = []string{}
		}
		out[i] = n
	}
	dir := filepath.Dir(r.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create notes dir: %w", err)
		}
	}
	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write notes file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace notes file: %w", err)
	}
	return nil
}

func (r *JSONFileRepository) Close() error {
	return nil
}
