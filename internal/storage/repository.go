package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownBackend = errors.New("storage: unknown backend")

type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// Repository loads and replaces the whole ordered note collection.
// There are no partial writes.
type Repository interface {
	Load(ctx context.Context) ([]Note, error)
	Save(ctx context.Context, notes []Note) error
	Close() error
}

func ParseBackend(raw string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(raw))) {
	case "", BackendJSON:
		return BackendJSON, nil
	case BackendSQLite:
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, raw)
	}
}

func Open(backend Backend, path string) (Repository, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONFileRepository(path), nil
	case BackendSQLite:
		repo, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		if err := MigrateUp(repo.db); err != nil {
			_ = repo.Close()
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
