// Package store provides the load/save backends for schema documents. The
// transform core never touches these; callers pick a backend and hand the
// text across.
package store

import (
	"context"
	"fmt"
	"os"
)

// Store loads and saves a schema document as raw text. Implementations do
// not interpret the text.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, text string) error
}

// FileStore reads and writes a schema file on disk.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read schema file: %w", err)
	}
	return string(data), nil
}

func (s *FileStore) Save(ctx context.Context, text string) error {
	if err := os.WriteFile(s.Path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}
	return nil
}
