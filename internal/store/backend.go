package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Backend is the durable-storage boundary for the whole-snapshot document.
// Read returns (nil, nil) when no snapshot has ever been written.
type Backend interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileBackend persists the snapshot as a single JSON file. Writes are
// whole-file replacements: two processes sharing the same path overwrite each
// other at snapshot granularity, last write wins.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend writing to path. Parent directories are
// created on first write.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the backing file path.
func (b *FileBackend) Path() string { return b.path }

// Read returns the current snapshot bytes, or (nil, nil) if the file does
// not exist yet.
func (b *FileBackend) Read() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", b.path, err)
	}
	return data, nil
}

// Write replaces the snapshot file.
func (b *FileBackend) Write(data []byte) error {
	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", b.path, err)
	}
	return nil
}
