package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"plantmate/internal/pm"
)

// FileStore is a filesystem-based implementation of the pm.Store interface.
// Each key is stored as its own file under the root directory:
//
//	<root>/
//	  spaces.json
//	  pm_user_plants.json
//	  ...
//
// Writes go through a temp file and rename so a crashed write never leaves a
// half-written value behind.
type FileStore struct {
	root string
}

// NewFileStore creates a file store rooted at the given directory, creating
// it if needed.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &FileStore{root: root}, nil
}

// path maps a key to its backing file. Keys are sanitized so a key can never
// escape the root directory.
func (f *FileStore) path(key string) string {
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(f.root, safe+".json")
}

// Get returns the value for key, with ok reporting presence.
func (f *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return data, true, nil
}

// Put stores value under key, replacing any previous value.
func (f *FileStore) Put(key string, value []byte) error {
	dest := f.path(key)

	tmp, err := os.CreateTemp(f.root, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Absent keys are a no-op.
func (f *FileStore) Delete(key string) error {
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// Close releases nothing for the file store.
func (f *FileStore) Close() error { return nil }

// Compile-time check that FileStore implements the pm.Store interface
var _ pm.Store = (*FileStore)(nil)
