package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileStore keeps the record in a TOML file at <dir>/<namespace>.toml.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by <dir>/<namespace>.toml. The file
// and directory are created on first Save.
func NewFileStore(dir, namespace string) *FileStore {
	return &FileStore{path: filepath.Join(dir, namespace+".toml")}
}

// Path returns the backing file path, e.g. for a Watcher.
func (s *FileStore) Path() string { return s.path }

// Load implements Store.
func (s *FileStore) Load(v any) (bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read record: %w", err)
	}
	if err := toml.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode record %s: %w", s.path, err)
	}
	return true, nil
}

// Save implements Store.
func (s *FileStore) Save(v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
