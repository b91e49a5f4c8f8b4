package storage

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "taskboard/internal/domain/errors"
)

// Storage keeps one JSON file per state key inside a data directory.
// This is the default backend: the closest Go equivalent of the
// client-local key-value storage the source app persisted into.
//
// Keys come from a fixed set of store constants and are used verbatim as
// file names.
type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Storage{dir: dir}, nil
}

// Save writes the blob to a temp file and renames it into place, so a
// crashed write never leaves a half-written state file behind.
func (s *Storage) Save(key string, blob []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("failed to write state %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write state %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Load(key string) ([]byte, error) {
	blob, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to read state %s: %w", key, err)
	}
	return blob, nil
}

func (s *Storage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
