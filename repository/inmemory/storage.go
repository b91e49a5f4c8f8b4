package storage

import (
	apperrors "taskboard/internal/domain/errors"
)

// Storage is a throwaway in-memory state backend: nothing survives the
// process. Used by tests and as the fallback when a configured backend
// cannot be opened.
type Storage struct {
	blobs map[string][]byte
}

func NewStorage() *Storage {
	return &Storage{
		blobs: make(map[string][]byte),
	}
}

func (s *Storage) Save(key string, blob []byte) error {
	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.blobs[key] = stored
	return nil
}

func (s *Storage) Load(key string) ([]byte, error) {
	blob, exists := s.blobs[key]
	if !exists {
		return nil, apperrors.ErrStateNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}
