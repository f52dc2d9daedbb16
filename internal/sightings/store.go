package sightings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrMalformedStore is returned when the storage artifact exists but cannot be parsed.
var ErrMalformedStore = errors.New("malformed sightings store")

// Store loads and saves the whole Collection.
//
// Load returns an empty Collection, not an error, when nothing has been
// saved yet. Save replaces the stored Collection in full.
type Store interface {
	Load() (Collection, error)
	Save(c Collection) error
}

// JSONStore keeps the Collection in a single JSON file
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the file at path
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the storage file path
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the Collection from disk
func (s *JSONStore) Load() (Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Collection{}, nil
		}
		return nil, fmt.Errorf("failed to read sightings: %w", err)
	}

	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedStore, s.path, err)
	}
	if c == nil {
		c = Collection{}
	}

	return c, nil
}

// Save writes the Collection to disk, replacing the previous contents
func (s *JSONStore) Save(c Collection) error {
	if c == nil {
		c = Collection{}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create sightings directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sightings: %w", err)
	}

	// Write atomically via temp file
	tmpPath := tempPath(s.path)
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write sightings: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace sightings: %w", err)
	}

	return nil
}

// tempPath returns a unique sibling of path for write-then-rename.
func tempPath(path string) string {
	return fmt.Sprintf("%s.%s.tmp", path, uuid.NewString()[:8])
}
