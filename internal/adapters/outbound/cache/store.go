package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkgscope/pkgscope/internal/domain"
)

// Store is a file-based implementation of domain.CacheStore. Each entry is
// one JSON file named after its key.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created on first Save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string { return s.dir }

// Load reads an entry from disk. Returns (nil, nil) if no entry exists.
func (s *Store) Load(key string) (*domain.CacheEntry, error) {
	data, err := os.ReadFile(s.entryPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no cache is not an error
		}
		return nil, err
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decoding cache entry %s: %w", key, err)
	}
	return &entry, nil
}

// Save writes an entry to disk, creating directories as needed. The file is
// written to a temporary name first so readers never see a partial entry.
func (s *Store) Save(entry *domain.CacheEntry) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, entry.Key+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.entryPath(entry.Key))
}

// Invalidate removes the entry for key.
func (s *Store) Invalidate(key string) error {
	if err := os.Remove(s.entryPath(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	return os.RemoveAll(s.dir)
}

func (s *Store) entryPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}
