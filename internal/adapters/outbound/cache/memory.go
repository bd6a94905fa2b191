package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pkgscope/pkgscope/internal/domain"
)

// DefaultMemorySize is the number of entries a Memory cache keeps.
const DefaultMemorySize = 256

// Memory is an in-process domain.CacheStore backed by an LRU. It is safe
// for concurrent use and is what the MCP server uses between tool calls.
type Memory struct {
	entries *lru.Cache[string, *domain.CacheEntry]
}

func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		size = DefaultMemorySize
	}
	entries, err := lru.New[string, *domain.CacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &Memory{entries: entries}, nil
}

func (m *Memory) Load(key string) (*domain.CacheEntry, error) {
	entry, ok := m.entries.Get(key)
	if !ok {
		return nil, nil
	}
	return entry, nil
}

func (m *Memory) Save(entry *domain.CacheEntry) error {
	m.entries.Add(entry.Key, entry)
	return nil
}

func (m *Memory) Invalidate(key string) error {
	m.entries.Remove(key)
	return nil
}

func (m *Memory) Len() int { return m.entries.Len() }
