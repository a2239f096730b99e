package config

import (
	"strings"
	"sync"
)

// MemoryStorage keeps dot-separated keys for the lifetime of the process.
// Nothing is persisted; values come from package defaults, the environment
// and command-line flags on every run.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Get returns all values at or below key, with key and its separator stripped
// from the returned keys. An exact match is returned under its full key.
func (s *MemoryStorage) Get(key string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	valMap := make(map[string]any)
	for k, v := range s.values {
		if k == key {
			valMap[k] = v
		} else if rest, found := strings.CutPrefix(k, key+"."); found {
			valMap[rest] = v
		}
	}
	if len(valMap) == 0 {
		return nil, ErrorNotFound
	}

	return valMap, nil
}

func (s *MemoryStorage) Unset(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range s.values {
		if k == key || strings.HasPrefix(k, key+".") {
			delete(s.values, k)
		}
	}
	return nil
}
