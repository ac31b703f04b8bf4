package storage

import (
	"sort"
	"strconv"
	"sync"
)

// MemStore is an in-memory Store used by tests and by collaborators
// that want a throwaway state space (e.g. a demo mode). Safe for
// concurrent use.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
	writes int64
}

func NewMemStore() *MemStore {
	return &MemStore{values: map[string]string{}}
}

func (m *MemStore) Get(key, fallback string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return fallback
	}
	return v
}

func (m *MemStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
}

func (m *MemStore) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	m.writes++
}

func (m *MemStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *MemStore) ChangeToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return strconv.FormatInt(m.writes, 10)
}
