package store

import (
	"sync"

	"plantmate/internal/pm"
)

// MemoryStore is an in-memory implementation of the pm.Store interface.
// It is the test double and the `type = "memory"` backend; all data is lost
// on Close. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get returns the value for key, with ok reporting presence.
func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers cannot mutate the stored value.
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Put stores value under key, replacing any previous value.
func (m *MemoryStore) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

// Delete removes key. Absent keys are a no-op.
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Close releases nothing for the in-memory store.
func (m *MemoryStore) Close() error { return nil }

// Compile-time check that MemoryStore implements the pm.Store interface
var _ pm.Store = (*MemoryStore)(nil)
