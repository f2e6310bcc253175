package store

import (
	"context"
	"sync"

	companionsdk "github.com/mindloop/companion-sdk-go"
)

// MemoryKV is a thread-safe, in-memory KVStore. Data is lost on restart;
// intended for tests and single-process embedding.
type MemoryKV struct {
	mu     sync.RWMutex
	data   map[string]string
	writes int
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get returns the stored value, or companionsdk.ErrKeyNotFound.
func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	if !ok {
		return "", companionsdk.ErrKeyNotFound
	}
	return val, nil
}

// Set stores the value under the key.
func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.writes++
	return nil
}

// Writes reports how many Set calls the store has absorbed. Tests use it to
// assert single-write semantics.
func (m *MemoryKV) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
