package store

import (
	"context"
	"sync"
)

// MemoryKV keeps slots in a map. Used by tests and throwaway sessions.
type MemoryKV struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{slots: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

func (m *MemoryKV) Close() error { return nil }
