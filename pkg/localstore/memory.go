package localstore

import (
	"context"
	"sync"
)

// Memory is an in-process Storage. It backs tests and the no-persistence
// deployment mode; contents live only for the process lifetime.
type Memory struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemory builds an empty in-memory Storage.
func NewMemory() *Memory {
	return &Memory{records: map[string][]byte{}}
}

func (m *Memory) Read(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Write(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.records[key] = stored
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, key)
	return nil
}
