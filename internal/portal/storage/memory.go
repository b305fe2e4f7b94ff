package storage

import (
	"context"
	"sync"
)

// MemoryStorage is a process-local Storage, used in tests and for runs that
// should leave nothing behind.
type MemoryStorage struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: make(map[string][]byte)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.entries[key]), nil
}

func (m *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = clone(value)
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Update stages fn's writes and applies them only when fn succeeds.
func (m *MemoryStorage) Update(ctx context.Context, fn func(ctx context.Context, tx Storage) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memoryTx{parent: m.entries, staged: make(map[string][]byte), deleted: make(map[string]bool)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	for key := range tx.deleted {
		delete(m.entries, key)
	}
	for key, value := range tx.staged {
		m.entries[key] = value
	}
	return nil
}

// memoryTx is the staging view handed to Update callbacks. The parent lock is
// held for its whole lifetime.
type memoryTx struct {
	parent  map[string][]byte
	staged  map[string][]byte
	deleted map[string]bool
}

func (t *memoryTx) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := t.staged[key]; ok {
		return clone(v), nil
	}
	if t.deleted[key] {
		return nil, nil
	}
	return clone(t.parent[key]), nil
}

func (t *memoryTx) Set(_ context.Context, key string, value []byte) error {
	delete(t.deleted, key)
	t.staged[key] = clone(value)
	return nil
}

func (t *memoryTx) Delete(_ context.Context, key string) error {
	delete(t.staged, key)
	t.deleted[key] = true
	return nil
}

func (t *memoryTx) Update(ctx context.Context, fn func(ctx context.Context, tx Storage) error) error {
	return fn(ctx, t)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}
