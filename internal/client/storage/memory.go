package storage

import (
	"context"
	"sync"
)

// MemoryStorage keeps slots in a map. It is safe for concurrent use.
type MemoryStorage struct {
	mu    sync.RWMutex
	slots map[Slot]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{slots: make(map[Slot]string)}
}

func (m *MemoryStorage) Get(_ context.Context, slot Slot) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[slot]
	return v, ok
}

func (m *MemoryStorage) Set(_ context.Context, slot Slot, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = value
}

func (m *MemoryStorage) Remove(_ context.Context, slots ...Slot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range slots {
		delete(m.slots, s)
	}
}

func (m *MemoryStorage) Update(_ context.Context, changes Changes) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for s, v := range changes.Set {
		m.slots[s] = v
	}
	for _, s := range changes.Remove {
		delete(m.slots, s)
	}
}

// NopStorage persists nothing.
type NopStorage struct{}

func (NopStorage) Get(context.Context, Slot) (string, bool) { return "", false }
func (NopStorage) Set(context.Context, Slot, string)        {}
func (NopStorage) Remove(context.Context, ...Slot)          {}
func (NopStorage) Update(context.Context, Changes)          {}
