// Package prefs keeps small per-user settings that must survive restarts,
// such as the selected child.
package prefs

import (
	"context"
	"sync"
)

// KeyActiveChild stores the id of the child whose records are shown.
const KeyActiveChild = "selectedChildId"

// Store is a durable key-value slot namespaced by user.
type Store interface {
	Get(ctx context.Context, userID, key string) (value string, ok bool, err error)
	Set(ctx context.Context, userID, key, value string) error
	Delete(ctx context.Context, userID, key string) error
}

// Memory is a non-durable Store for tests and STORE_DRIVER=memory.
type Memory struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]map[string]string)}
}

func (m *Memory) Get(_ context.Context, userID, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[userID][key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, userID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values[userID] == nil {
		m.values[userID] = make(map[string]string)
	}
	m.values[userID][key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, userID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values[userID], key)
	return nil
}
