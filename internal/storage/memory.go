package storage

import (
	"context"
	"sync"
)

// Memory is an in-memory KV implementation. It backs tests and survives
// only for the process lifetime; "round-trip" tests reuse one Memory across
// two progress stores to simulate an app restart against the same backend.
type Memory struct {
	mu   sync.Mutex
	data map[string]string

	// FailWrites makes SetItem and RemoveItem return ErrInjected,
	// for exercising the write-failure path.
	FailWrites bool

	// FailReads makes GetItem return ErrInjected.
	FailReads bool
}

var _ KV = (*Memory)(nil)

// ErrInjected is returned by Memory when failure injection is enabled.
var ErrInjected = errInjected{}

type errInjected struct{}

func (errInjected) Error() string { return "injected storage failure" }

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// GetItem implements KV.
func (m *Memory) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads {
		return "", false, ErrInjected
	}
	v, ok := m.data[key]
	return v, ok, nil
}

// SetItem implements KV.
func (m *Memory) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrInjected
	}
	m.data[key] = value
	return nil
}

// RemoveItem implements KV.
func (m *Memory) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrInjected
	}
	delete(m.data, key)
	return nil
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
