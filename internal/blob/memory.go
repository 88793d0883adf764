package blob

import (
	"context"
	"sync"

	"github.com/alexanderramin/journey/internal/domain"
)

// Memory is a process-lifetime store; payloads vanish when the process exits.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]Blob
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]Blob)}
}

func (m *Memory) Put(_ context.Context, b Blob) (string, error) {
	id := domain.NewID()
	b.Data = append([]byte(nil), b.Data...)
	m.mu.Lock()
	m.blobs[id] = b
	m.mu.Unlock()
	return id, nil
}

func (m *Memory) Get(_ context.Context, id string) (*Blob, bool, error) {
	m.mu.RLock()
	b, ok := m.blobs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	b.Data = append([]byte(nil), b.Data...)
	return &b, true, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.blobs, id)
	m.mu.Unlock()
	return nil
}

// Evict drops every payload, as when a session ends.
func (m *Memory) Evict() {
	m.mu.Lock()
	m.blobs = make(map[string]Blob)
	m.mu.Unlock()
}
