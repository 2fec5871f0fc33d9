package memory

import (
	"context"
	"sync"

	"github.com/riskops-lab/themis/pkg/domain/interfaces"
	"github.com/riskops-lab/themis/pkg/domain/model"
)

// Memory is an in-memory register store for development and tests.
type Memory struct {
	mu      sync.RWMutex
	entries []*model.RiskEntry
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) ([]*model.RiskEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return copies to prevent external modification
	out := make([]*model.RiskEntry, len(m.entries))
	for i, entry := range m.entries {
		out[i] = entry.Clone()
	}
	return out, nil
}

func (m *Memory) Save(ctx context.Context, entries []*model.RiskEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]*model.RiskEntry, len(entries))
	for i, entry := range entries {
		stored[i] = entry.Clone()
	}
	m.entries = stored
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = nil
	return nil
}

func (m *Memory) Close() error {
	return nil
}
