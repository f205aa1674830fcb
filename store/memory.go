package store

import (
	"fmt"
	"sync"
)

// MemoryStore implements TeamStore in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	teams map[string]SavedTeam
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{teams: make(map[string]SavedTeam)}
}

func (m *MemoryStore) Save(t *SavedTeam) (*SavedTeam, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := *t
	if saved.ID == "" {
		saved.ID = genID(string(saved.Kind))
	} else if _, ok := m.teams[saved.ID]; !ok {
		return nil, fmt.Errorf("%s: %w", saved.ID, ErrNotFound)
	}
	saved.Timestamp = now()
	m.teams[saved.ID] = saved
	return &saved, nil
}

func (m *MemoryStore) List(kind Kind) ([]SavedTeam, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []SavedTeam{}
	for _, t := range m.teams {
		if kind == "" || t.Kind == kind {
			out = append(out, t)
		}
	}
	sortNewest(out)
	return out, nil
}

func (m *MemoryStore) Get(id string) (*SavedTeam, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.teams[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return &t, nil
}

func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[id]; !ok {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	delete(m.teams, id)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
