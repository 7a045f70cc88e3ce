package manifest

import (
	"fmt"
	"sync"
)

// MemoryStore implements Store in memory (not persistent)
type MemoryStore struct {
	runs map[string][]byte
	last string
	mu   sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string][]byte)}
}

// SaveRun stores an encoded copy so later changes to run are not visible
func (m *MemoryStore) SaveRun(run *Run) error {
	data, err := encodeJSON(run)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[run.ID] = data
	m.last = run.ID
	return nil
}

func (m *MemoryStore) LastRunID() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last, nil
}

func (m *MemoryStore) GetRun(id string) (*Run, error) {
	m.mu.RLock()
	data, ok := m.runs[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	var run Run
	if err := decodeJSON(data, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (m *MemoryStore) LoadRuns() ([]*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]*Run, 0, len(m.runs))
	for _, data := range m.runs {
		var run Run
		if err := decodeJSON(data, &run); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	sortNewestFirst(runs)
	return runs, nil
}

// Close is a no-op for the memory store
func (m *MemoryStore) Close() error {
	return nil
}
