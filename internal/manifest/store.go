package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var ErrRunNotFound = errors.New("run not found")

// Store persists the history of generation runs
type Store interface {
	SaveRun(run *Run) error
	GetRun(id string) (*Run, error)
	// LoadRuns returns every stored run, newest first
	LoadRuns() ([]*Run, error)
	// LastRunID returns the ID of the most recently saved run, or "" if none
	LastRunID() (string, error)
	Close() error
}

func sortNewestFirst(runs []*Run) {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
}

func encodeJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return data, nil
}

func decodeJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}
