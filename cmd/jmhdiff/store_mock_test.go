package main

import (
	"jmhdiff/internal/history"
	"jmhdiff/internal/jmh"
)

// mockStore implements history.Store in memory for command tests.
type mockStore struct {
	saved  []history.Run
	latest *history.Run
	labels map[string]*history.Run
	counts map[string]int
	closed bool
}

func (m *mockStore) Save(label string, records []jmh.Record) (string, error) {
	id := "run-" + label
	m.saved = append(m.saved, history.Run{ID: id, Label: label, Records: records})
	return id, nil
}

func (m *mockStore) LoadLatest() (*history.Run, error) {
	if m.latest == nil {
		return nil, history.ErrNoRuns
	}
	return m.latest, nil
}

func (m *mockStore) LoadByLabel(label string) (*history.Run, error) {
	run, ok := m.labels[label]
	if !ok {
		return nil, history.ErrNoRuns
	}
	return run, nil
}

func (m *mockStore) List(limit int) ([]history.Run, error) {
	runs := m.saved
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func (m *mockStore) Count(runID string) (int, error) {
	return m.counts[runID], nil
}

func (m *mockStore) Close() error {
	m.closed = true
	return nil
}
