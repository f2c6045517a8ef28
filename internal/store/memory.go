package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"
)

// MemoryPreferences is a PreferenceRepo that lives only as long as the
// process. It is used when the database is disabled.
type MemoryPreferences struct {
	mu     sync.Mutex
	values map[string]Preference
}

// NewMemoryPreferences returns an empty in-memory repo.
func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{values: make(map[string]Preference)}
}

func (m *MemoryPreferences) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.values[key]
	return p.Value, ok, nil
}

func (m *MemoryPreferences) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = Preference{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return nil
}

func (m *MemoryPreferences) List(context.Context) ([]Preference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Preference, 0, len(m.values))
	for _, p := range m.values {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Preference) int { return strings.Compare(a.Key, b.Key) })
	return out, nil
}

func (m *MemoryPreferences) Reset(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.values)
	return nil
}
