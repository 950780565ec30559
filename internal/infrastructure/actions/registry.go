// Package actions provides in-process action registries.
package actions

import (
	"sort"
	"sync"

	"github.com/bnema/findpopup/internal/application/port"
)

// Map is a mutable in-process action registry.
type Map struct {
	mu      sync.RWMutex
	actions map[string]port.Action
}

var _ port.ActionRegistry = (*Map)(nil)

// NewMap creates an empty registry.
func NewMap() *Map {
	return &Map{actions: make(map[string]port.Action)}
}

// Register binds id to action, replacing any previous binding.
// A nil action removes the binding.
func (m *Map) Register(id string, action port.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if action == nil {
		delete(m.actions, id)
		return
	}
	m.actions[id] = action
}

// Lookup implements port.ActionRegistry.
func (m *Map) Lookup(id string) (port.Action, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.actions[id]
	return a, ok
}

// IDs returns the registered ids, sorted.
func (m *Map) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.actions))
	for id := range m.actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Chain consults registries in order and returns the first match.
type Chain []port.ActionRegistry

var _ port.ActionRegistry = Chain(nil)

// Lookup implements port.ActionRegistry.
func (c Chain) Lookup(id string) (port.Action, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if a, ok := r.Lookup(id); ok {
			return a, true
		}
	}
	return nil, false
}
