package controller

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds the controller for one owning context.
type Factory func(contextID string) (*PopupController, error)

// Registry keeps one controller per owning context (workspace or project).
type Registry struct {
	factory Factory

	mu          sync.Mutex
	controllers map[string]*PopupController
}

// NewRegistry creates an empty registry.
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		factory:     factory,
		controllers: make(map[string]*PopupController),
	}
}

// Get returns the controller for contextID, creating it on first use.
func (r *Registry) Get(contextID string) (*PopupController, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.controllers[contextID]; ok {
		return c, nil
	}
	c, err := r.factory(contextID)
	if err != nil {
		return nil, fmt.Errorf("create popup controller for %q: %w", contextID, err)
	}
	r.controllers[contextID] = c
	return c, nil
}

// Lookup returns an existing controller without creating one.
func (r *Registry) Lookup(contextID string) (*PopupController, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.controllers[contextID]
	return c, ok
}

// Preload creates the controller and its popup without showing it.
func (r *Registry) Preload(contextID string) error {
	c, err := r.Get(contextID)
	if err != nil {
		return err
	}
	return c.Preload()
}

// Show shows the popup of contextID.
func (r *Registry) Show(contextID string) error {
	c, err := r.Get(contextID)
	if err != nil {
		return err
	}
	return c.ShowPopup()
}

// Close disposes and forgets the controller of contextID.
func (r *Registry) Close(contextID string) {
	r.mu.Lock()
	c, ok := r.controllers[contextID]
	delete(r.controllers, contextID)
	r.mu.Unlock()

	if ok {
		c.Dispose()
	}
}

// CloseAll disposes every controller.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	controllers := r.controllers
	r.controllers = make(map[string]*PopupController)
	r.mu.Unlock()

	for _, c := range controllers {
		c.Dispose()
	}
}

// ContextIDs returns the registered context ids, sorted.
func (r *Registry) ContextIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.controllers))
	for id := range r.controllers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
