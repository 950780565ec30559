package headless

import (
	"sync"

	"github.com/bnema/findpopup/internal/application/port"
)

// Content is a headless content surface. Keys typed into it go to the
// installed key handler, the way a rendered page forwards keydown events.
type Content struct {
	mu       sync.Mutex
	handler  port.KeyHandler
	focuses  int
	disposed bool
}

// NewContent creates a content surface.
func NewContent() *Content {
	return &Content{}
}

// Component implements port.ContentSurface.
func (c *Content) Component() any { return c }

// Focus implements port.ContentSurface.
func (c *Content) Focus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focuses++
}

// SetKeyHandler implements port.ContentSurface.
func (c *Content) SetKeyHandler(handler port.KeyHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = handler
}

// Dispose implements port.ContentSurface.
func (c *Content) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.handler = nil
}

// TypeKey delivers a key-down in content encoding and reports whether it was consumed.
func (c *Content) TypeKey(keyCode, modifiers uint) bool {
	c.mu.Lock()
	handler := c.handler
	disposed := c.disposed
	c.mu.Unlock()

	if disposed || handler == nil {
		return false
	}
	return handler(keyCode, modifiers)
}

// HasKeyHandler reports whether a handler is installed.
func (c *Content) HasKeyHandler() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler != nil
}

// FocusCount returns how many times Focus ran.
func (c *Content) FocusCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focuses
}

// Disposed reports whether Dispose ran.
func (c *Content) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}
