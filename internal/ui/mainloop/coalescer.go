// Package mainloop holds helpers for work submitted to the UI thread.
package mainloop

import "sync"

// Coalescer merges bursts of same-key UI-thread tasks.
// While a task for a key is queued, later posts for that key only replace
// the callback that will run.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer that schedules through post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending: make(map[string]func()),
		post:    post,
	}
}

// Post schedules fn under key. It reports whether a new task was scheduled;
// false means fn was merged into an already queued task or dropped.
func (c *Coalescer) Post(key string, fn func()) bool {
	if fn == nil || key == "" {
		return false
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return false
	}
	_, queued := c.pending[key]
	c.pending[key] = fn
	if queued {
		c.mu.Unlock()
		return false
	}
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
	return true
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.pending[key]
	delete(c.pending, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if destroyed || fn == nil {
		return
	}
	fn()
}

// Pending reports whether a task for key is queued and not yet run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[key]
	return ok
}

// Destroy drops queued work and rejects further posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]func(){}
	c.mu.Unlock()
}
