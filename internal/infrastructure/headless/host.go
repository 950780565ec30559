// Package headless provides an in-memory windowing host. It backs the trace
// replayer and the terminal simulator, and serves as the fake host in tests.
package headless

import (
	"sort"
	"sync"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/domain/entity"
)

// DefaultOrigin is where new popup windows are placed.
var DefaultOrigin = entity.Point{X: 100, Y: 100}

// Host is an in-memory HostWindowing, WindowFactory and UIScheduler.
// Callbacks run synchronously on the caller's goroutine, which plays the UI thread.
type Host struct {
	mu          sync.Mutex
	nextRef     entity.WindowRef
	windows     map[entity.WindowRef]*Window
	owners      map[entity.WindowRef]entity.WindowRef
	listeners   map[int]func(entity.WindowEvent)
	dispatchers map[int]func(entity.InputEvent) bool
	nextID      int
	focused     entity.WindowRef
	queue       []func()
	created     int
	failNext    error
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{
		windows:     make(map[entity.WindowRef]*Window),
		owners:      make(map[entity.WindowRef]entity.WindowRef),
		listeners:   make(map[int]func(entity.WindowEvent)),
		dispatchers: make(map[int]func(entity.InputEvent) bool),
	}
}

// AddWindow registers a host window (a main frame, a dialog) owned by owner.
// Pass entity.NoWindow for a top-level window.
func (h *Host) AddWindow(owner entity.WindowRef, bounds entity.Rect) entity.WindowRef {
	h.mu.Lock()
	defer h.mu.Unlock()

	ref := h.allocLocked()
	h.windows[ref] = &Window{host: h, ref: ref, bounds: bounds, visible: true}
	if owner != entity.NoWindow {
		h.owners[ref] = owner
	}
	return ref
}

func (h *Host) allocLocked() entity.WindowRef {
	h.nextRef++
	return h.nextRef
}

// SetOwner changes the owner of ref.
func (h *Host) SetOwner(ref, owner entity.WindowRef) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if owner == entity.NoWindow {
		delete(h.owners, ref)
		return
	}
	h.owners[ref] = owner
}

// SetBounds moves or resizes a window.
func (h *Host) SetBounds(ref entity.WindowRef, bounds entity.Rect) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[ref]
	if !ok {
		return false
	}
	w.bounds = bounds
	return true
}

// Window returns a window by ref.
func (h *Host) Window(ref entity.WindowRef) (*Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[ref]
	return w, ok
}

// Windows returns the live window refs, ascending.
func (h *Host) Windows() []entity.WindowRef {
	h.mu.Lock()
	defer h.mu.Unlock()
	refs := make([]entity.WindowRef, 0, len(h.windows))
	for ref := range h.windows {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs
}

// WindowAt returns the topmost visible window containing p. Newer windows
// stack above older ones.
func (h *Host) WindowAt(p entity.Point) (entity.WindowRef, bool) {
	refs := h.Windows()
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := len(refs) - 1; i >= 0; i-- {
		w, ok := h.windows[refs[i]]
		if ok && w.visible && !w.destroyed && w.bounds.Contains(p) {
			return w.ref, true
		}
	}
	return entity.NoWindow, false
}

// FailNextWindow makes the next NewWindow call return err.
func (h *Host) FailNextWindow(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failNext = err
}

// NewWindow implements port.WindowFactory.
func (h *Host) NewWindow(spec port.WindowSpec) (port.NativeWindow, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.failNext; err != nil {
		h.failNext = nil
		return nil, err
	}

	size := spec.DefaultSize.AtLeast(spec.MinSize)
	ref := h.allocLocked()
	w := &Window{
		host:    h,
		ref:     ref,
		title:   spec.Title,
		minSize: spec.MinSize,
		content: spec.Content,
		bounds:  entity.Rect{X: DefaultOrigin.X, Y: DefaultOrigin.Y, Width: size.Width, Height: size.Height},
	}
	h.windows[ref] = w
	h.created++
	return w, nil
}

// WindowsCreated counts NewWindow successes.
func (h *Host) WindowsCreated() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.created
}

// Subscribe implements port.HostWindowing.
func (h *Host) Subscribe(listener func(entity.WindowEvent)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.listeners[id] = listener
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// SubscriberCount returns the number of window event listeners.
func (h *Host) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// Owner implements port.HostWindowing.
func (h *Host) Owner(ref entity.WindowRef) (entity.WindowRef, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	owner, ok := h.owners[ref]
	return owner, ok
}

// FocusedWindow implements port.HostWindowing.
func (h *Host) FocusedWindow() (entity.WindowRef, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.focused, h.focused != entity.NoWindow
}

// AddKeyDispatcher implements port.HostWindowing.
func (h *Host) AddKeyDispatcher(dispatcher func(entity.InputEvent) bool) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.dispatchers[id] = dispatcher
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.dispatchers, id)
	}
}

// DispatcherCount returns the number of key dispatchers.
func (h *Host) DispatcherCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.dispatchers)
}

// Emit delivers ev to every listener registered when Emit was called.
func (h *Host) Emit(ev entity.WindowEvent) {
	h.mu.Lock()
	ids := make([]int, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]func(entity.WindowEvent), 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, h.listeners[id])
	}
	h.mu.Unlock()

	for _, l := range listeners {
		l(ev)
	}
}

// Focus moves keyboard focus to ref and emits activation and focus events.
func (h *Host) Focus(ref entity.WindowRef) {
	h.mu.Lock()
	h.focused = ref
	h.mu.Unlock()

	h.Emit(entity.NewFocusEvent(entity.WindowActivated, ref))
	h.Emit(entity.NewFocusEvent(entity.WindowFocusGained, ref))
}

// PressKey runs ev through the key dispatchers until one consumes it.
func (h *Host) PressKey(ev entity.InputEvent) bool {
	h.mu.Lock()
	ids := make([]int, 0, len(h.dispatchers))
	for id := range h.dispatchers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	dispatchers := make([]func(entity.InputEvent) bool, 0, len(ids))
	for _, id := range ids {
		dispatchers = append(dispatchers, h.dispatchers[id])
	}
	h.mu.Unlock()

	for _, d := range dispatchers {
		if d(ev) {
			return true
		}
	}
	return false
}

// RunLater implements port.UIScheduler by queueing fn until Drain.
func (h *Host) RunLater(fn func()) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	h.queue = append(h.queue, fn)
	h.mu.Unlock()
}

// Pending returns the number of queued tasks.
func (h *Host) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.queue)
}

// Drain runs queued tasks, including tasks they queue, and returns how many ran.
func (h *Host) Drain() int {
	ran := 0
	for {
		h.mu.Lock()
		if len(h.queue) == 0 {
			h.mu.Unlock()
			return ran
		}
		fn := h.queue[0]
		h.queue = h.queue[1:]
		h.mu.Unlock()

		fn()
		ran++
	}
}

func (h *Host) removeWindowLocked(ref entity.WindowRef) {
	delete(h.windows, ref)
	delete(h.owners, ref)
	for child, owner := range h.owners {
		if owner == ref {
			delete(h.owners, child)
		}
	}
	if h.focused == ref {
		h.focused = entity.NoWindow
	}
}
