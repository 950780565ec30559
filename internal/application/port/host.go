package port

import "github.com/bnema/findpopup/internal/domain/entity"

// HostWindowing is the host's global windowing surface.
// All callbacks are delivered on the UI thread.
type HostWindowing interface {
	// Subscribe registers a listener for every window and mouse event in the
	// application. The returned function removes it.
	Subscribe(listener func(entity.WindowEvent)) (unsubscribe func())

	// Owner returns the window that owns ref, if any.
	Owner(ref entity.WindowRef) (entity.WindowRef, bool)

	// FocusedWindow returns the window currently holding keyboard focus.
	FocusedWindow() (entity.WindowRef, bool)

	// AddKeyDispatcher registers a key listener that runs before normal
	// dispatch. Returning true consumes the event.
	AddKeyDispatcher(dispatcher func(entity.InputEvent) bool) (remove func())
}

// UIScheduler submits work to the UI thread. RunLater is safe from any goroutine.
type UIScheduler interface {
	RunLater(fn func())
}

// UISchedulerFunc adapts a function to UIScheduler.
type UISchedulerFunc func(fn func())

// RunLater implements UIScheduler.
func (f UISchedulerFunc) RunLater(fn func()) {
	f(fn)
}
