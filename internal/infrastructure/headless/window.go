package headless

import "github.com/bnema/findpopup/internal/domain/entity"

// Window is a headless native window. Its state is guarded by the host lock.
type Window struct {
	host    *Host
	ref     entity.WindowRef
	title   string
	minSize entity.Size
	content any

	bounds    entity.Rect
	visible   bool
	destroyed bool
	shows     int
	focuses   int
}

// Ref implements port.NativeWindow.
func (w *Window) Ref() entity.WindowRef { return w.ref }

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// MinSize returns the minimum size the window was created with.
func (w *Window) MinSize() entity.Size { return w.minSize }

// Content returns the widget placed in the window.
func (w *Window) Content() any { return w.content }

// Show implements port.NativeWindow.
func (w *Window) Show() {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	if w.destroyed {
		return
	}
	w.visible = true
	w.shows++
}

// Hide implements port.NativeWindow.
func (w *Window) Hide() {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	w.visible = false
}

// IsVisible implements port.NativeWindow.
func (w *Window) IsVisible() bool {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.visible && !w.destroyed
}

// BoundsOnScreen implements port.NativeWindow.
func (w *Window) BoundsOnScreen() (entity.Rect, bool) {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	if !w.visible || w.destroyed {
		return entity.Rect{}, false
	}
	return w.bounds, true
}

// Focus implements port.NativeWindow. It moves host focus silently; use
// Host.Focus to also emit focus events.
func (w *Window) Focus() {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	if w.destroyed {
		return
	}
	w.focuses++
	w.host.focused = w.ref
}

// Destroy implements port.NativeWindow.
func (w *Window) Destroy() {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.visible = false
	w.host.removeWindowLocked(w.ref)
}

// Destroyed reports whether Destroy ran.
func (w *Window) Destroyed() bool {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.destroyed
}

// ShowCount returns how many times Show ran.
func (w *Window) ShowCount() int {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.shows
}

// FocusCount returns how many times Focus ran.
func (w *Window) FocusCount() int {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.focuses
}
