// Package gtkhost adapts a GTK 4 application to the popup's host ports:
// window and pointer events, key dispatch, window creation, UI scheduling,
// the WebKit content surface and gio actions.
package gtkhost

import (
	"context"
	"sort"
	"sync"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/bnema/findpopup/internal/infrastructure/gtkhost/keybridge"
	"github.com/bnema/findpopup/internal/logging"
)

// OutsidePoint is the location reported for pointer events over a window
// other than the popup. GTK 4 has no global coordinates, so each window
// reports its own surface coordinates and only the popup's are comparable
// with its bounds.
var OutsidePoint = entity.Point{X: -1, Y: -1}

type tracked struct {
	window      *gtk.Window
	controllers []gtk.EventControllerer
	activeSig   glib.SignalHandle
	// comparable marks windows whose surface coordinates are reported as is.
	comparable bool
	// content is the native handle of the embedded page widget, zero if none.
	content uintptr
}

// maxFocusDepth bounds the walk from the focus widget to its toplevel.
const maxFocusDepth = 64

// Host implements port.HostWindowing over a gtk.Application. Every window the
// application owns is tracked through window-added and window-removed.
// All methods except Subscribe and AddKeyDispatcher must run on the GTK thread.
type Host struct {
	app    *gtk.Application
	logger zerolog.Logger

	mu          sync.Mutex
	nextRef     entity.WindowRef
	windows     map[entity.WindowRef]*tracked
	refs        map[uintptr]entity.WindowRef
	listeners   map[int]func(entity.WindowEvent)
	dispatchers map[int]func(entity.InputEvent) bool
	nextID      int
	addedSig    glib.SignalHandle
	removedSig  glib.SignalHandle
}

// NewHost starts tracking the application's windows, including those that
// already exist.
func NewHost(ctx context.Context, app *gtk.Application) *Host {
	h := &Host{
		app:         app,
		logger:      *logging.FromContext(logging.WithComponent(ctx, "gtk-host")),
		windows:     make(map[entity.WindowRef]*tracked),
		refs:        make(map[uintptr]entity.WindowRef),
		listeners:   make(map[int]func(entity.WindowEvent)),
		dispatchers: make(map[int]func(entity.InputEvent) bool),
	}

	for _, w := range app.Windows() {
		h.track(w)
	}
	h.addedSig = app.ConnectWindowAdded(func(w *gtk.Window) {
		h.track(w)
	})
	h.removedSig = app.ConnectWindowRemoved(func(w *gtk.Window) {
		h.forget(w)
	})
	return h
}

func windowKey(w *gtk.Window) uintptr {
	return w.Object.Native()
}

// track registers w and attaches the event controllers. Tracking the same
// window twice returns the existing ref.
func (h *Host) track(w *gtk.Window) entity.WindowRef {
	h.mu.Lock()
	if ref, ok := h.refs[windowKey(w)]; ok {
		h.mu.Unlock()
		return ref
	}
	h.nextRef++
	ref := h.nextRef
	t := &tracked{window: w}
	h.windows[ref] = t
	h.refs[windowKey(w)] = ref
	h.mu.Unlock()

	motion := gtk.NewEventControllerMotion()
	motion.SetPropagationPhase(gtk.PhaseCapture)
	motion.ConnectEnter(func(x, y float64) {
		h.Emit(entity.NewMouseEvent(entity.MouseEntered, ref, h.location(ref, x, y)))
	})
	motion.ConnectMotion(func(x, y float64) {
		h.Emit(entity.NewMouseEvent(entity.MouseMoved, ref, h.location(ref, x, y)))
	})
	motion.ConnectLeave(func() {
		h.Emit(entity.WindowEvent{Kind: entity.MouseExited, Target: ref})
	})

	click := gtk.NewGestureClick()
	click.SetButton(0)
	click.SetPropagationPhase(gtk.PhaseCapture)
	click.ConnectPressed(func(_ int, x, y float64) {
		h.Emit(entity.NewMouseEvent(entity.MousePressed, ref, h.location(ref, x, y)))
	})

	keys := gtk.NewEventControllerKey()
	keys.SetPropagationPhase(gtk.PhaseCapture)
	keys.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		// Keys typed into the page reach it and come back over the key bridge.
		if keybridge.RouteKey(focusAncestry(w), h.contentOf(ref)) == keybridge.RouteContent {
			return false
		}
		return h.dispatchKey(entity.InputEvent{
			Source:    entity.SourceHost,
			Kind:      entity.KeyDown,
			KeyCode:   keyval,
			Modifiers: uint(state),
		})
	})

	w.AddController(motion)
	w.AddController(click)
	w.AddController(keys)

	activeSig := w.NotifyProperty("is-active", func() {
		if w.IsActive() {
			h.Emit(entity.NewFocusEvent(entity.WindowActivated, ref))
			h.Emit(entity.NewFocusEvent(entity.WindowFocusGained, ref))
		}
	})

	h.mu.Lock()
	t.controllers = []gtk.EventControllerer{motion, click, keys}
	t.activeSig = activeSig
	h.mu.Unlock()

	h.logger.Debug().Uint64("window", uint64(ref)).Str("title", w.Title()).Msg("tracking window")
	return ref
}

func (h *Host) forget(w *gtk.Window) {
	h.mu.Lock()
	ref, ok := h.refs[windowKey(w)]
	if !ok {
		h.mu.Unlock()
		return
	}
	t := h.windows[ref]
	delete(h.refs, windowKey(w))
	delete(h.windows, ref)
	h.mu.Unlock()

	for _, c := range t.controllers {
		w.RemoveController(c)
	}
	w.HandlerDisconnect(t.activeSig)
}

// markComparable makes the pointer locations of ref comparable with its bounds.
func (h *Host) markComparable(ref entity.WindowRef) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.windows[ref]; ok {
		t.comparable = true
	}
}

// markContent records widget as the page embedded in ref.
func (h *Host) markContent(ref entity.WindowRef, widget gtk.Widgetter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.windows[ref]; ok {
		t.content = widgetKey(widget)
	}
}

func (h *Host) contentOf(ref entity.WindowRef) uintptr {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.windows[ref]; ok {
		return t.content
	}
	return 0
}

func widgetKey(widget gtk.Widgetter) uintptr {
	return coreglib.BaseObject(widget).Native()
}

// focusAncestry lists the focus widget of w and its parents.
func focusAncestry(w *gtk.Window) []uintptr {
	var chain []uintptr
	focus := w.Focus()
	for i := 0; focus != nil && i < maxFocusDepth; i++ {
		chain = append(chain, widgetKey(focus))
		focus = gtk.BaseWidget(focus).Parent()
	}
	return chain
}

func (h *Host) location(ref entity.WindowRef, x, y float64) entity.Point {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.windows[ref]; ok && t.comparable {
		return entity.Point{X: int(x), Y: int(y)}
	}
	return OutsidePoint
}

// Ref returns the ref of a tracked window.
func (h *Host) Ref(w *gtk.Window) (entity.WindowRef, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ref, ok := h.refs[windowKey(w)]
	return ref, ok
}

// Subscribe implements port.HostWindowing.
func (h *Host) Subscribe(listener func(entity.WindowEvent)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = listener

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.listeners, id)
		})
	}
}

// AddKeyDispatcher implements port.HostWindowing.
func (h *Host) AddKeyDispatcher(dispatcher func(entity.InputEvent) bool) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.dispatchers[id] = dispatcher

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.dispatchers, id)
		})
	}
}

// Owner implements port.HostWindowing using the transient-for relation.
func (h *Host) Owner(ref entity.WindowRef) (entity.WindowRef, bool) {
	h.mu.Lock()
	t, ok := h.windows[ref]
	h.mu.Unlock()
	if !ok {
		return entity.NoWindow, false
	}

	parent := t.window.TransientFor()
	if parent == nil {
		return entity.NoWindow, false
	}
	return h.Ref(parent)
}

// FocusedWindow implements port.HostWindowing.
func (h *Host) FocusedWindow() (entity.WindowRef, bool) {
	active := h.app.ActiveWindow()
	if active == nil {
		return entity.NoWindow, false
	}
	return h.Ref(active)
}

// Emit delivers ev to every listener outside the lock.
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

func (h *Host) dispatchKey(ev entity.InputEvent) bool {
	h.mu.Lock()
	dispatchers := make([]func(entity.InputEvent) bool, 0, len(h.dispatchers))
	for _, d := range h.dispatchers {
		dispatchers = append(dispatchers, d)
	}
	h.mu.Unlock()

	for _, d := range dispatchers {
		if d(ev) {
			return true
		}
	}
	return false
}

// Close stops tracking windows.
func (h *Host) Close() {
	h.app.HandlerDisconnect(h.addedSig)
	h.app.HandlerDisconnect(h.removedSig)

	h.mu.Lock()
	windows := make([]*gtk.Window, 0, len(h.windows))
	for _, t := range h.windows {
		windows = append(windows, t.window)
	}
	h.mu.Unlock()

	for _, w := range windows {
		h.forget(w)
	}
}
