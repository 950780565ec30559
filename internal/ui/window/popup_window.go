// Package window wraps the native top-level window that hosts the popup.
package window

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/bnema/findpopup/internal/logging"
	"github.com/rs/zerolog"
)

const (
	defaultTitle     = "Find"
	defaultMinWidth  = 750
	defaultMinHeight = 420
	defaultWidth     = 1200
	defaultHeight    = 800
)

// Options configures the popup window.
type Options struct {
	Title       string
	MinSize     entity.Size
	DefaultSize entity.Size
}

// DefaultOptions returns the stock popup geometry.
func DefaultOptions() Options {
	return Options{
		Title:       defaultTitle,
		MinSize:     entity.Size{Width: defaultMinWidth, Height: defaultMinHeight},
		DefaultSize: entity.Size{Width: defaultWidth, Height: defaultHeight},
	}
}

func (o Options) normalized() Options {
	if o.Title == "" {
		o.Title = defaultTitle
	}
	if o.MinSize.Width <= 0 || o.MinSize.Height <= 0 {
		o.MinSize = entity.Size{Width: defaultMinWidth, Height: defaultMinHeight}
	}
	if o.DefaultSize.Width <= 0 || o.DefaultSize.Height <= 0 {
		o.DefaultSize = entity.Size{Width: defaultWidth, Height: defaultHeight}
	}
	o.DefaultSize = o.DefaultSize.AtLeast(o.MinSize)
	return o
}

// PopupWindow is the borderless, movable popup window.
// The window and its content are reused across show/hide cycles.
type PopupWindow struct {
	native  port.NativeWindow
	content port.ContentSurface
	opts    Options
	logger  zerolog.Logger

	mu       sync.RWMutex
	visible  bool
	disposed bool
}

// New builds the native window around content. content may be nil, in which
// case the window is created empty.
func New(ctx context.Context, factory port.WindowFactory, content port.ContentSurface, opts Options) (*PopupWindow, error) {
	opts = opts.normalized()

	spec := port.WindowSpec{
		Title:       opts.Title,
		MinSize:     opts.MinSize,
		DefaultSize: opts.DefaultSize,
	}
	if content != nil {
		spec.Content = content.Component()
	}

	native, err := factory.NewWindow(spec)
	if err != nil {
		return nil, fmt.Errorf("create popup window: %w", err)
	}
	if native == nil {
		return nil, fmt.Errorf("create popup window: factory returned nil window")
	}

	log := logging.FromContext(ctx)
	pw := &PopupWindow{
		native:  native,
		content: content,
		opts:    opts,
		logger:  log.With().Str("component", "popup-window").Uint64("window", uint64(native.Ref())).Logger(),
	}

	pw.logger.Debug().
		Str("title", opts.Title).
		Int("min_width", opts.MinSize.Width).
		Int("min_height", opts.MinSize.Height).
		Msg("popup window created")

	return pw, nil
}

// Ref returns the native window identity.
func (pw *PopupWindow) Ref() entity.WindowRef {
	return pw.native.Ref()
}

// Options returns the normalized window options.
func (pw *PopupWindow) Options() Options {
	return pw.opts
}

// Show makes the window visible.
func (pw *PopupWindow) Show() {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	if pw.disposed {
		return
	}
	pw.native.Show()
	pw.visible = true
}

// FocusContent requests keyboard focus for the window and its content.
func (pw *PopupWindow) FocusContent() {
	pw.mu.RLock()
	disposed := pw.disposed
	pw.mu.RUnlock()
	if disposed {
		return
	}

	pw.native.Focus()
	if pw.content != nil {
		pw.content.Focus()
	}
}

// Hide makes the window invisible without destroying it. Hiding a hidden
// window is a no-op.
func (pw *PopupWindow) Hide() {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	if pw.disposed || !pw.visible {
		return
	}
	pw.native.Hide()
	pw.visible = false
}

// IsVisible reports whether the window is showing.
func (pw *PopupWindow) IsVisible() bool {
	pw.mu.RLock()
	defer pw.mu.RUnlock()
	return pw.visible && !pw.disposed
}

// BoundsOnScreen returns the window rectangle in screen coordinates, or false
// when the window is hidden, disposed or not yet realized.
func (pw *PopupWindow) BoundsOnScreen() (entity.Rect, bool) {
	pw.mu.RLock()
	showing := pw.visible && !pw.disposed
	pw.mu.RUnlock()
	if !showing {
		return entity.Rect{}, false
	}
	return pw.native.BoundsOnScreen()
}

// Bounds is BoundsOnScreen with an error for callers that prefer one.
func (pw *PopupWindow) Bounds() (entity.Rect, error) {
	r, ok := pw.BoundsOnScreen()
	if !ok {
		return entity.Rect{}, entity.ErrWindowNotRealized
	}
	return r, nil
}

// Destroy releases the native window. Safe to call more than once.
func (pw *PopupWindow) Destroy() {
	pw.mu.Lock()
	if pw.disposed {
		pw.mu.Unlock()
		return
	}
	pw.disposed = true
	pw.visible = false
	pw.mu.Unlock()

	pw.native.Destroy()
	pw.logger.Debug().Msg("popup window destroyed")
}

// IsDisposed reports whether Destroy has run.
func (pw *PopupWindow) IsDisposed() bool {
	pw.mu.RLock()
	defer pw.mu.RUnlock()
	return pw.disposed
}
