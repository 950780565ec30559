package input

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/bnema/findpopup/internal/logging"
	"github.com/bnema/findpopup/internal/ui/mainloop"
	"github.com/rs/zerolog"
)

const hideTaskKey = "hide"

// Action is what a key chord maps to.
type Action int

const (
	ActionNone Action = iota
	ActionHide
	ActionOpenPreview
)

func (a Action) String() string {
	switch a {
	case ActionHide:
		return "hide"
	case ActionOpenPreview:
		return "open_preview"
	default:
		return "none"
	}
}

// Classify maps a decoded chord from source to a popup action.
// Escape without modifiers hides from either source. Alt+Enter opens the
// preview, and only from the host.
func Classify(source entity.InputSource, c Chord) Action {
	switch {
	case c.Key == KeyEscape && c.Mods == ModNone:
		return ActionHide
	case c.Key == KeyEnter && c.Mods&ModAlt != 0 && source == entity.SourceHost:
		return ActionOpenPreview
	default:
		return ActionNone
	}
}

// RouterOptions wires the router to its collaborators.
type RouterOptions struct {
	Scheduler port.UIScheduler
	// Hide is invoked on the UI thread when Escape is pressed.
	Hide func()
	// Previews may be nil when the popup has no preview pane.
	Previews port.PreviewProvider
	// IsActive gates host events; the popup's hidden or disposed state returns false.
	IsActive func() bool
}

// Stats counts what the router has scheduled.
type Stats struct {
	HidesRequested   uint64
	HidesCoalesced   uint64
	PreviewsOpened   uint64
	PreviewsFailed   uint64
	PassedThrough    uint64
	IgnoredWhileIdle uint64
}

// Router unifies the host and content-surface key pipelines.
type Router struct {
	ctx       context.Context
	scheduler port.UIScheduler
	hide      func()
	previews  port.PreviewProvider
	isActive  func() bool
	hides     *mainloop.Coalescer
	logger    zerolog.Logger

	closeOnce sync.Once
	closed    atomic.Bool

	hidesRequested   atomic.Uint64
	hidesCoalesced   atomic.Uint64
	previewsOpened   atomic.Uint64
	previewsFailed   atomic.Uint64
	passedThrough    atomic.Uint64
	ignoredWhileIdle atomic.Uint64
}

// NewRouter creates a router. Scheduler and Hide are required.
func NewRouter(ctx context.Context, opts RouterOptions) (*Router, error) {
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("input router: scheduler is required")
	}
	if opts.Hide == nil {
		return nil, fmt.Errorf("input router: hide callback is required")
	}

	ctx = logging.WithComponent(ctx, "input-router")
	r := &Router{
		ctx:       ctx,
		scheduler: opts.Scheduler,
		hide:      opts.Hide,
		previews:  opts.Previews,
		isActive:  opts.IsActive,
		hides:     mainloop.NewCoalescer(opts.Scheduler.RunLater),
		logger:    *logging.FromContext(ctx),
	}
	return r, nil
}

// Handle routes one key-down event and reports whether it was consumed.
// Unrecognized events are passed through unchanged.
func (r *Router) Handle(fromContentSurface bool, keyCode, modifiers uint) bool {
	if r.closed.Load() {
		return false
	}

	source := entity.SourceHost
	chord := DecodeHost(keyCode, modifiers)
	if fromContentSurface {
		source = entity.SourceContentSurface
		chord = DecodeContent(keyCode, modifiers)
	}

	switch Classify(source, chord) {
	case ActionHide:
		r.requestHide(source)
		return true
	case ActionOpenPreview:
		return r.requestOpenPreview()
	default:
		r.passedThrough.Add(1)
		return false
	}
}

// HandleHostEvent is the host key dispatcher entry point. Events arriving
// while the popup is hidden or torn down are ignored.
func (r *Router) HandleHostEvent(ev entity.InputEvent) bool {
	if ev.Kind != entity.KeyDown {
		return false
	}
	if r.isActive != nil && !r.isActive() {
		r.ignoredWhileIdle.Add(1)
		return false
	}
	return r.Handle(ev.Source == entity.SourceContentSurface, ev.KeyCode, ev.Modifiers)
}

// HandleContentKey is the content surface key handler entry point.
func (r *Router) HandleContentKey(keyCode, modifiers uint) bool {
	return r.Handle(true, keyCode, modifiers)
}

func (r *Router) requestHide(source entity.InputSource) {
	if r.hides.Post(hideTaskKey, r.hide) {
		r.hidesRequested.Add(1)
		r.logger.Debug().Str("source", source.String()).Msg("hide requested")
		return
	}
	r.hidesCoalesced.Add(1)
}

func (r *Router) requestOpenPreview() bool {
	if r.previews == nil {
		return false
	}
	item, ok := r.previews.CurrentPreviewItem()
	if !ok || item == nil {
		return false
	}

	r.scheduler.RunLater(func() {
		if r.closed.Load() {
			return
		}
		r.openPreview(item)
	})
	return true
}

func (r *Router) openPreview(item port.PreviewItem) {
	defer func() {
		if rec := recover(); rec != nil {
			r.previewsFailed.Add(1)
			r.logger.Error().Interface("panic", rec).Msg("opening preview item panicked")
		}
	}()

	if err := item.OpenInEditorOrExternalViewer(r.ctx); err != nil {
		r.previewsFailed.Add(1)
		r.logger.Error().Err(err).Str("item", item.Title()).Msg("error opening preview item")
		return
	}
	r.previewsOpened.Add(1)
	r.logger.Debug().Str("item", item.Title()).Msg("preview item opened")
}

// Stats returns a snapshot of the counters.
func (r *Router) Stats() Stats {
	return Stats{
		HidesRequested:   r.hidesRequested.Load(),
		HidesCoalesced:   r.hidesCoalesced.Load(),
		PreviewsOpened:   r.previewsOpened.Load(),
		PreviewsFailed:   r.previewsFailed.Load(),
		PassedThrough:    r.passedThrough.Load(),
		IgnoredWhileIdle: r.ignoredWhileIdle.Load(),
	}
}

// Close stops routing and drops any queued hide.
func (r *Router) Close() {
	r.closeOnce.Do(func() {
		r.closed.Store(true)
		r.hides.Destroy()
	})
}
