// Package controller owns the popup lifecycle and coordinates the window,
// the dismissal arbiter and the input router.
package controller

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/bnema/findpopup/internal/logging"
	"github.com/bnema/findpopup/internal/ui/dismiss"
	"github.com/bnema/findpopup/internal/ui/input"
	"github.com/bnema/findpopup/internal/ui/window"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// DefaultThemeOverlayActionID is the overlay action notified after every hide.
const DefaultThemeOverlayActionID = "MTToggleOverlaysAction"

// Dependencies are the collaborators a controller drives.
type Dependencies struct {
	Host      port.HostWindowing
	Windows   port.WindowFactory
	Scheduler port.UIScheduler
	// Content is owned by the controller and disposed with it.
	Content  port.ContentSurface
	Previews port.PreviewProvider
	// Actions is optional.
	Actions port.ActionRegistry
}

// Options configures a controller.
type Options struct {
	ContextID            string
	Window               window.Options
	Dismiss              dismiss.Options
	ThemeOverlayActionID string
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		Window:               window.DefaultOptions(),
		Dismiss:              dismiss.DefaultOptions(),
		ThemeOverlayActionID: DefaultThemeOverlayActionID,
	}
}

// PopupController owns one popup instance for one owning context.
// It is the only writer of the popup's visibility.
type PopupController struct {
	deps   Dependencies
	ctx    context.Context
	logger zerolog.Logger
	id     ulid.ULID
	state  atomic.Int32

	mu             sync.Mutex
	opts           Options
	popup          *window.PopupWindow
	arbiter        *dismiss.Arbiter
	router         *input.Router
	eventScope     *listenerScope
	keyScope       *listenerScope
	disposed       bool
	windowsCreated int
	hides          int
}

// New creates a controller in the NoPopup state. Nothing is built until
// ShowPopup or Preload.
func New(ctx context.Context, deps Dependencies, opts Options) (*PopupController, error) {
	if deps.Host == nil {
		return nil, fmt.Errorf("popup controller: host windowing is required")
	}
	if deps.Windows == nil {
		return nil, fmt.Errorf("popup controller: window factory is required")
	}
	if deps.Scheduler == nil {
		return nil, fmt.Errorf("popup controller: scheduler is required")
	}

	id := ulid.Make()
	ctx = logging.WithComponent(ctx, "popup-controller")
	ctx = logging.WithPopupID(ctx, id.String())
	if opts.ContextID != "" {
		ctx = logging.WithContextID(ctx, opts.ContextID)
	}

	c := &PopupController{
		deps:   deps,
		ctx:    ctx,
		logger: *logging.FromContext(ctx),
		id:     id,
		opts:   opts,
	}
	c.state.Store(int32(entity.PopupNone))
	return c, nil
}

// ID returns the controller instance id.
func (c *PopupController) ID() string {
	return c.id.String()
}

// ContextID returns the owning context id.
func (c *PopupController) ContextID() string {
	return c.opts.ContextID
}

// State returns the lifecycle state. Safe from any goroutine.
func (c *PopupController) State() entity.PopupState {
	return entity.PopupState(c.state.Load())
}

func (c *PopupController) setState(s entity.PopupState) {
	prev := entity.PopupState(c.state.Swap(int32(s)))
	if prev != s {
		c.logger.Debug().Str("from", prev.String()).Str("to", s.String()).Msg("popup state changed")
	}
}

func (c *PopupController) isActive() bool {
	return c.State() == entity.PopupVisible
}

// ShowPopup creates the popup on first use and shows it. When the popup is
// already visible it only moves focus back to the content.
func (c *PopupController) ShowPopup() error {
	popup, err := c.showLocked()
	if err != nil {
		return err
	}
	popup.FocusContent()
	return nil
}

func (c *PopupController) showLocked() (*window.PopupWindow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return nil, entity.ErrControllerDisposed
	}
	if c.popup == nil || c.popup.IsDisposed() {
		if err := c.createLocked(); err != nil {
			return nil, err
		}
	}

	if !c.popup.IsVisible() {
		// Subscribed after Show for the same reason hideLocked detaches first.
		c.popup.Show()
		c.arbiter.Activate()
		c.eventScope = newListenerScope(c.deps.Host.Subscribe(c.onWindowEvent))
		c.setState(entity.PopupVisible)
	}
	return c.popup, nil
}

// Preload builds the popup and its listeners without showing it.
func (c *PopupController) Preload() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return entity.ErrControllerDisposed
	}
	if c.popup == nil || c.popup.IsDisposed() {
		return c.createLocked()
	}
	return nil
}

// createLocked builds the window, arbiter and router. Must hold c.mu.
func (c *PopupController) createLocked() error {
	c.releaseWindowLocked()

	popup, err := window.New(c.ctx, c.deps.Windows, c.deps.Content, c.opts.Window)
	if err != nil {
		c.setState(entity.PopupNone)
		return err
	}

	router, err := input.NewRouter(c.ctx, input.RouterOptions{
		Scheduler: c.deps.Scheduler,
		Hide:      c.HidePopup,
		Previews:  c.deps.Previews,
		IsActive:  c.isActive,
	})
	if err != nil {
		popup.Destroy()
		c.setState(entity.PopupNone)
		return err
	}

	c.popup = popup
	c.router = router
	c.arbiter = dismiss.NewArbiter(c.ctx, popup, c.deps.Host, c.onDismiss, c.opts.Dismiss)
	c.keyScope = newListenerScope(c.deps.Host.AddKeyDispatcher(router.HandleHostEvent))

	if c.deps.Content == nil {
		c.logger.Error().Err(entity.ErrNilContentSurface).Msg("content surface key handler not registered")
	} else {
		c.deps.Content.SetKeyHandler(router.HandleContentKey)
	}

	c.windowsCreated++
	c.setState(entity.PopupHidden)
	c.logger.Debug().Int("windows_created", c.windowsCreated).Msg("popup created")
	return nil
}

// releaseWindowLocked tears down the current window and its listeners.
func (c *PopupController) releaseWindowLocked() {
	c.eventScope.Release()
	c.eventScope = nil
	c.keyScope.Release()
	c.keyScope = nil
	if c.router != nil {
		c.router.Close()
		c.router = nil
	}
	if c.arbiter != nil {
		c.arbiter.Reset()
		c.arbiter = nil
	}
	if c.popup != nil {
		c.popup.Destroy()
		c.popup = nil
	}
}

func (c *PopupController) onWindowEvent(ev entity.WindowEvent) {
	c.mu.Lock()
	arbiter := c.arbiter
	c.mu.Unlock()

	if arbiter != nil {
		arbiter.HandleEvent(ev)
	}
}

func (c *PopupController) onDismiss(reason dismiss.Reason) {
	c.logger.Debug().Str("reason", string(reason)).Msg("outside interaction dismissed popup")
	c.HidePopup()
}

// HidePopup hides the popup and then notifies the theme overlay action.
// Hiding a hidden popup does nothing.
func (c *PopupController) HidePopup() {
	if !c.hideLocked() {
		return
	}
	c.notifyThemeOverlay()
}

func (c *PopupController) hideLocked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed || c.popup == nil || !c.popup.IsVisible() {
		return false
	}

	// Hosts may emit focus events synchronously from native calls made under
	// c.mu, so listeners are detached before the window is touched.
	c.eventScope.Release()
	c.eventScope = nil
	c.arbiter.Reset()

	c.popup.Hide()
	c.hides++
	c.setState(entity.PopupHidden)
	return true
}

// Toggle hides a visible popup and shows it otherwise.
func (c *PopupController) Toggle() error {
	if c.State() == entity.PopupVisible {
		c.HidePopup()
		return nil
	}
	return c.ShowPopup()
}

func (c *PopupController) notifyThemeOverlay() {
	c.mu.Lock()
	actionID := c.opts.ThemeOverlayActionID
	c.mu.Unlock()

	if c.deps.Actions == nil || actionID == "" {
		return
	}
	action, ok := c.deps.Actions.Lookup(actionID)
	if !ok || action == nil {
		c.logger.Debug().Str("action", actionID).Msg("theme overlay action not available")
		return
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Debug().Interface("panic", r).Str("action", actionID).Msg("theme overlay action panicked")
		}
	}()
	if err := action.Perform(c.ctx); err != nil {
		c.logger.Debug().Err(err).Str("action", actionID).Msg("theme overlay action failed")
	}
}

// DiscardWindow destroys the current window while keeping the controller
// alive. The next ShowPopup builds a new one.
func (c *PopupController) DiscardWindow() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.releaseWindowLocked()
	c.setState(entity.PopupNone)
}

// Dispose releases the window, the listeners and the content surface.
// Safe to call repeatedly and before anything was created.
func (c *PopupController) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	c.releaseWindowLocked()
	c.setState(entity.PopupDisposed)
	c.mu.Unlock()

	if c.deps.Content != nil {
		c.deps.Content.SetKeyHandler(nil)
		c.deps.Content.Dispose()
	}
	c.logger.Debug().Msg("popup controller disposed")
}

// SetDismissOptions updates the dismissal triggers, live if a popup exists.
func (c *PopupController) SetDismissOptions(opts dismiss.Options) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.Dismiss = opts
	if c.arbiter != nil {
		c.arbiter.SetOptions(opts)
	}
}

// SetThemeOverlayActionID changes the action notified after hides.
func (c *PopupController) SetThemeOverlayActionID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opts.ThemeOverlayActionID = id
}

// Snapshot is a read-only view of the controller for diagnostics.
type Snapshot struct {
	State          entity.PopupState
	Phase          entity.DismissPhase
	WindowRef      entity.WindowRef
	Bounds         entity.Rect
	HasBounds      bool
	WindowsCreated int
	Hides          int
	Router         input.Stats
	LastDecision   *dismiss.Decision
}

// Snapshot returns the current diagnostics view.
func (c *PopupController) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		State:          c.State(),
		WindowsCreated: c.windowsCreated,
		Hides:          c.hides,
	}
	if c.popup != nil {
		s.WindowRef = c.popup.Ref()
		s.Bounds, s.HasBounds = c.popup.BoundsOnScreen()
	}
	if c.arbiter != nil {
		s.Phase = c.arbiter.Phase()
		if d, ok := c.arbiter.LastDecision(); ok {
			s.LastDecision = &d
		}
	}
	if c.router != nil {
		s.Router = c.router.Stats()
	}
	return s
}

// DismissHistory returns the arbiter's recorded decisions.
func (c *PopupController) DismissHistory() []dismiss.Decision {
	c.mu.Lock()
	arbiter := c.arbiter
	c.mu.Unlock()
	if arbiter == nil {
		return nil
	}
	return arbiter.History()
}
