// Package dismiss decides when the popup should close in response to
// activity outside of it.
package dismiss

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/bnema/findpopup/internal/logging"
	"github.com/rs/zerolog"
)

// maxOwnerHops bounds owner-chain walks. A chain this long is treated as
// belonging to the popup.
const maxOwnerHops = 64

const defaultHistorySize = 64

// Reason names why the popup was dismissed.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonFocusLoss    Reason = "focus_loss"
	ReasonPointerLeave Reason = "pointer_leave"
	ReasonClickOutside Reason = "click_outside"
)

// Popup is the view of the popup window the arbiter needs.
type Popup interface {
	Ref() entity.WindowRef
	BoundsOnScreen() (entity.Rect, bool)
}

// Owners answers ownership and focus questions about host windows.
type Owners interface {
	Owner(ref entity.WindowRef) (entity.WindowRef, bool)
	FocusedWindow() (entity.WindowRef, bool)
}

// Options toggles the individual dismissal triggers.
type Options struct {
	// OnFocusLoss dismisses when an unrelated window gains focus or activation.
	OnFocusLoss bool
	// OnClickOutside dismisses on a press outside the popup once the pointer entered it.
	OnClickOutside bool
	// OnPointerLeave dismisses on pointer motion outside the popup once the pointer entered it.
	OnPointerLeave bool
	// HistorySize bounds the decision history.
	HistorySize int
}

// DefaultOptions enables every trigger.
func DefaultOptions() Options {
	return Options{
		OnFocusLoss:    true,
		OnClickOutside: true,
		OnPointerLeave: true,
		HistorySize:    defaultHistorySize,
	}
}

// Decision records one arbitration.
type Decision struct {
	Event     entity.WindowEvent
	Before    entity.DismissPhase
	After     entity.DismissPhase
	Dismissed bool
	Reason    Reason
	At        time.Time
}

// Arbiter is the outside-interaction dismissal state machine.
// It never hides the window itself; it asks through the dismiss callback.
type Arbiter struct {
	popup   Popup
	owners  Owners
	dismiss func(Reason)
	logger  zerolog.Logger
	history *ringBuffer[Decision]
	now     func() time.Time

	mu    sync.Mutex
	opts  Options
	phase entity.DismissPhase
	state entity.DismissalState
}

// NewArbiter creates an idle arbiter for popup.
func NewArbiter(ctx context.Context, popup Popup, owners Owners, dismiss func(Reason), opts Options) *Arbiter {
	if opts.HistorySize <= 0 {
		opts.HistorySize = defaultHistorySize
	}
	log := logging.FromContext(ctx)
	return &Arbiter{
		popup:   popup,
		owners:  owners,
		dismiss: dismiss,
		logger:  log.With().Str("component", "dismiss-arbiter").Logger(),
		history: newRingBuffer[Decision](opts.HistorySize),
		now:     time.Now,
		opts:    opts,
		phase:   entity.PhaseIdle,
	}
}

// Activate arms the arbiter for a fresh hidden-to-visible transition.
func (a *Arbiter) Activate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.phase = entity.PhaseArmed
	a.state = entity.DismissalState{}
}

// Reset returns to Idle and forgets that the pointer entered the popup.
func (a *Arbiter) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.phase = entity.PhaseIdle
	a.state = entity.DismissalState{}
}

// Phase returns the current state.
func (a *Arbiter) Phase() entity.DismissPhase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// State returns the per-visibility memory.
func (a *Arbiter) State() entity.DismissalState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Options returns the active trigger switches.
func (a *Arbiter) Options() Options {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.opts
}

// SetOptions swaps the trigger switches. The history size is fixed at construction.
func (a *Arbiter) SetOptions(opts Options) {
	a.mu.Lock()
	defer a.mu.Unlock()
	opts.HistorySize = a.opts.HistorySize
	a.opts = opts
}

// History returns recorded decisions, oldest first.
func (a *Arbiter) History() []Decision {
	return a.history.all()
}

// LastDecision returns the most recent decision.
func (a *Arbiter) LastDecision() (Decision, bool) {
	return a.history.last()
}

// HandleEvent arbitrates one native event and reports whether it dismissed the popup.
func (a *Arbiter) HandleEvent(ev entity.WindowEvent) bool {
	a.mu.Lock()
	if a.phase == entity.PhaseIdle {
		a.mu.Unlock()
		return false
	}

	before := a.phase
	reason := a.decideLocked(ev)
	if reason != ReasonNone {
		a.phase = entity.PhaseIdle
		a.state = entity.DismissalState{}
	}
	after := a.phase
	a.mu.Unlock()

	a.history.add(Decision{
		Event:     ev,
		Before:    before,
		After:     after,
		Dismissed: reason != ReasonNone,
		Reason:    reason,
		At:        a.now(),
	})

	if before != after {
		a.logger.Debug().
			Str("event", ev.Kind.String()).
			Str("from", before.String()).
			Str("to", after.String()).
			Msg("dismiss phase changed")
	}

	if reason == ReasonNone {
		return false
	}

	a.logger.Debug().Str("reason", string(reason)).Msg("dismissing popup")
	if a.dismiss != nil {
		a.dismiss(reason)
	}
	return true
}

func (a *Arbiter) decideLocked(ev entity.WindowEvent) Reason {
	switch ev.Kind {
	case entity.WindowActivated, entity.WindowFocusGained:
		if !a.opts.OnFocusLoss {
			return ReasonNone
		}
		target := ev.Target
		if target == entity.NoWindow {
			focused, ok := a.owners.FocusedWindow()
			if !ok {
				return ReasonNone
			}
			target = focused
		}
		if a.isSelfDirected(target) {
			return ReasonNone
		}
		return ReasonFocusLoss

	case entity.MouseEntered:
		inside, known := a.containsLocked(ev)
		if known && inside && a.phase == entity.PhaseArmed {
			a.phase = entity.PhaseTracking
			a.state.MouseEntered = true
		}
		return ReasonNone

	case entity.MouseMoved, entity.MousePressed:
		if a.phase != entity.PhaseTracking {
			return ReasonNone
		}
		inside, known := a.containsLocked(ev)
		if !known || inside {
			return ReasonNone
		}
		if ev.Kind == entity.MousePressed {
			if a.opts.OnClickOutside {
				return ReasonClickOutside
			}
			return ReasonNone
		}
		if a.opts.OnPointerLeave {
			return ReasonPointerLeave
		}
		return ReasonNone

	default:
		// MouseExited carries no decision.
		return ReasonNone
	}
}

// containsLocked reports whether the event location lies inside the popup.
// known is false when either the location or the bounds are unavailable.
func (a *Arbiter) containsLocked(ev entity.WindowEvent) (inside, known bool) {
	if !ev.HasLocation {
		return false, false
	}
	bounds, ok := a.popup.BoundsOnScreen()
	if !ok {
		return false, false
	}
	return bounds.Contains(ev.Location), true
}

// isSelfDirected reports whether target is the popup or owned by it.
func (a *Arbiter) isSelfDirected(target entity.WindowRef) bool {
	popupRef := a.popup.Ref()
	current := target
	for hop := 0; hop < maxOwnerHops; hop++ {
		if current == popupRef {
			return true
		}
		owner, ok := a.owners.Owner(current)
		if !ok || owner == entity.NoWindow {
			return false
		}
		current = owner
	}

	a.logger.Warn().
		Uint64("target", uint64(target)).
		Int("hops", maxOwnerHops).
		Msg("owner chain too long, treating event as self-directed")
	return true
}
