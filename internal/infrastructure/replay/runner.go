package replay

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/bnema/findpopup/internal/infrastructure/actions"
	"github.com/bnema/findpopup/internal/infrastructure/headless"
	"github.com/bnema/findpopup/internal/infrastructure/preview"
	"github.com/bnema/findpopup/internal/logging"
	"github.com/bnema/findpopup/internal/ui/controller"
	"github.com/bnema/findpopup/internal/ui/dismiss"
	"github.com/bnema/findpopup/internal/ui/input"
)

// Failure is an unmet expectation.
type Failure struct {
	Step    int
	Message string
}

func (f Failure) String() string {
	return fmt.Sprintf("step %d: %s", f.Step, f.Message)
}

// Result is the outcome of one trace.
type Result struct {
	Name      string
	Steps     int
	Failures  []Failure
	Decisions []dismiss.Decision
	Final     controller.Snapshot
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Runner replays traces.
type Runner struct {
	ctx context.Context
}

// NewRunner creates a runner logging through ctx.
func NewRunner(ctx context.Context) *Runner {
	return &Runner{ctx: logging.WithComponent(ctx, "replay")}
}

// Run replays tr on a fresh headless host. Malformed steps abort with an
// error; unmet expectations are collected in the result.
func (r *Runner) Run(tr *Trace) (*Result, error) {
	s, err := r.newSession(tr)
	if err != nil {
		return nil, err
	}
	defer s.ctrl.Dispose()

	res := &Result{Name: tr.Name}
	for i, step := range tr.Steps {
		n := i + 1
		if err := s.apply(step, n, res); err != nil {
			return nil, fmt.Errorf("trace %q step %d (%s): %w", tr.Name, n, step.Do, err)
		}
		res.Steps = n
	}

	res.Decisions = s.ctrl.DismissHistory()
	res.Final = s.ctrl.Snapshot()

	log := logging.FromContext(r.ctx)
	log.Debug().
		Str("trace", tr.Name).
		Int("steps", res.Steps).
		Int("failures", len(res.Failures)).
		Msg("trace replayed")
	return res, nil
}

type session struct {
	host     *headless.Host
	content  *headless.Content
	ctrl     *controller.PopupController
	item     *recordedItem
	overlays atomic.Int64
	windows  map[string]entity.WindowRef
	handled  *bool
}

func (r *Runner) newSession(tr *Trace) (*session, error) {
	s := &session{
		host:    headless.NewHost(),
		content: headless.NewContent(),
		windows: make(map[string]entity.WindowRef),
	}

	panel := preview.NewPanel()
	if tr.Preview != "" {
		s.item = &recordedItem{title: tr.Preview}
		panel.Select(s.item)
	}

	registry := actions.NewMap()
	registry.Register(controller.DefaultThemeOverlayActionID, actionFunc(func() {
		s.overlays.Add(1)
	}))

	opts := controller.DefaultOptions()
	opts.ContextID = tr.Name
	if tr.Popup.Width > 0 && tr.Popup.Height > 0 {
		opts.Window.DefaultSize = entity.Size{Width: tr.Popup.Width, Height: tr.Popup.Height}
	}
	applyDismiss(&opts.Dismiss, tr.Dismiss)

	ctrl, err := controller.New(r.ctx, controller.Dependencies{
		Host:      s.host,
		Windows:   s.host,
		Scheduler: s.host,
		Content:   s.content,
		Previews:  panel,
		Actions:   registry,
	}, opts)
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	return s, nil
}

func applyDismiss(opts *dismiss.Options, spec DismissSpec) {
	if spec.OnFocusLoss != nil {
		opts.OnFocusLoss = *spec.OnFocusLoss
	}
	if spec.OnClickOutside != nil {
		opts.OnClickOutside = *spec.OnClickOutside
	}
	if spec.OnPointerLeave != nil {
		opts.OnPointerLeave = *spec.OnPointerLeave
	}
}

func (s *session) apply(step Step, n int, res *Result) error {
	switch step.Do {
	case DoShow:
		return s.ctrl.ShowPopup()
	case DoHide:
		s.ctrl.HidePopup()
	case DoToggle:
		return s.ctrl.Toggle()
	case DoPreload:
		return s.ctrl.Preload()
	case DoDiscard:
		s.ctrl.DiscardWindow()
	case DoDispose:
		s.ctrl.Dispose()
	case DoDrain:
		s.host.Drain()
	case DoWindow:
		owner, err := s.resolveOptional(step.Owner)
		if err != nil {
			return err
		}
		s.windows[step.Name] = s.host.AddWindow(owner, rect(step.Bounds))
	case DoBounds:
		ref, err := s.resolve(step.Target)
		if err != nil {
			return err
		}
		if !s.host.SetBounds(ref, rect(step.Bounds)) {
			return fmt.Errorf("window %q does not exist", step.Target)
		}
	case DoFocus:
		ref, err := s.resolve(step.Target)
		if err != nil {
			return err
		}
		s.host.Focus(ref)
	case DoEvent:
		return s.emit(step)
	case DoKey:
		return s.press(step)
	case DoExpect:
		for _, msg := range s.check(step.Expect) {
			res.Failures = append(res.Failures, Failure{Step: n, Message: msg})
		}
	}
	return nil
}

func (s *session) emit(step Step) error {
	kind, ok := entity.ParseWindowEventKind(step.Kind)
	if !ok {
		return fmt.Errorf("unknown event kind %q", step.Kind)
	}
	target, err := s.resolveOptional(step.Target)
	if err != nil {
		return err
	}

	ev := entity.NewFocusEvent(kind, target)
	if len(step.At) == 2 {
		ev = entity.NewMouseEvent(kind, target, entity.Point{X: step.At[0], Y: step.At[1]})
	}
	s.host.Emit(ev)
	return nil
}

func (s *session) press(step Step) error {
	chord, err := input.ParseChord(step.Chord)
	if err != nil {
		return err
	}

	var handled bool
	switch step.Source {
	case "", "host":
		keyval, state := input.EncodeHost(chord)
		handled = s.host.PressKey(entity.InputEvent{
			Source:    entity.SourceHost,
			Kind:      entity.KeyDown,
			KeyCode:   keyval,
			Modifiers: state,
		})
	case "content":
		keyCode, mods := input.EncodeContent(chord)
		handled = s.content.TypeKey(keyCode, mods)
	default:
		return fmt.Errorf("unknown key source %q (want host or content)", step.Source)
	}
	s.handled = &handled
	return nil
}

func (s *session) resolve(name string) (entity.WindowRef, error) {
	if name == PopupTarget {
		ref := s.ctrl.Snapshot().WindowRef
		if ref == entity.NoWindow {
			return entity.NoWindow, fmt.Errorf("popup window does not exist yet")
		}
		return ref, nil
	}
	ref, ok := s.windows[name]
	if !ok {
		return entity.NoWindow, fmt.Errorf("unknown window %q", name)
	}
	return ref, nil
}

func (s *session) resolveOptional(name string) (entity.WindowRef, error) {
	if name == "" || name == "none" {
		return entity.NoWindow, nil
	}
	return s.resolve(name)
}

func (s *session) check(want *Expect) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	snap := s.ctrl.Snapshot()
	if want.State != "" && snap.State.String() != want.State {
		fail("state = %s, want %s", snap.State, want.State)
	}
	if want.Phase != "" && snap.Phase.String() != want.Phase {
		fail("phase = %s, want %s", snap.Phase, want.Phase)
	}
	if want.Hides != nil && snap.Hides != *want.Hides {
		fail("hides = %d, want %d", snap.Hides, *want.Hides)
	}
	if want.Windows != nil && snap.WindowsCreated != *want.Windows {
		fail("windows created = %d, want %d", snap.WindowsCreated, *want.Windows)
	}
	if want.Handled != nil {
		switch {
		case s.handled == nil:
			fail("handled expected but no key was pressed")
		case *s.handled != *want.Handled:
			fail("handled = %t, want %t", *s.handled, *want.Handled)
		}
	}
	if want.Pending != nil && s.host.Pending() != *want.Pending {
		fail("pending tasks = %d, want %d", s.host.Pending(), *want.Pending)
	}
	if want.Reason != nil {
		if got := lastDismissReason(s.ctrl.DismissHistory()); string(got) != *want.Reason {
			fail("last dismiss reason = %q, want %q", got, *want.Reason)
		}
	}
	if want.PreviewsOpened != nil {
		opened := 0
		if s.item != nil {
			opened = int(s.item.opened.Load())
		}
		if opened != *want.PreviewsOpened {
			fail("previews opened = %d, want %d", opened, *want.PreviewsOpened)
		}
	}
	if want.OverlayToggles != nil && int(s.overlays.Load()) != *want.OverlayToggles {
		fail("overlay toggles = %d, want %d", s.overlays.Load(), *want.OverlayToggles)
	}
	if want.Subscribed != nil && (s.host.SubscriberCount() > 0) != *want.Subscribed {
		fail("subscribed = %t, want %t", s.host.SubscriberCount() > 0, *want.Subscribed)
	}
	return failures
}

func lastDismissReason(history []dismiss.Decision) dismiss.Reason {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Dismissed {
			return history[i].Reason
		}
	}
	return dismiss.ReasonNone
}

func rect(v []int) entity.Rect {
	return entity.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
}
