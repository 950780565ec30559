package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/application/port/mocks"
	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/bnema/findpopup/internal/infrastructure/headless"
	"github.com/bnema/findpopup/internal/ui/dismiss"
	"github.com/bnema/findpopup/internal/ui/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var scenarioBounds = entity.Rect{X: 100, Y: 100, Width: 750, Height: 420}

type fixture struct {
	host    *headless.Host
	content *headless.Content
	frame   entity.WindowRef
	ctrl    *PopupController
}

func newFixture(t *testing.T, deps Dependencies, opts Options) *fixture {
	t.Helper()

	f := &fixture{host: headless.NewHost(), content: headless.NewContent()}
	f.frame = f.host.AddWindow(entity.NoWindow, entity.Rect{Width: 1920, Height: 1080})

	deps.Host = f.host
	deps.Windows = f.host
	deps.Scheduler = f.host
	if deps.Content == nil {
		deps.Content = f.content
	}

	ctrl, err := New(context.Background(), deps, opts)
	require.NoError(t, err)
	t.Cleanup(ctrl.Dispose)
	f.ctrl = ctrl
	return f
}

func (f *fixture) showAt(t *testing.T, bounds entity.Rect) entity.WindowRef {
	t.Helper()
	require.NoError(t, f.ctrl.ShowPopup())
	ref := f.ctrl.Snapshot().WindowRef
	require.True(t, f.host.SetBounds(ref, bounds))
	return ref
}

func escape() entity.InputEvent {
	return entity.InputEvent{Source: entity.SourceHost, Kind: entity.KeyDown, KeyCode: input.HostKeyEscape}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	h := headless.NewHost()

	_, err := New(context.Background(), Dependencies{Windows: h, Scheduler: h}, DefaultOptions())
	assert.Error(t, err)
	_, err = New(context.Background(), Dependencies{Host: h, Scheduler: h}, DefaultOptions())
	assert.Error(t, err)
	_, err = New(context.Background(), Dependencies{Host: h, Windows: h}, DefaultOptions())
	assert.Error(t, err)
}

func TestShowPopup_TwiceBuildsOneWindowAndRefocuses(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())
	assert.Equal(t, entity.PopupNone, f.ctrl.State())

	require.NoError(t, f.ctrl.ShowPopup())
	require.NoError(t, f.ctrl.ShowPopup())

	assert.Equal(t, 1, f.host.WindowsCreated())
	assert.Equal(t, entity.PopupVisible, f.ctrl.State())
	assert.Equal(t, 2, f.content.FocusCount())
	assert.Equal(t, 1, f.host.SubscriberCount(), "window events subscribed once per visible period")

	w, ok := f.host.Window(f.ctrl.Snapshot().WindowRef)
	require.True(t, ok)
	assert.Equal(t, 1, w.ShowCount())
	assert.Equal(t, "Find", w.Title())
	assert.Equal(t, entity.Size{Width: 750, Height: 420}, w.MinSize())
}

func TestShowPopup_ReusesWindowAcrossCycles(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())

	for i := 0; i < 3; i++ {
		require.NoError(t, f.ctrl.ShowPopup())
		f.ctrl.HidePopup()
	}

	assert.Equal(t, 1, f.host.WindowsCreated())
	assert.Equal(t, entity.PopupHidden, f.ctrl.State())
	assert.Equal(t, 0, f.host.SubscriberCount())
	assert.Equal(t, 1, f.host.DispatcherCount(), "key dispatcher lives as long as the window")
}

func TestShowPopup_ConcurrentCallsBuildOneWindow(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.ctrl.ShowPopup()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, f.host.WindowsCreated())
	assert.Equal(t, 1, f.host.SubscriberCount())
}

func TestShowPopup_WindowFailureLeavesNoPopup(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())
	boom := errors.New("no display")
	f.host.FailNextWindow(boom)

	err := f.ctrl.ShowPopup()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, entity.PopupNone, f.ctrl.State())

	require.NoError(t, f.ctrl.ShowPopup())
	assert.Equal(t, entity.PopupVisible, f.ctrl.State())
}

func TestShowPopup_AfterDiscardRecreates(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())

	require.NoError(t, f.ctrl.ShowPopup())
	first := f.ctrl.Snapshot().WindowRef
	f.ctrl.DiscardWindow()
	assert.Equal(t, entity.PopupNone, f.ctrl.State())
	assert.Equal(t, 0, f.host.SubscriberCount())
	assert.Equal(t, 0, f.host.DispatcherCount())

	require.NoError(t, f.ctrl.ShowPopup())
	assert.Equal(t, 2, f.host.WindowsCreated())
	assert.NotEqual(t, first, f.ctrl.Snapshot().WindowRef)
	assert.Equal(t, 1, f.host.DispatcherCount())
}

func TestHidePopup_TwiceEqualsOnce(t *testing.T) {
	actions := mocks.NewMockActionRegistry(t)
	action := mocks.NewMockAction(t)
	actions.EXPECT().Lookup(DefaultThemeOverlayActionID).Return(action, true).Once()
	action.EXPECT().Perform(mock.Anything).Return(nil).Once()

	f := newFixture(t, Dependencies{Actions: actions}, DefaultOptions())
	require.NoError(t, f.ctrl.ShowPopup())

	f.ctrl.HidePopup()
	f.ctrl.HidePopup()

	assert.Equal(t, entity.PopupHidden, f.ctrl.State())
	assert.Equal(t, 1, f.ctrl.Snapshot().Hides)
}

func TestHidePopup_ThemeOverlayFailuresAreSwallowed(t *testing.T) {
	t.Run("missing action", func(t *testing.T) {
		actions := mocks.NewMockActionRegistry(t)
		actions.EXPECT().Lookup(DefaultThemeOverlayActionID).Return(nil, false).Once()

		f := newFixture(t, Dependencies{Actions: actions}, DefaultOptions())
		require.NoError(t, f.ctrl.ShowPopup())
		assert.NotPanics(t, f.ctrl.HidePopup)
		assert.Equal(t, entity.PopupHidden, f.ctrl.State())
	})

	t.Run("erroring action", func(t *testing.T) {
		actions := mocks.NewMockActionRegistry(t)
		action := mocks.NewMockAction(t)
		actions.EXPECT().Lookup(DefaultThemeOverlayActionID).Return(action, true).Once()
		action.EXPECT().Perform(mock.Anything).Return(errors.New("overlay gone")).Once()

		f := newFixture(t, Dependencies{Actions: actions}, DefaultOptions())
		require.NoError(t, f.ctrl.ShowPopup())
		assert.NotPanics(t, f.ctrl.HidePopup)
	})

	t.Run("panicking action", func(t *testing.T) {
		actions := mocks.NewMockActionRegistry(t)
		actions.EXPECT().Lookup(DefaultThemeOverlayActionID).Return(port.ActionFunc(func(context.Context) error {
			panic("plugin crashed")
		}), true).Once()

		f := newFixture(t, Dependencies{Actions: actions}, DefaultOptions())
		require.NoError(t, f.ctrl.ShowPopup())
		assert.NotPanics(t, f.ctrl.HidePopup)
		assert.Equal(t, entity.PopupHidden, f.ctrl.State())
	})

	t.Run("disabled action id", func(t *testing.T) {
		actions := mocks.NewMockActionRegistry(t)
		opts := DefaultOptions()
		opts.ThemeOverlayActionID = ""

		f := newFixture(t, Dependencies{Actions: actions}, opts)
		require.NoError(t, f.ctrl.ShowPopup())
		f.ctrl.HidePopup()
		actions.AssertNotCalled(t, "Lookup", mock.Anything)
	})
}

func TestPointerLeaveScenario(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())
	ref := f.showAt(t, scenarioBounds)

	f.host.Emit(entity.NewMouseEvent(entity.MouseEntered, ref, entity.Point{X: 200, Y: 200}))
	assert.Equal(t, entity.PhaseTracking, f.ctrl.Snapshot().Phase)

	f.host.Emit(entity.NewMouseEvent(entity.MouseMoved, f.frame, entity.Point{X: 50, Y: 50}))

	snap := f.ctrl.Snapshot()
	assert.Equal(t, entity.PopupHidden, snap.State)
	assert.Equal(t, entity.PhaseIdle, snap.Phase)
	assert.Equal(t, 1, snap.Hides)
	assert.Equal(t, 0, f.host.SubscriberCount())
}

func TestPressOutsideBeforeEnterKeepsPopup(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())
	f.showAt(t, scenarioBounds)

	f.host.Emit(entity.NewMouseEvent(entity.MousePressed, f.frame, entity.Point{X: 50, Y: 50}))

	assert.Equal(t, entity.PopupVisible, f.ctrl.State())
	assert.Equal(t, entity.PhaseArmed, f.ctrl.Snapshot().Phase)
}

func TestFocusOnOwnedDialogKeepsPopup(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())
	ref := f.showAt(t, scenarioBounds)

	dropdown := f.host.AddWindow(ref, entity.Rect{X: 120, Y: 150, Width: 200, Height: 300})
	f.host.Focus(dropdown)
	assert.Equal(t, entity.PopupVisible, f.ctrl.State())

	f.host.Focus(f.frame)
	assert.Equal(t, entity.PopupHidden, f.ctrl.State())
	assert.Equal(t, 1, f.ctrl.Snapshot().Hides)
}

func TestShowAfterDismissStartsArmed(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())
	ref := f.showAt(t, scenarioBounds)

	f.host.Emit(entity.NewMouseEvent(entity.MouseEntered, ref, entity.Point{X: 200, Y: 200}))
	f.host.Emit(entity.NewMouseEvent(entity.MousePressed, f.frame, entity.Point{X: 10, Y: 10}))
	require.Equal(t, entity.PopupHidden, f.ctrl.State())

	require.NoError(t, f.ctrl.ShowPopup())
	assert.Equal(t, entity.PhaseArmed, f.ctrl.Snapshot().Phase)

	f.host.Emit(entity.NewMouseEvent(entity.MousePressed, f.frame, entity.Point{X: 10, Y: 10}))
	assert.Equal(t, entity.PopupVisible, f.ctrl.State())
}

func TestEscapeFromEitherSourceHides(t *testing.T) {
	t.Run("host", func(t *testing.T) {
		f := newFixture(t, Dependencies{}, DefaultOptions())
		require.NoError(t, f.ctrl.ShowPopup())

		assert.True(t, f.host.PressKey(escape()))
		assert.Equal(t, entity.PopupVisible, f.ctrl.State(), "hide runs on the next UI tick")
		assert.Equal(t, 1, f.host.Pending())

		f.host.Drain()
		assert.Equal(t, entity.PopupHidden, f.ctrl.State())
	})

	t.Run("content", func(t *testing.T) {
		f := newFixture(t, Dependencies{}, DefaultOptions())
		require.NoError(t, f.ctrl.ShowPopup())

		assert.True(t, f.content.TypeKey(input.ContentKeyEscape, 0))
		f.host.Drain()
		assert.Equal(t, entity.PopupHidden, f.ctrl.State())
	})
}

func TestHostKeysIgnoredWhileHidden(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())
	require.NoError(t, f.ctrl.Preload())

	assert.False(t, f.host.PressKey(escape()))
	assert.Equal(t, 0, f.host.Pending())
}

func TestAltEnterOpensPreviewFromHostOnly(t *testing.T) {
	previews := mocks.NewMockPreviewProvider(t)
	item := mocks.NewMockPreviewItem(t)
	item.EXPECT().Title().Return("main.go").Maybe()
	item.EXPECT().OpenInEditorOrExternalViewer(mock.Anything).Return(nil).Once()
	previews.EXPECT().CurrentPreviewItem().Return(item, true).Once()

	f := newFixture(t, Dependencies{Previews: previews}, DefaultOptions())
	require.NoError(t, f.ctrl.ShowPopup())

	keyCode, mods := input.EncodeContent(input.Chord{Key: input.KeyEnter, Mods: input.ModAlt})
	assert.False(t, f.content.TypeKey(keyCode, mods))

	keyval, state := input.EncodeHost(input.Chord{Key: input.KeyEnter, Mods: input.ModAlt})
	assert.True(t, f.host.PressKey(entity.InputEvent{Source: entity.SourceHost, Kind: entity.KeyDown, KeyCode: keyval, Modifiers: state}))
	f.host.Drain()

	assert.Equal(t, uint64(1), f.ctrl.Snapshot().Router.PreviewsOpened)
	assert.Equal(t, entity.PopupVisible, f.ctrl.State())
}

func TestNilContentSurfaceStillCreatesPopup(t *testing.T) {
	h := headless.NewHost()
	ctrl, err := New(context.Background(), Dependencies{Host: h, Windows: h, Scheduler: h}, DefaultOptions())
	require.NoError(t, err)
	defer ctrl.Dispose()

	require.NoError(t, ctrl.ShowPopup())
	assert.Equal(t, entity.PopupVisible, ctrl.State())

	assert.True(t, h.PressKey(escape()))
	h.Drain()
	assert.Equal(t, entity.PopupHidden, ctrl.State())
}

func TestDispose(t *testing.T) {
	t.Run("idempotent and releases everything", func(t *testing.T) {
		f := newFixture(t, Dependencies{}, DefaultOptions())
		require.NoError(t, f.ctrl.ShowPopup())
		ref := f.ctrl.Snapshot().WindowRef

		f.ctrl.Dispose()
		f.ctrl.Dispose()

		assert.Equal(t, entity.PopupDisposed, f.ctrl.State())
		assert.Equal(t, 0, f.host.SubscriberCount())
		assert.Equal(t, 0, f.host.DispatcherCount())
		assert.True(t, f.content.Disposed())
		_, ok := f.host.Window(ref)
		assert.False(t, ok)

		assert.ErrorIs(t, f.ctrl.ShowPopup(), entity.ErrControllerDisposed)
		assert.ErrorIs(t, f.ctrl.Preload(), entity.ErrControllerDisposed)
		assert.NotPanics(t, f.ctrl.HidePopup)
	})

	t.Run("safe before creation", func(t *testing.T) {
		f := newFixture(t, Dependencies{}, DefaultOptions())
		f.ctrl.Dispose()
		assert.Equal(t, entity.PopupDisposed, f.ctrl.State())
		assert.Equal(t, 0, f.host.WindowsCreated())
	})

	t.Run("drops queued hide", func(t *testing.T) {
		f := newFixture(t, Dependencies{}, DefaultOptions())
		require.NoError(t, f.ctrl.ShowPopup())
		f.host.PressKey(escape())
		f.ctrl.Dispose()
		assert.NotPanics(t, func() { f.host.Drain() })
	})
}

func TestToggle(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())

	require.NoError(t, f.ctrl.Toggle())
	assert.Equal(t, entity.PopupVisible, f.ctrl.State())
	require.NoError(t, f.ctrl.Toggle())
	assert.Equal(t, entity.PopupHidden, f.ctrl.State())
}

func TestSetDismissOptionsAppliesLive(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())
	ref := f.showAt(t, scenarioBounds)

	opts := dismiss.DefaultOptions()
	opts.OnPointerLeave = false
	f.ctrl.SetDismissOptions(opts)

	f.host.Emit(entity.NewMouseEvent(entity.MouseEntered, ref, entity.Point{X: 200, Y: 200}))
	f.host.Emit(entity.NewMouseEvent(entity.MouseMoved, f.frame, entity.Point{X: 50, Y: 50}))
	assert.Equal(t, entity.PopupVisible, f.ctrl.State())

	f.host.Emit(entity.NewMouseEvent(entity.MousePressed, f.frame, entity.Point{X: 50, Y: 50}))
	assert.Equal(t, entity.PopupHidden, f.ctrl.State())

	history := f.ctrl.DismissHistory()
	require.NotEmpty(t, history)
	last := history[len(history)-1]
	assert.True(t, last.Dismissed)
	assert.Equal(t, dismiss.ReasonClickOutside, last.Reason)
}

func TestEventsAfterHideAreNotDelivered(t *testing.T) {
	f := newFixture(t, Dependencies{}, DefaultOptions())
	f.showAt(t, scenarioBounds)
	f.ctrl.HidePopup()

	f.host.Focus(f.frame)
	assert.Equal(t, 1, f.ctrl.Snapshot().Hides)
}

// emittingFactory builds windows whose native calls emit a focus event on
// the calling goroutine, the way GTK does for present and hide.
type emittingFactory struct {
	host  *headless.Host
	other entity.WindowRef
}

type emittingWindow struct {
	port.NativeWindow
	host  *headless.Host
	other entity.WindowRef
}

func (f emittingFactory) NewWindow(spec port.WindowSpec) (port.NativeWindow, error) {
	w, err := f.host.NewWindow(spec)
	if err != nil {
		return nil, err
	}
	return &emittingWindow{NativeWindow: w, host: f.host, other: f.other}, nil
}

func (w *emittingWindow) emit() {
	w.host.Emit(entity.NewFocusEvent(entity.WindowActivated, w.other))
}

func (w *emittingWindow) Show() {
	w.NativeWindow.Show()
	w.emit()
}

func (w *emittingWindow) Hide() {
	w.emit()
	w.NativeWindow.Hide()
}

func (w *emittingWindow) Destroy() {
	w.emit()
	w.NativeWindow.Destroy()
}

func TestLifecycle_SynchronousHostEventsDoNotDeadlock(t *testing.T) {
	host := headless.NewHost()
	frame := host.AddWindow(entity.NoWindow, entity.Rect{Width: 1920, Height: 1080})

	ctrl, err := New(context.Background(), Dependencies{
		Host:      host,
		Windows:   emittingFactory{host: host, other: frame},
		Scheduler: host,
		Content:   headless.NewContent(),
	}, DefaultOptions())
	require.NoError(t, err)

	var shown, hidden entity.PopupState
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := ctrl.ShowPopup(); err != nil {
			return
		}
		shown = ctrl.State()
		ctrl.HidePopup()
		hidden = ctrl.State()
		ctrl.Dispose()
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lifecycle calls did not return while the host emitted events from native calls")
	}

	assert.Equal(t, entity.PopupVisible, shown)
	assert.Equal(t, entity.PopupHidden, hidden)
	assert.Equal(t, 0, host.SubscriberCount())
}
