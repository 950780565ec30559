package headless

import (
	"errors"
	"testing"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ port.HostWindowing  = (*Host)(nil)
	_ port.WindowFactory  = (*Host)(nil)
	_ port.UIScheduler    = (*Host)(nil)
	_ port.NativeWindow   = (*Window)(nil)
	_ port.ContentSurface = (*Content)(nil)
)

func TestHost_NewWindowPlacesAndClamps(t *testing.T) {
	h := NewHost()

	native, err := h.NewWindow(port.WindowSpec{
		Title:       "Find",
		MinSize:     entity.Size{Width: 750, Height: 420},
		DefaultSize: entity.Size{Width: 500, Height: 900},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, h.WindowsCreated())

	_, ok := native.BoundsOnScreen()
	assert.False(t, ok, "hidden window has no bounds")

	native.Show()
	bounds, ok := native.BoundsOnScreen()
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 100, Y: 100, Width: 750, Height: 900}, bounds)
}

func TestHost_FailNextWindow(t *testing.T) {
	h := NewHost()
	boom := errors.New("no display")
	h.FailNextWindow(boom)

	_, err := h.NewWindow(port.WindowSpec{})
	assert.ErrorIs(t, err, boom)

	_, err = h.NewWindow(port.WindowSpec{})
	assert.NoError(t, err)
}

func TestHost_OwnerChainAndDestroy(t *testing.T) {
	h := NewHost()
	frame := h.AddWindow(entity.NoWindow, entity.Rect{Width: 1920, Height: 1080})
	dialog := h.AddWindow(frame, entity.Rect{X: 10, Y: 10, Width: 100, Height: 100})

	owner, ok := h.Owner(dialog)
	require.True(t, ok)
	assert.Equal(t, frame, owner)

	_, ok = h.Owner(frame)
	assert.False(t, ok)

	w, ok := h.Window(frame)
	require.True(t, ok)
	w.Destroy()

	_, ok = h.Owner(dialog)
	assert.False(t, ok, "owner links to a destroyed window are dropped")
	assert.Equal(t, []entity.WindowRef{dialog}, h.Windows())
}

func TestHost_EmitSnapshotsListeners(t *testing.T) {
	h := NewHost()

	var got []entity.WindowEventKind
	var unsubscribe func()
	unsubscribe = h.Subscribe(func(ev entity.WindowEvent) {
		got = append(got, ev.Kind)
		unsubscribe()
	})
	h.Subscribe(func(ev entity.WindowEvent) {
		got = append(got, ev.Kind)
	})

	h.Emit(entity.NewFocusEvent(entity.WindowActivated, 1))
	assert.Equal(t, []entity.WindowEventKind{entity.WindowActivated, entity.WindowActivated}, got)
	assert.Equal(t, 1, h.SubscriberCount())
}

func TestHost_FocusEmitsActivationAndFocus(t *testing.T) {
	h := NewHost()
	frame := h.AddWindow(entity.NoWindow, entity.Rect{Width: 100, Height: 100})

	var got []entity.WindowEvent
	h.Subscribe(func(ev entity.WindowEvent) { got = append(got, ev) })

	h.Focus(frame)

	focused, ok := h.FocusedWindow()
	require.True(t, ok)
	assert.Equal(t, frame, focused)
	require.Len(t, got, 2)
	assert.Equal(t, entity.WindowActivated, got[0].Kind)
	assert.Equal(t, entity.WindowFocusGained, got[1].Kind)
}

func TestHost_PressKeyStopsAtFirstConsumer(t *testing.T) {
	h := NewHost()

	calls := 0
	h.AddKeyDispatcher(func(entity.InputEvent) bool { calls++; return true })
	remove := h.AddKeyDispatcher(func(entity.InputEvent) bool { calls++; return false })

	assert.True(t, h.PressKey(entity.InputEvent{}))
	assert.Equal(t, 1, calls)

	remove()
	assert.Equal(t, 1, h.DispatcherCount())
}

func TestHost_DrainRunsNestedTasks(t *testing.T) {
	h := NewHost()

	order := []int{}
	h.RunLater(func() {
		order = append(order, 1)
		h.RunLater(func() { order = append(order, 3) })
	})
	h.RunLater(func() { order = append(order, 2) })
	h.RunLater(nil)

	assert.Equal(t, 2, h.Pending())
	assert.Equal(t, 3, h.Drain())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, h.Pending())
}

func TestHost_WindowAtPrefersNewest(t *testing.T) {
	h := NewHost()
	frame := h.AddWindow(entity.NoWindow, entity.Rect{Width: 1000, Height: 1000})
	overlay := h.AddWindow(frame, entity.Rect{X: 100, Y: 100, Width: 50, Height: 50})

	ref, ok := h.WindowAt(entity.Point{X: 120, Y: 120})
	require.True(t, ok)
	assert.Equal(t, overlay, ref)

	ref, ok = h.WindowAt(entity.Point{X: 500, Y: 500})
	require.True(t, ok)
	assert.Equal(t, frame, ref)

	_, ok = h.WindowAt(entity.Point{X: 5000, Y: 5000})
	assert.False(t, ok)
}

func TestContent_TypeKeyUsesHandler(t *testing.T) {
	c := NewContent()
	assert.False(t, c.TypeKey(27, 0))

	c.SetKeyHandler(func(keyCode, _ uint) bool { return keyCode == 27 })
	assert.True(t, c.HasKeyHandler())
	assert.True(t, c.TypeKey(27, 0))
	assert.False(t, c.TypeKey(13, 0))

	c.Dispose()
	assert.True(t, c.Disposed())
	assert.False(t, c.TypeKey(27, 0))
}
