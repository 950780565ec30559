package input

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/application/port/mocks"
	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type queueScheduler struct {
	tasks []func()
}

func (q *queueScheduler) RunLater(fn func()) { q.tasks = append(q.tasks, fn) }

func (q *queueScheduler) drain() {
	for len(q.tasks) > 0 {
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		task()
	}
}

type routerFixture struct {
	router   *Router
	sched    *queueScheduler
	previews *mocks.MockPreviewProvider
	hides    int
	active   bool
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	f := &routerFixture{sched: &queueScheduler{}, active: true}
	f.previews = mocks.NewMockPreviewProvider(t)

	r, err := NewRouter(context.Background(), RouterOptions{
		Scheduler: f.sched,
		Hide:      func() { f.hides++ },
		Previews:  f.previews,
		IsActive:  func() bool { return f.active },
	})
	require.NoError(t, err)
	t.Cleanup(r.Close)
	f.router = r
	return f
}

func TestNewRouter_RequiresSchedulerAndHide(t *testing.T) {
	_, err := NewRouter(context.Background(), RouterOptions{Hide: func() {}})
	assert.Error(t, err)

	_, err = NewRouter(context.Background(), RouterOptions{Scheduler: &queueScheduler{}})
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		source entity.InputSource
		chord  Chord
		want   Action
	}{
		{"escape from host", entity.SourceHost, Chord{Key: KeyEscape}, ActionHide},
		{"escape from content", entity.SourceContentSurface, Chord{Key: KeyEscape}, ActionHide},
		{"shift escape passes", entity.SourceHost, Chord{Key: KeyEscape, Mods: ModShift}, ActionNone},
		{"alt enter from host", entity.SourceHost, Chord{Key: KeyEnter, Mods: ModAlt}, ActionOpenPreview},
		{"alt shift enter from host", entity.SourceHost, Chord{Key: KeyEnter, Mods: ModAlt | ModShift}, ActionOpenPreview},
		{"alt enter from content", entity.SourceContentSurface, Chord{Key: KeyEnter, Mods: ModAlt}, ActionNone},
		{"plain enter", entity.SourceHost, Chord{Key: KeyEnter}, ActionNone},
		{"other key", entity.SourceHost, Chord{Key: KeyOther}, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.source, tt.chord))
		})
	}
}

func TestRouter_EscapeSchedulesOneHideFromEitherSource(t *testing.T) {
	tests := []struct {
		name        string
		fromContent bool
		keyCode     uint
	}{
		{"host", false, HostKeyEscape},
		{"content", true, ContentKeyEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)

			assert.True(t, f.router.Handle(tt.fromContent, tt.keyCode, 0))
			assert.Equal(t, 0, f.hides, "hide must be asynchronous")
			require.Len(t, f.sched.tasks, 1)

			f.sched.drain()
			assert.Equal(t, 1, f.hides)
		})
	}
}

func TestRouter_EscapeBurstCoalesces(t *testing.T) {
	f := newRouterFixture(t)

	assert.True(t, f.router.Handle(false, HostKeyEscape, 0))
	assert.True(t, f.router.Handle(true, ContentKeyEscape, 0))
	assert.True(t, f.router.Handle(false, HostKeyEscape, HostLockMask))

	require.Len(t, f.sched.tasks, 1, "Escapes arriving before the pending hide runs share it")
	f.sched.drain()
	assert.Equal(t, 1, f.hides, "one hide per burst instead of one per Escape; hiding is idempotent so the outcome is the same")

	stats := f.router.Stats()
	assert.Equal(t, uint64(1), stats.HidesRequested)
	assert.Equal(t, uint64(2), stats.HidesCoalesced)
}

func TestRouter_EscapeWithModifiersPassesThrough(t *testing.T) {
	f := newRouterFixture(t)

	assert.False(t, f.router.Handle(false, HostKeyEscape, HostControlMask))
	assert.False(t, f.router.Handle(true, ContentKeyEscape, ContentShiftBit))
	assert.Empty(t, f.sched.tasks)
	assert.Equal(t, uint64(2), f.router.Stats().PassedThrough)
}

func TestRouter_AltEnterFromHostOpensPreview(t *testing.T) {
	f := newRouterFixture(t)

	item := mocks.NewMockPreviewItem(t)
	item.EXPECT().Title().Return("main.go").Maybe()
	item.EXPECT().OpenInEditorOrExternalViewer(mock.Anything).Return(nil).Once()
	f.previews.EXPECT().CurrentPreviewItem().Return(item, true).Once()

	assert.True(t, f.router.Handle(false, HostKeyReturn, HostAltMask))
	f.sched.drain()

	assert.Equal(t, uint64(1), f.router.Stats().PreviewsOpened)
}

func TestRouter_AltKeypadEnterCountsAsEnter(t *testing.T) {
	f := newRouterFixture(t)

	item := mocks.NewMockPreviewItem(t)
	item.EXPECT().Title().Return("README.md").Maybe()
	item.EXPECT().OpenInEditorOrExternalViewer(mock.Anything).Return(nil).Once()
	f.previews.EXPECT().CurrentPreviewItem().Return(item, true).Once()

	assert.True(t, f.router.Handle(false, HostKeyKPEnter, HostAltMask|HostLockMask))
	f.sched.drain()
}

func TestRouter_AltEnterFromContentNeverOpensPreview(t *testing.T) {
	f := newRouterFixture(t)

	assert.False(t, f.router.Handle(true, ContentKeyEnter, ContentAltBit))
	assert.Empty(t, f.sched.tasks)
	f.previews.AssertNotCalled(t, "CurrentPreviewItem")
}

func TestRouter_AltEnterWithoutPreviewItemIsNotHandled(t *testing.T) {
	f := newRouterFixture(t)
	f.previews.EXPECT().CurrentPreviewItem().Return(nil, false).Once()

	assert.False(t, f.router.Handle(false, HostKeyReturn, HostAltMask))
	assert.Empty(t, f.sched.tasks)
}

func TestRouter_OpenFailuresAreContained(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		f := newRouterFixture(t)

		item := mocks.NewMockPreviewItem(t)
		item.EXPECT().Title().Return("broken").Maybe()
		item.EXPECT().OpenInEditorOrExternalViewer(mock.Anything).Return(errors.New("no editor")).Once()
		f.previews.EXPECT().CurrentPreviewItem().Return(item, true).Once()

		assert.True(t, f.router.Handle(false, HostKeyReturn, HostAltMask))
		assert.NotPanics(t, f.sched.drain)
		assert.Equal(t, uint64(1), f.router.Stats().PreviewsFailed)
	})

	t.Run("panic", func(t *testing.T) {
		f := newRouterFixture(t)

		item := mocks.NewMockPreviewItem(t)
		item.EXPECT().OpenInEditorOrExternalViewer(mock.Anything).RunAndReturn(func(context.Context) error {
			panic("viewer crashed")
		}).Once()
		f.previews.EXPECT().CurrentPreviewItem().Return(item, true).Once()

		assert.True(t, f.router.Handle(false, HostKeyReturn, HostAltMask))
		assert.NotPanics(t, f.sched.drain)
		assert.Equal(t, uint64(1), f.router.Stats().PreviewsFailed)
	})
}

func TestRouter_NilPreviewProvider(t *testing.T) {
	sched := &queueScheduler{}
	r, err := NewRouter(context.Background(), RouterOptions{Scheduler: sched, Hide: func() {}})
	require.NoError(t, err)

	assert.False(t, r.Handle(false, HostKeyReturn, HostAltMask))
}

func TestRouter_HostEventsIgnoredWhileInactive(t *testing.T) {
	f := newRouterFixture(t)
	f.active = false

	handled := f.router.HandleHostEvent(entity.InputEvent{
		Source:  entity.SourceHost,
		Kind:    entity.KeyDown,
		KeyCode: HostKeyEscape,
	})

	assert.False(t, handled)
	assert.Empty(t, f.sched.tasks)
	assert.Equal(t, uint64(1), f.router.Stats().IgnoredWhileIdle)
}

func TestRouter_HostKeyUpIsIgnored(t *testing.T) {
	f := newRouterFixture(t)

	assert.False(t, f.router.HandleHostEvent(entity.InputEvent{
		Source:  entity.SourceHost,
		Kind:    entity.KeyUp,
		KeyCode: HostKeyEscape,
	}))
	assert.Empty(t, f.sched.tasks)
}

func TestRouter_ContentKeyHandlerMatchesPortSignature(t *testing.T) {
	f := newRouterFixture(t)

	var handler port.KeyHandler = f.router.HandleContentKey
	assert.True(t, handler(ContentKeyEscape, 0))
}

func TestRouter_CloseDropsQueuedWork(t *testing.T) {
	f := newRouterFixture(t)

	assert.True(t, f.router.Handle(false, HostKeyEscape, 0))
	f.router.Close()
	f.sched.drain()

	assert.Equal(t, 0, f.hides)
	assert.False(t, f.router.Handle(false, HostKeyEscape, 0))
}
