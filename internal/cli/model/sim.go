package model

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/findpopup/internal/cli/styles"
	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/bnema/findpopup/internal/infrastructure/actions"
	"github.com/bnema/findpopup/internal/infrastructure/headless"
	"github.com/bnema/findpopup/internal/infrastructure/preview"
	"github.com/bnema/findpopup/internal/ui/controller"
	"github.com/bnema/findpopup/internal/ui/dismiss"
	"github.com/bnema/findpopup/internal/ui/input"
)

const (
	simPopupWidth  = 44
	simPopupHeight = 9
	simMinWidth    = 24
	simMinHeight   = 6
	simLogSize     = 4
	// Rows below the desktop: status bar and help.
	simChromeRows = 2
)

// SimConfig configures the popup simulator.
type SimConfig struct {
	Dismiss dismiss.Options
	// PreviewTitle is the item Alt+Enter opens. Empty means nothing is previewed.
	PreviewTitle string
	Theme        *styles.Theme
}

// SimModel drives a real popup controller on the headless host from the
// terminal. The terminal is the screen, the mouse produces window events
// and keys go through either the host or the content pipeline.
type SimModel struct {
	ctx     context.Context
	host    *headless.Host
	content *headless.Content
	ctrl    *controller.PopupController
	item    *simItem
	overlay *atomic.Int64

	frame    entity.WindowRef
	other    entity.WindowRef
	dropdown entity.WindowRef

	width, height int
	pointerIn     bool
	lastDismissal time.Time
	fromContent   bool
	dismiss       dismiss.Options

	keys  styles.SimKeyMap
	help  help.Model
	theme *styles.Theme
	log   []string
	err   error
}

// NewSimModel creates the simulator. The controller is disposed when the
// model quits.
func NewSimModel(ctx context.Context, cfg SimConfig) (SimModel, error) {
	theme := cfg.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}

	host := headless.NewHost()
	content := headless.NewContent()
	m := SimModel{
		ctx:     ctx,
		host:    host,
		content: content,
		overlay: &atomic.Int64{},
		frame:   host.AddWindow(entity.NoWindow, entity.Rect{Width: 80, Height: 24}),
		// The other application has no on-screen area; it is reached with a key.
		other:   host.AddWindow(entity.NoWindow, entity.Rect{}),
		dismiss: cfg.Dismiss,
		keys:    styles.DefaultSimKeyMap(),
		help:    styles.NewStyledHelp(theme),
		theme:   theme,
	}

	panel := preview.NewPanel()
	if cfg.PreviewTitle != "" {
		m.item = &simItem{title: cfg.PreviewTitle}
		panel.Select(m.item)
	}

	registry := actions.NewMap()
	overlay := m.overlay
	registry.Register(controller.DefaultThemeOverlayActionID, simAction(func() { overlay.Add(1) }))

	opts := controller.DefaultOptions()
	opts.ContextID = "sim"
	opts.Window.MinSize = entity.Size{Width: simMinWidth, Height: simMinHeight}
	opts.Window.DefaultSize = entity.Size{Width: simPopupWidth, Height: simPopupHeight}
	opts.Dismiss = cfg.Dismiss

	ctrl, err := controller.New(ctx, controller.Dependencies{
		Host:      host,
		Windows:   host,
		Scheduler: host,
		Content:   content,
		Previews:  panel,
		Actions:   registry,
	}, opts)
	if err != nil {
		return SimModel{}, err
	}
	m.ctrl = ctrl
	return m, nil
}

// Controller exposes the simulated controller.
func (m SimModel) Controller() *controller.PopupController {
	return m.ctrl
}

// Init implements tea.Model.
func (m SimModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SimModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.host.SetBounds(m.frame, entity.Rect{Width: m.width, Height: m.desktopRows()})
		m.layout()
		return m, nil
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.ctrl.Dispose()
			return m, tea.Quit
		}
		m = m.handleKey(msg)
	default:
		return m, nil
	}

	// The model's Update plays the UI thread; run what was queued on it.
	m.host.Drain()
	m = m.afterTick()
	return m, nil
}

func (m SimModel) handleKey(msg tea.KeyMsg) SimModel {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Toggle):
		if err := m.ctrl.Toggle(); err != nil {
			m.err = err
		}
		m.layout()
	case key.Matches(msg, m.keys.Source):
		m.fromContent = !m.fromContent
	case key.Matches(msg, m.keys.OtherApp):
		m.host.Focus(m.other)
		m = m.record("focus moved to another application")
	case key.Matches(msg, m.keys.Dropdown):
		m = m.focusDropdown()
	case key.Matches(msg, m.keys.Variant):
		m.dismiss.OnPointerLeave = !m.dismiss.OnPointerLeave
		m.ctrl.SetDismissOptions(m.dismiss)
		m = m.record(fmt.Sprintf("pointer-leave dismissal %s", onOff(m.dismiss.OnPointerLeave)))
	default:
		m = m.routeKey(msg)
	}
	return m
}

// routeKey feeds a key through the selected input pipeline.
func (m SimModel) routeKey(msg tea.KeyMsg) SimModel {
	chord := chordFromKey(msg)

	var handled bool
	source := entity.SourceHost
	if m.fromContent {
		source = entity.SourceContentSurface
		code, mods := input.EncodeContent(chord)
		handled = m.content.TypeKey(code, mods)
	} else {
		keyval, state := input.EncodeHost(chord)
		handled = m.host.PressKey(entity.InputEvent{
			Source:    entity.SourceHost,
			Kind:      entity.KeyDown,
			KeyCode:   keyval,
			Modifiers: state,
		})
	}

	verdict := "passed through"
	if handled {
		verdict = "handled"
	}
	return m.record(fmt.Sprintf("%s from %s: %s", chord, source, verdict))
}

func chordFromKey(msg tea.KeyMsg) input.Chord {
	c := input.Chord{Key: input.KeyOther}
	if msg.Alt {
		c.Mods |= input.ModAlt
	}
	switch msg.Type {
	case tea.KeyEsc:
		c.Key = input.KeyEscape
	case tea.KeyEnter:
		c.Key = input.KeyEnter
	case tea.KeyShiftTab:
		c.Mods |= input.ModShift
	}
	return c
}

func (m SimModel) focusDropdown() SimModel {
	popup := m.ctrl.Snapshot().WindowRef
	if popup == entity.NoWindow {
		return m.record("no popup to own a dropdown")
	}
	if owner, ok := m.host.Owner(m.dropdown); !ok || owner != popup {
		m.dropdown = m.host.AddWindow(popup, entity.Rect{})
	}
	m.host.Focus(m.dropdown)
	return m.record("focus moved to a dropdown owned by the popup")
}

func (m SimModel) handleMouse(msg tea.MouseMsg) SimModel {
	snap := m.ctrl.Snapshot()
	popup := snap.WindowRef
	visible := snap.State == entity.PopupVisible

	p := entity.Point{X: msg.X, Y: msg.Y}
	target, _ := m.host.WindowAt(p)
	inside := visible && target == popup

	switch msg.Action {
	case tea.MouseActionMotion:
		if inside && !m.pointerIn {
			m.host.Emit(entity.NewMouseEvent(entity.MouseEntered, popup, p))
		} else if !inside && m.pointerIn {
			m.host.Emit(entity.NewMouseEvent(entity.MouseExited, popup, p))
		}
		m.pointerIn = inside
		m.host.Emit(entity.NewMouseEvent(entity.MouseMoved, target, p))
	case tea.MouseActionPress:
		m.host.Emit(entity.NewMouseEvent(entity.MousePressed, target, p))
	}
	return m
}

// afterTick records dismissals and forgets pointer state of a hidden popup.
func (m SimModel) afterTick() SimModel {
	snap := m.ctrl.Snapshot()
	if snap.State != entity.PopupVisible {
		m.pointerIn = false
	}
	if d := snap.LastDecision; d != nil && d.Dismissed && d.At.After(m.lastDismissal) {
		m.lastDismissal = d.At
		m = m.record(fmt.Sprintf("dismissed: %s on %s", d.Reason, d.Event.Kind))
	}
	return m
}

func (m SimModel) record(line string) SimModel {
	log := append(append([]string(nil), m.log...), line)
	if len(log) > simLogSize {
		log = log[len(log)-simLogSize:]
	}
	m.log = log
	return m
}

// layout centers the popup on the desktop.
func (m SimModel) layout() {
	snap := m.ctrl.Snapshot()
	if snap.WindowRef == entity.NoWindow || m.width == 0 {
		return
	}
	w := min(simPopupWidth, m.width)
	h := min(simPopupHeight, m.desktopRows())
	m.host.SetBounds(snap.WindowRef, entity.Rect{
		X:      (m.width - w) / 2,
		Y:      (m.desktopRows() - h) / 2,
		Width:  w,
		Height: h,
	})
}

func (m SimModel) desktopRows() int {
	return max(m.height-simChromeRows, 1)
}

// View implements tea.Model.
func (m SimModel) View() string {
	if m.width == 0 {
		return ""
	}

	snap := m.ctrl.Snapshot()
	var boxLines []string
	var bounds entity.Rect
	if snap.State == entity.PopupVisible && snap.HasBounds {
		bounds = snap.Bounds
		boxLines = m.renderPopup(snap, bounds)
	}

	rows := make([]string, 0, m.height)
	for y := 0; y < m.desktopRows(); y++ {
		if i := y - bounds.Y; boxLines != nil && i >= 0 && i < len(boxLines) {
			right := max(m.width-bounds.X-bounds.Width, 0)
			rows = append(rows,
				m.theme.Desktop.Render(strings.Repeat("·", bounds.X))+
					boxLines[i]+
					m.theme.Desktop.Render(strings.Repeat("·", right)))
			continue
		}
		rows = append(rows, m.theme.Desktop.Render(strings.Repeat("·", m.width)))
	}

	rows = append(rows, m.statusBar(snap), m.help.View(m.keys))
	return strings.Join(rows, "\n")
}

func (m SimModel) renderPopup(snap controller.Snapshot, bounds entity.Rect) []string {
	style := m.theme.PopupInactive
	if snap.Phase == entity.PhaseTracking {
		style = m.theme.Popup
	}

	previewLine := "nothing previewed"
	if m.item != nil {
		previewLine = "preview: " + m.item.title
	}
	body := strings.Join([]string{
		m.theme.Title.Render("Find"),
		m.theme.Subtle.Render("phase: " + snap.Phase.String()),
		m.theme.Subtle.Render(previewLine),
	}, "\n")

	rendered := style.
		Width(max(bounds.Width-2, 1)).
		Height(max(bounds.Height-2, 1)).
		MaxHeight(bounds.Height).
		Render(body)
	return strings.Split(rendered, "\n")
}

func (m SimModel) statusBar(snap controller.Snapshot) string {
	source := "host"
	if m.fromContent {
		source = "content"
	}
	opened := int64(0)
	if m.item != nil {
		opened = m.item.opened.Load()
	}

	parts := []string{
		m.theme.Badge.Render(snap.State.String()),
		m.theme.BadgeMuted.Render("keys: " + source),
		fmt.Sprintf("hides %d", snap.Hides),
		fmt.Sprintf("opened %d", opened),
		fmt.Sprintf("overlay %d", m.overlay.Load()),
	}
	if len(m.log) > 0 {
		parts = append(parts, m.log[len(m.log)-1])
	}
	if m.err != nil {
		parts = append(parts, m.theme.ErrorStyle.Render(m.err.Error()))
	}
	return m.theme.StatusBar.Width(m.width).MaxHeight(1).Render(strings.Join(parts, "  "))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

type simItem struct {
	title  string
	opened atomic.Int64
}

func (i *simItem) Title() string { return i.title }

func (i *simItem) OpenInEditorOrExternalViewer(context.Context) error {
	i.opened.Add(1)
	return nil
}

type simAction func()

func (f simAction) Perform(context.Context) error {
	f()
	return nil
}
