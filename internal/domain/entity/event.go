package entity

import "fmt"

// WindowRef identifies a top-level host window.
// The zero value means "no window".
type WindowRef uint64

// NoWindow is the zero WindowRef.
const NoWindow WindowRef = 0

// WindowEventKind enumerates the native window/mouse events the arbiter consumes.
type WindowEventKind int

const (
	WindowActivated WindowEventKind = iota + 1
	WindowFocusGained
	MouseEntered
	MouseMoved
	MousePressed
	MouseExited
)

var windowEventKindNames = map[WindowEventKind]string{
	WindowActivated:   "activated",
	WindowFocusGained: "focus_gained",
	MouseEntered:      "mouse_entered",
	MouseMoved:        "mouse_moved",
	MousePressed:      "mouse_pressed",
	MouseExited:       "mouse_exited",
}

func (k WindowEventKind) String() string {
	if name, ok := windowEventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("window_event(%d)", int(k))
}

// ParseWindowEventKind resolves the snake_case name used in traces and logs.
func ParseWindowEventKind(name string) (WindowEventKind, bool) {
	for kind, n := range windowEventKindNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

// IsFocusChange reports whether the event announces a window activation or focus gain.
func (k WindowEventKind) IsFocusChange() bool {
	return k == WindowActivated || k == WindowFocusGained
}

// WindowEvent is a single native windowing event.
// Location is only meaningful when HasLocation is true.
type WindowEvent struct {
	Kind        WindowEventKind
	Target      WindowRef
	Location    Point
	HasLocation bool
}

// NewMouseEvent builds a pointer event carrying a screen location.
func NewMouseEvent(kind WindowEventKind, target WindowRef, at Point) WindowEvent {
	return WindowEvent{Kind: kind, Target: target, Location: at, HasLocation: true}
}

// NewFocusEvent builds an activation or focus-gained event for target.
func NewFocusEvent(kind WindowEventKind, target WindowRef) WindowEvent {
	return WindowEvent{Kind: kind, Target: target}
}

// InputSource tells which keyboard pipeline produced an event.
type InputSource int

const (
	// SourceHost is the host's native key dispatcher.
	SourceHost InputSource = iota
	// SourceContentSurface is the embedded content surface's own pipeline.
	SourceContentSurface
)

func (s InputSource) String() string {
	switch s {
	case SourceHost:
		return "host"
	case SourceContentSurface:
		return "content"
	default:
		return "unknown"
	}
}

// KeyEventKind distinguishes presses from releases.
type KeyEventKind int

const (
	KeyDown KeyEventKind = iota
	KeyUp
)

// InputEvent is one keyboard event in its source's native encoding.
type InputEvent struct {
	Source    InputSource
	Kind      KeyEventKind
	KeyCode   uint
	Modifiers uint
}
