package port

import "github.com/bnema/findpopup/internal/domain/entity"

// WindowSpec describes the top-level window the popup lives in.
type WindowSpec struct {
	Title       string
	MinSize     entity.Size
	DefaultSize entity.Size
	// Content is the toolkit widget returned by ContentSurface.Component.
	Content any
}

// NativeWindow is one borderless, movable, resizable top-level window.
type NativeWindow interface {
	Ref() entity.WindowRef
	Show()
	Hide()
	IsVisible() bool
	// BoundsOnScreen returns false while the window is not realized or showing.
	BoundsOnScreen() (entity.Rect, bool)
	Focus()
	Destroy()
}

// WindowFactory builds native windows.
type WindowFactory interface {
	NewWindow(spec WindowSpec) (NativeWindow, error)
}

// WindowFactoryFunc adapts a function to WindowFactory.
type WindowFactoryFunc func(spec WindowSpec) (NativeWindow, error)

// NewWindow implements WindowFactory.
func (f WindowFactoryFunc) NewWindow(spec WindowSpec) (NativeWindow, error) {
	return f(spec)
}
