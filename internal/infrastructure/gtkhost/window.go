package gtkhost

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/domain/entity"
)

const popupCSSClass = "findpopup"

// WindowFactory builds undecorated popup windows that belong to the host's
// application. A title strip wrapped in a gtk.WindowHandle keeps them movable.
type WindowFactory struct {
	host *Host
	// Parent, when set, becomes the transient parent of every popup.
	Parent *gtk.Window
}

// NewWindowFactory returns a factory creating windows tracked by host.
func NewWindowFactory(host *Host) *WindowFactory {
	return &WindowFactory{host: host}
}

// NewWindow implements port.WindowFactory.
func (f *WindowFactory) NewWindow(spec port.WindowSpec) (port.NativeWindow, error) {
	var child gtk.Widgetter
	if spec.Content != nil {
		widget, ok := spec.Content.(gtk.Widgetter)
		if !ok {
			return nil, fmt.Errorf("popup window: content %T is not a GTK widget", spec.Content)
		}
		child = widget
	}

	w := gtk.NewWindow()
	w.SetTitle(spec.Title)
	w.SetDecorated(false)
	w.SetResizable(true)
	w.SetHideOnClose(true)
	w.AddCSSClass(popupCSSClass)
	w.SetSizeRequest(spec.MinSize.Width, spec.MinSize.Height)
	w.SetDefaultSize(spec.DefaultSize.Width, spec.DefaultSize.Height)
	if f.Parent != nil {
		w.SetTransientFor(f.Parent)
	}

	title := gtk.NewLabel(spec.Title)
	title.AddCSSClass("title")
	title.SetMarginTop(6)
	title.SetMarginBottom(6)
	handle := gtk.NewWindowHandle()
	handle.SetChild(title)

	box := gtk.NewBox(gtk.OrientationVertical, 0)
	box.Append(handle)
	if child != nil {
		gtk.BaseWidget(child).SetVExpand(true)
		gtk.BaseWidget(child).SetHExpand(true)
		box.Append(child)
	}
	w.SetChild(box)

	// Adding the window to the application makes the host track it.
	w.SetApplication(f.host.app)
	ref, ok := f.host.Ref(w)
	if !ok {
		ref = f.host.track(w)
	}
	f.host.markComparable(ref)
	if child != nil {
		f.host.markContent(ref, child)
	}

	return &nativeWindow{window: w, ref: ref, host: f.host}, nil
}

type nativeWindow struct {
	window *gtk.Window
	ref    entity.WindowRef
	host   *Host
}

func (n *nativeWindow) Ref() entity.WindowRef { return n.ref }

func (n *nativeWindow) Show() {
	n.window.Present()
}

func (n *nativeWindow) Hide() {
	n.window.SetVisible(false)
}

func (n *nativeWindow) IsVisible() bool {
	return n.window.IsVisible()
}

// BoundsOnScreen reports the window in its own surface coordinates, the
// space the host uses for the popup's pointer events.
func (n *nativeWindow) BoundsOnScreen() (entity.Rect, bool) {
	if !n.window.Realized() || !n.window.IsVisible() {
		return entity.Rect{}, false
	}
	return entity.Rect{Width: n.window.Width(), Height: n.window.Height()}, true
}

func (n *nativeWindow) Focus() {
	n.window.Present()
	n.window.GrabFocus()
}

func (n *nativeWindow) Destroy() {
	n.host.forget(n.window)
	n.window.Destroy()
}
