package gtkhost

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/findpopup/internal/application/port"
)

// AppActions resolves ids against the application's gio action map.
// It implements port.ActionRegistry.
type AppActions struct {
	app *gtk.Application
}

// NewAppActions wraps app.
func NewAppActions(app *gtk.Application) *AppActions {
	return &AppActions{app: app}
}

// Lookup returns the action named id, looked up at call time.
func (a *AppActions) Lookup(id string) (port.Action, bool) {
	if !a.app.HasAction(id) || !a.app.ActionIsEnabled(id) {
		return nil, false
	}
	app := a.app
	return port.ActionFunc(func(context.Context) error {
		app.ActivateAction(id, nil)
		return nil
	}), true
}

// Register adds a parameterless application action.
func (a *AppActions) Register(id string, fn func()) {
	action := gio.NewSimpleAction(id, nil)
	action.ConnectActivate(func(*glib.Variant) {
		fn()
	})
	a.app.AddAction(action)
}
