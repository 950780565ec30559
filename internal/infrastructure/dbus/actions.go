// Package dbus reaches application actions exported on the session bus.
package dbus

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/logging"
	"github.com/godbus/dbus/v5"
)

const (
	busDest  = "org.freedesktop.DBus"
	busPath  = "/org/freedesktop/DBus"
	appIface = "org.freedesktop.Application"
	// GTK applications export their action group under this interface too.
	gtkActionsIface = "org.gtk.Actions"

	defaultCallTimeout = 500 * time.Millisecond
	defaultMaxAge      = 5 * time.Second
)

// ObjectFunc resolves a remote object. (*dbus.Conn).Object satisfies it.
type ObjectFunc func(dest string, path dbus.ObjectPath) dbus.BusObject

// remoteActions is what the bus said about the target application.
type remoteActions struct {
	owned bool
	// listed is false when the owner does not export org.gtk.Actions.
	listed  bool
	actions []string
	at      time.Time
}

// ActionRegistry implements port.ActionRegistry over
// org.freedesktop.Application.ActivateAction.
//
// Lookup and Perform never wait on the bus: Lookup answers from the last
// Refresh and schedules a background refresh when that answer is stale, and
// Perform sends ActivateAction without waiting for a reply.
type ActionRegistry struct {
	ctx     context.Context
	name    string
	path    dbus.ObjectPath
	object  ObjectFunc
	conn    *dbus.Conn
	timeout time.Duration
	maxAge  time.Duration
	now     func() time.Time

	mu         sync.Mutex
	known      *remoteActions
	refreshing bool
	refreshed  chan struct{}
}

var _ port.ActionRegistry = (*ActionRegistry)(nil)

// Connect opens the session bus, targets the application owning name and
// starts the first refresh in the background.
func Connect(ctx context.Context, name string) (*ActionRegistry, error) {
	if name == "" {
		return nil, fmt.Errorf("dbus action registry: bus name is required")
	}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	r := NewActionRegistry(ctx, name, conn.Object)
	r.conn = conn
	r.refreshAsync()
	return r, nil
}

// NewActionRegistry targets the application owning name through object.
// Nothing is known about the application until Refresh runs.
func NewActionRegistry(ctx context.Context, name string, object ObjectFunc) *ActionRegistry {
	return &ActionRegistry{
		ctx:     ctx,
		name:    name,
		path:    ObjectPathForName(name),
		object:  object,
		timeout: defaultCallTimeout,
		maxAge:  defaultMaxAge,
		now:     time.Now,
	}
}

// ObjectPathForName maps a well-known bus name to the object path GApplication
// exports itself at, e.g. org.example.App becomes /org/example/App.
func ObjectPathForName(name string) dbus.ObjectPath {
	path := "/" + strings.ReplaceAll(name, ".", "/")
	path = strings.ReplaceAll(path, "-", "_")
	return dbus.ObjectPath(path)
}

// Refresh asks the bus whether the name has an owner and which actions it
// lists. It blocks for up to two call timeouts and must not run on the UI thread.
func (r *ActionRegistry) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	next := &remoteActions{at: r.now()}
	err := r.object(busDest, busPath).
		CallWithContext(ctx, busDest+".NameHasOwner", 0, r.name).
		Store(&next.owned)
	if err != nil {
		return fmt.Errorf("query owner of %s: %w", r.name, err)
	}

	if next.owned {
		var names []string
		listErr := r.object(r.name, r.path).
			CallWithContext(ctx, gtkActionsIface+".List", 0).
			Store(&names)
		if listErr == nil {
			next.listed = true
			next.actions = names
		}
	}

	r.mu.Lock()
	r.known = next
	r.mu.Unlock()
	return nil
}

// refreshAsync starts a background Refresh unless one is running.
func (r *ActionRegistry) refreshAsync() {
	r.mu.Lock()
	if r.refreshing {
		r.mu.Unlock()
		return
	}
	r.refreshing = true
	done := make(chan struct{})
	r.refreshed = done
	r.mu.Unlock()

	go func() {
		defer close(done)
		if err := r.Refresh(r.ctx); err != nil {
			logging.FromContext(r.ctx).Debug().Err(err).Str("name", r.name).Msg("theme overlay refresh failed")
		}
		r.mu.Lock()
		r.refreshing = false
		r.mu.Unlock()
	}()
}

// waitRefresh blocks until the background refresh running now, if any, ends.
func (r *ActionRegistry) waitRefresh() {
	r.mu.Lock()
	done := r.refreshed
	r.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Lookup implements port.ActionRegistry. The action is found when the last
// refresh saw an owner for the bus name and, if the owner lists its actions,
// id among them.
func (r *ActionRegistry) Lookup(id string) (port.Action, bool) {
	if id == "" {
		return nil, false
	}

	r.mu.Lock()
	known := r.known
	r.mu.Unlock()

	if known == nil || r.now().Sub(known.at) > r.maxAge {
		r.refreshAsync()
	}
	if known == nil || !known.owned {
		return nil, false
	}
	if known.listed && !slices.Contains(known.actions, id) {
		return nil, false
	}

	return port.ActionFunc(func(context.Context) error {
		return r.activate(id)
	}), true
}

// activate sends ActivateAction without waiting for the reply. Only failures
// to send are reported.
func (r *ActionRegistry) activate(id string) error {
	call := r.object(r.name, r.path).Go(appIface+".ActivateAction", dbus.FlagNoReplyExpected, nil,
		id,
		[]dbus.Variant{},
		map[string]dbus.Variant{},
	)
	if call != nil && call.Err != nil {
		return fmt.Errorf("activate %s on %s: %w", id, r.name, call.Err)
	}
	return nil
}

// Close releases the bus connection opened by Connect.
func (r *ActionRegistry) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}
