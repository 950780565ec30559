package gtkhost

import (
	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

// Scheduler posts work to the GTK main loop. It implements port.UIScheduler.
type Scheduler struct{}

// RunLater queues fn as a one-shot idle callback.
func (Scheduler) RunLater(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
