package replay

import (
	"context"
	"sync/atomic"

	"github.com/bnema/findpopup/internal/application/port"
)

// recordedItem is a preview item that only counts how often it was opened.
type recordedItem struct {
	title  string
	opened atomic.Int64
}

func (i *recordedItem) Title() string { return i.title }

func (i *recordedItem) OpenInEditorOrExternalViewer(context.Context) error {
	i.opened.Add(1)
	return nil
}

type actionFunc func()

func (f actionFunc) Perform(context.Context) error {
	f()
	return nil
}

var (
	_ port.PreviewItem = (*recordedItem)(nil)
	_ port.Action      = actionFunc(nil)
)
