// Package preview holds the preview pane's current selection and the items
// that can be opened from it.
package preview

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/findpopup/internal/application/port"
)

// Panel tracks the item currently shown in the preview pane.
type Panel struct {
	mu      sync.RWMutex
	current port.PreviewItem
}

var _ port.PreviewProvider = (*Panel)(nil)

// NewPanel creates an empty panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Select makes item the current preview item. A nil item clears the panel.
func (p *Panel) Select(item port.PreviewItem) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = item
}

// Clear empties the panel.
func (p *Panel) Clear() {
	p.Select(nil)
}

// CurrentPreviewItem implements port.PreviewProvider.
func (p *Panel) CurrentPreviewItem() (port.PreviewItem, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current, p.current != nil
}

// FileItem is a search result inside a file.
type FileItem struct {
	Path   string
	Line   int
	opener port.DesktopOpener
}

// NewFileItem creates a file item opened through opener.
func NewFileItem(opener port.DesktopOpener, path string, line int) *FileItem {
	return &FileItem{Path: path, Line: line, opener: opener}
}

// Title implements port.PreviewItem.
func (f *FileItem) Title() string {
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d", filepath.Base(f.Path), f.Line)
	}
	return filepath.Base(f.Path)
}

// OpenInEditorOrExternalViewer implements port.PreviewItem.
func (f *FileItem) OpenInEditorOrExternalViewer(ctx context.Context) error {
	if f.opener == nil {
		return fmt.Errorf("open %s: no desktop opener", f.Path)
	}
	return f.opener.OpenFile(ctx, f.Path, f.Line)
}

// URLItem is a result that lives on a remote server.
type URLItem struct {
	URL    string
	Label  string
	opener port.DesktopOpener
}

// NewURLItem creates a remote item opened in the default browser.
func NewURLItem(opener port.DesktopOpener, url, label string) *URLItem {
	return &URLItem{URL: url, Label: label, opener: opener}
}

// Title implements port.PreviewItem.
func (u *URLItem) Title() string {
	if u.Label != "" {
		return u.Label
	}
	return u.URL
}

// OpenInEditorOrExternalViewer implements port.PreviewItem.
func (u *URLItem) OpenInEditorOrExternalViewer(ctx context.Context) error {
	if u.opener == nil {
		return fmt.Errorf("open %s: no desktop opener", u.URL)
	}
	return u.opener.OpenURL(ctx, u.URL)
}

// ParseFileArg splits FILE[:LINE]. A trailing segment that is not a number
// is part of the path; line is 0 when absent.
func ParseFileArg(arg string) (path string, line int, err error) {
	idx := strings.LastIndex(arg, ":")
	if idx <= 0 {
		return arg, 0, nil
	}
	line, convErr := strconv.Atoi(arg[idx+1:])
	if convErr != nil {
		return arg, 0, nil
	}
	if line < 1 {
		return "", 0, fmt.Errorf("preview line must be positive, got %d", line)
	}
	return arg[:idx], line, nil
}
