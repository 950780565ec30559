// Package desktop hands preview items to the user's desktop tools (XDG).
package desktop

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/logging"
)

// Starter launches a prepared command. The default starts it detached.
type Starter func(cmd *exec.Cmd) error

// Options overrides tool discovery.
type Options struct {
	// Opener is the generic open command, e.g. "xdg-open" or "gio open".
	Opener string
	// Editor opens files at a line. Defaults to $VISUAL then $EDITOR.
	Editor string
	Start  Starter
}

// Adapter implements port.DesktopOpener using XDG tools.
type Adapter struct {
	opener []string
	editor []string
	start  Starter
}

var _ port.DesktopOpener = (*Adapter)(nil)

// New creates a desktop adapter, detecting xdg-open (or gio) and the editor.
func New(opts Options) *Adapter {
	a := &Adapter{start: opts.Start}
	if a.start == nil {
		a.start = startDetached
	}

	switch {
	case opts.Opener != "":
		a.opener = strings.Fields(opts.Opener)
	default:
		if path, err := exec.LookPath("xdg-open"); err == nil {
			a.opener = []string{path}
		} else if path, err := exec.LookPath("gio"); err == nil {
			a.opener = []string{path, "open"}
		}
	}

	editor := opts.Editor
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	a.editor = strings.Fields(editor)

	return a
}

// OpenFile opens path in the editor at line, or with the desktop opener when
// no editor is configured.
func (a *Adapter) OpenFile(ctx context.Context, path string, line int) error {
	log := logging.FromContext(ctx)

	if path == "" {
		return fmt.Errorf("open file: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("open file: %w", err)
	}

	var argv []string
	if len(a.editor) > 0 {
		argv = append(argv, a.editor...)
		if line > 0 {
			argv = append(argv, "+"+strconv.Itoa(line))
		}
		argv = append(argv, abs)
	} else {
		if len(a.opener) == 0 {
			return fmt.Errorf("no editor or xdg-open found (set $EDITOR or install xdg-utils)")
		}
		argv = append(append(argv, a.opener...), abs)
	}

	if err := a.run(ctx, argv); err != nil {
		return fmt.Errorf("open %s: %w", abs, err)
	}
	log.Debug().Str("path", abs).Int("line", line).Str("tool", argv[0]).Msg("file handed to desktop")
	return nil
}

// OpenURL opens target with the desktop's default handler.
func (a *Adapter) OpenURL(ctx context.Context, target string) error {
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" {
		return fmt.Errorf("open url: invalid url %q", target)
	}
	if len(a.opener) == 0 {
		return fmt.Errorf("xdg-open not found (install xdg-utils)")
	}

	argv := append(append([]string{}, a.opener...), u.String())
	if err := a.run(ctx, argv); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	logging.FromContext(ctx).Debug().Str("url", u.String()).Msg("url handed to desktop")
	return nil
}

func (a *Adapter) run(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	return a.start(cmd)
}

// startDetached starts cmd and releases it so it outlives the popup.
func startDetached(cmd *exec.Cmd) error {
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	// Detached processes must not be killed when the request context ends.
	cmd.Cancel = func() error { return nil }

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
