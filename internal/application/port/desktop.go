package port

import "context"

// DesktopOpener hands files and URLs to the user's desktop tools.
type DesktopOpener interface {
	// OpenFile opens path in the user's editor, at line when line > 0.
	OpenFile(ctx context.Context, path string, line int) error

	// OpenURL opens target with the desktop's default handler.
	OpenURL(ctx context.Context, target string) error
}
