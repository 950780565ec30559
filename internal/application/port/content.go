package port

// KeyHandler receives key-down events from the content surface in its own
// encoding. Returning true consumes the event.
type KeyHandler func(keyCode, modifiers uint) bool

// ContentSurface is the embedded rendered surface hosting the search UI.
type ContentSurface interface {
	// Component returns the toolkit widget to place inside the popup window.
	Component() any
	Focus()
	// SetKeyHandler installs the handler; nil removes it.
	SetKeyHandler(handler KeyHandler)
	Dispose()
}
