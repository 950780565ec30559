package entity

import "errors"

var (
	// ErrWindowNotRealized is returned when geometry is queried before the window is shown.
	ErrWindowNotRealized = errors.New("window not realized")
	// ErrControllerDisposed is returned by operations on a torn-down controller.
	ErrControllerDisposed = errors.New("popup controller disposed")
	// ErrNilContentSurface flags a controller built without a content surface.
	ErrNilContentSurface = errors.New("content surface is nil")
	// ErrNoPreviewItem is returned when no preview item is selected.
	ErrNoPreviewItem = errors.New("no preview item available")
	// ErrActionNotFound is returned when a named action is not registered.
	ErrActionNotFound = errors.New("action not found")
)
