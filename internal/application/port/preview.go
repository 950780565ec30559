package port

import "context"

// PreviewItem is the item shown in the native preview pane.
type PreviewItem interface {
	Title() string
	OpenInEditorOrExternalViewer(ctx context.Context) error
}

// PreviewProvider exposes the currently previewed item.
type PreviewProvider interface {
	CurrentPreviewItem() (PreviewItem, bool)
}
