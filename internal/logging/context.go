package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func withStr(ctx context.Context, key, value string) context.Context {
	child := FromContext(ctx).With().Str(key, value).Logger()
	return WithContext(ctx, child)
}

// WithComponent tags the logger with the component emitting the events.
func WithComponent(ctx context.Context, component string) context.Context {
	return withStr(ctx, "component", component)
}

// WithContextID tags the logger with the owning context (workspace/project) id.
func WithContextID(ctx context.Context, contextID string) context.Context {
	return withStr(ctx, "context_id", contextID)
}

// WithPopupID tags the logger with a popup instance id.
func WithPopupID(ctx context.Context, popupID string) context.Context {
	return withStr(ctx, "popup_id", popupID)
}
