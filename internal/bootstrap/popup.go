// Package bootstrap turns configuration into wired popup components.
package bootstrap

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/findpopup/internal/application/port"
	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/bnema/findpopup/internal/infrastructure/actions"
	"github.com/bnema/findpopup/internal/infrastructure/config"
	"github.com/bnema/findpopup/internal/infrastructure/dbus"
	"github.com/bnema/findpopup/internal/logging"
	"github.com/bnema/findpopup/internal/ui/controller"
	"github.com/bnema/findpopup/internal/ui/dismiss"
	"github.com/bnema/findpopup/internal/ui/window"
)

// Logger builds the process logger from the logging section.
func Logger(cfg *config.Config) zerolog.Logger {
	return logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
}

// DismissOptions maps the dismiss section.
func DismissOptions(cfg *config.Config) dismiss.Options {
	return dismiss.Options{
		OnFocusLoss:    cfg.Dismiss.OnFocusLoss,
		OnClickOutside: cfg.Dismiss.OnClickOutside,
		OnPointerLeave: cfg.Dismiss.OnPointerLeave,
		HistorySize:    cfg.Dismiss.HistorySize,
	}
}

// WindowOptions maps the popup section.
func WindowOptions(cfg *config.Config) window.Options {
	return window.Options{
		Title:       cfg.Popup.Title,
		MinSize:     entity.Size{Width: cfg.Popup.MinWidth, Height: cfg.Popup.MinHeight},
		DefaultSize: entity.Size{Width: cfg.Popup.DefaultWidth, Height: cfg.Popup.DefaultHeight},
	}
}

// ControllerOptions builds the options of the controller serving contextID.
func ControllerOptions(cfg *config.Config, contextID string) controller.Options {
	opts := controller.DefaultOptions()
	opts.ContextID = contextID
	opts.Window = WindowOptions(cfg)
	opts.Dismiss = DismissOptions(cfg)
	if cfg.ThemeOverlay.ActionID != "" {
		opts.ThemeOverlayActionID = cfg.ThemeOverlay.ActionID
	}
	return opts
}

// ActionChain resolves ids against local first, then against the D-Bus
// application named in the theme overlay section. The returned function
// releases the bus connection.
func ActionChain(ctx context.Context, cfg *config.Config, local ...port.ActionRegistry) (port.ActionRegistry, func()) {
	chain := make(actions.Chain, 0, len(local)+1)
	chain = append(chain, local...)

	if cfg.ThemeOverlay.DBusName == "" {
		return chain, func() {}
	}
	remote, err := dbus.Connect(ctx, cfg.ThemeOverlay.DBusName)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).
			Str("bus_name", cfg.ThemeOverlay.DBusName).
			Msg("theme overlay over D-Bus unavailable")
		return chain, func() {}
	}
	chain = append(chain, remote)
	return chain, func() { _ = remote.Close() }
}

// Reconfigure applies a reloaded configuration to live controllers.
// Window geometry only applies to windows built afterwards.
func Reconfigure(ctx context.Context, cfg *config.Config, controllers ...*controller.PopupController) {
	opts := DismissOptions(cfg)
	for _, c := range controllers {
		c.SetDismissOptions(opts)
		if cfg.ThemeOverlay.ActionID != "" {
			c.SetThemeOverlayActionID(cfg.ThemeOverlay.ActionID)
		}
	}
	logging.FromContext(ctx).Info().
		Bool("on_focus_loss", opts.OnFocusLoss).
		Bool("on_click_outside", opts.OnClickOutside).
		Bool("on_pointer_leave", opts.OnPointerLeave).
		Int("controllers", len(controllers)).
		Msg("configuration reloaded")
}
