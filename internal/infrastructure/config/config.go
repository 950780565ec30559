// Package config loads, validates and watches the findpopup configuration.
package config

// Config represents the complete configuration for findpopup.
type Config struct {
	Popup        PopupConfig        `mapstructure:"popup" yaml:"popup" toml:"popup" json:"popup"`
	Dismiss      DismissConfig      `mapstructure:"dismiss" yaml:"dismiss" toml:"dismiss" json:"dismiss"`
	ThemeOverlay ThemeOverlayConfig `mapstructure:"theme_overlay" yaml:"theme_overlay" toml:"theme_overlay" json:"theme_overlay"`
	Logging      LoggingConfig      `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// PopupConfig controls the popup window.
type PopupConfig struct {
	// Title is shown in the drag region at the top of the popup.
	Title         string `mapstructure:"title" yaml:"title" toml:"title" json:"title" jsonschema:"default=Find"`
	MinWidth      int    `mapstructure:"min_width" yaml:"min_width" toml:"min_width" json:"min_width" jsonschema:"minimum=1,default=750"`
	MinHeight     int    `mapstructure:"min_height" yaml:"min_height" toml:"min_height" json:"min_height" jsonschema:"minimum=1,default=420"`
	DefaultWidth  int    `mapstructure:"default_width" yaml:"default_width" toml:"default_width" json:"default_width" jsonschema:"minimum=1,default=1200"`
	DefaultHeight int    `mapstructure:"default_height" yaml:"default_height" toml:"default_height" json:"default_height" jsonschema:"minimum=1,default=800"`
	// ContentURL is loaded into the embedded content surface.
	ContentURL string `mapstructure:"content_url" yaml:"content_url" toml:"content_url" json:"content_url"`
}

// DismissConfig switches the outside-interaction dismissal triggers.
type DismissConfig struct {
	OnFocusLoss    bool `mapstructure:"on_focus_loss" yaml:"on_focus_loss" toml:"on_focus_loss" json:"on_focus_loss" jsonschema:"default=true"`
	OnClickOutside bool `mapstructure:"on_click_outside" yaml:"on_click_outside" toml:"on_click_outside" json:"on_click_outside" jsonschema:"default=true"`
	// OnPointerLeave dismisses when the pointer moves out after having entered.
	OnPointerLeave bool `mapstructure:"on_pointer_leave" yaml:"on_pointer_leave" toml:"on_pointer_leave" json:"on_pointer_leave" jsonschema:"default=true"`
	HistorySize    int  `mapstructure:"history_size" yaml:"history_size" toml:"history_size" json:"history_size" jsonschema:"minimum=1,maximum=4096,default=64"`
}

// ThemeOverlayConfig names the action notified after every hide.
type ThemeOverlayConfig struct {
	ActionID string `mapstructure:"action_id" yaml:"action_id" toml:"action_id" json:"action_id"`
	// DBusName is the well-known bus name exporting org.freedesktop.Application.
	// Empty disables the D-Bus route.
	DBusName string `mapstructure:"dbus_name" yaml:"dbus_name" toml:"dbus_name" json:"dbus_name"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}
