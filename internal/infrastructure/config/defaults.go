package config

// Default configuration constants
const (
	defaultPopupTitle    = "Find"
	defaultMinWidth      = 750
	defaultMinHeight     = 420
	defaultPopupWidth    = 1200
	defaultPopupHeight   = 800
	defaultContentURL    = "http://findpopup/html/index.html"
	defaultHistorySize   = 64
	maxHistorySize       = 4096
	defaultOverlayAction = "MTToggleOverlaysAction"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Popup: PopupConfig{
			Title:         defaultPopupTitle,
			MinWidth:      defaultMinWidth,
			MinHeight:     defaultMinHeight,
			DefaultWidth:  defaultPopupWidth,
			DefaultHeight: defaultPopupHeight,
			ContentURL:    defaultContentURL,
		},
		Dismiss: DismissConfig{
			OnFocusLoss:    true,
			OnClickOutside: true,
			OnPointerLeave: true,
			HistorySize:    defaultHistorySize,
		},
		ThemeOverlay: ThemeOverlayConfig{
			ActionID: defaultOverlayAction,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
