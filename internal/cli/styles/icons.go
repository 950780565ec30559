package styles

// Nerd Font icons used by the renderers.
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconFile    = "\uf15b" // file
	IconPlay    = "\uf04b" // play
	IconWindow  = "\uf2d0" // window
)
