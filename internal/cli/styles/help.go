package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// SimKeyMap defines keybindings for the popup simulator.
type SimKeyMap struct {
	Toggle   key.Binding
	Escape   key.Binding
	Open     key.Binding
	Source   key.Binding
	OtherApp key.Binding
	Dropdown key.Binding
	Variant  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k SimKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Escape, k.Open, k.Source, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k SimKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Escape, k.Open},
		{k.Source, k.OtherApp, k.Dropdown, k.Variant},
		{k.Help, k.Quit},
	}
}

// DefaultSimKeyMap returns the default simulator keybindings.
func DefaultSimKeyMap() SimKeyMap {
	return SimKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("a", "alt+a"),
			key.WithHelp("a", "toggle popup"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Open: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "open preview"),
		),
		Source: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch key source"),
		),
		OtherApp: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "focus other app"),
		),
		Dropdown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "focus owned dropdown"),
		),
		Variant: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "pointer-leave on/off"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp returns a help.Model styled with the theme.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
