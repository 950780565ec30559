package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderConfigInfo(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	status := r.theme.SuccessStyle.Render("found")
	if !exists {
		status = r.theme.WarningStyle.Render("not created yet, defaults apply")
	}

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		iconStyle.Render(IconInfo),
		status,
	)
}

// RenderEffective renders the effective configuration document.
func (r *ConfigRenderer) RenderEffective(document string) string {
	var sb strings.Builder
	sb.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(document, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "["):
			sb.WriteString("  " + r.theme.Highlight.Render(line) + "\n")
		case line == "":
			sb.WriteString("\n")
		default:
			sb.WriteString("  " + r.theme.Normal.Render(line) + "\n")
		}
	}
	return sb.String()
}

// RenderSchemaWritten confirms the schema file location.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf("\n  %s Schema written to %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
