package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ReplayRenderer renders trace replay results.
type ReplayRenderer struct {
	theme *Theme
}

// NewReplayRenderer creates a renderer with the given theme.
func NewReplayRenderer(theme *Theme) *ReplayRenderer {
	return &ReplayRenderer{theme: theme}
}

// ReplayReport is the display form of one replayed trace.
type ReplayReport struct {
	Path      string
	Name      string
	Steps     int
	Failures  []string
	Decisions []ReplayDecision
	Final     string
	Err       error
}

// ReplayDecision is one dismissal arbitration.
type ReplayDecision struct {
	Event     string
	From      string
	To        string
	Dismissed bool
	Reason    string
}

// Render renders all reports followed by a summary line.
func (r *ReplayRenderer) Render(reports []ReplayReport, verbose bool) string {
	blocks := make([]string, 0, len(reports)+1)
	failed := 0
	for _, rep := range reports {
		if rep.Err != nil || len(rep.Failures) > 0 {
			failed++
		}
		blocks = append(blocks, r.renderReport(rep, verbose))
	}
	blocks = append(blocks, r.renderSummary(len(reports), failed))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (r *ReplayRenderer) renderReport(rep ReplayReport, verbose bool) string {
	iconStyle := r.theme.SuccessStyle
	icon := IconCheck
	if rep.Err != nil || len(rep.Failures) > 0 {
		iconStyle = r.theme.ErrorStyle
		icon = IconX
	}

	name := rep.Name
	if name == "" {
		name = rep.Path
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s %s %s\n",
		iconStyle.Render(icon),
		r.theme.Title.Render(name),
		r.theme.Subtle.Render(rep.Path),
	))

	if rep.Err != nil {
		sb.WriteString("      " + r.theme.ErrorStyle.Render(rep.Err.Error()) + "\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("      %s %d steps, final %s\n",
		r.theme.Subtle.Render(IconPlay),
		rep.Steps,
		r.theme.BadgeMuted.Render(rep.Final),
	))
	for _, f := range rep.Failures {
		sb.WriteString("      " + r.theme.ErrorStyle.Render(f) + "\n")
	}
	if verbose {
		for _, d := range rep.Decisions {
			sb.WriteString("      " + r.renderDecision(d) + "\n")
		}
	}
	return sb.String()
}

func (r *ReplayRenderer) renderDecision(d ReplayDecision) string {
	line := fmt.Sprintf("%-13s %s -> %s", d.Event, d.From, d.To)
	if d.Dismissed {
		return r.theme.WarningStyle.Render(line + "  dismissed: " + d.Reason)
	}
	return r.theme.Subtle.Render(line)
}

func (r *ReplayRenderer) renderSummary(total, failed int) string {
	if failed == 0 {
		return r.theme.SuccessStyle.Render(fmt.Sprintf("  %d traces passed", total))
	}
	return r.theme.ErrorStyle.Render(fmt.Sprintf("  %d of %d traces failed", failed, total))
}
