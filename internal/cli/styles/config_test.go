package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/findpopup/internal/cli/styles"
)

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfigInfo("/tmp/findpopup/config.toml", false)
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "defaults apply")

	out = r.RenderConfigInfo("/tmp/findpopup/config.toml", true)
	require.Contains(t, out, "found")
}

func TestConfigRenderer_RenderEffective(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderEffective("[popup]\ntitle = 'Find'\n\n[dismiss]\n")
	require.Contains(t, out, "[popup]")
	require.Contains(t, out, "title = 'Find'")
	require.Contains(t, out, "[dismiss]")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestReplayRenderer_Render(t *testing.T) {
	r := styles.NewReplayRenderer(styles.NewTheme())

	out := r.Render([]styles.ReplayReport{
		{Path: "a.yaml", Name: "pointer leave", Steps: 5, Final: "hidden"},
		{Path: "b.yaml", Name: "escape", Steps: 3, Final: "visible", Failures: []string{"step 3: state is visible, want hidden"}},
		{Path: "c.toml", Err: errors.New("unknown step")},
	}, true)

	require.Contains(t, out, "pointer leave")
	require.Contains(t, out, "step 3: state is visible, want hidden")
	require.Contains(t, out, "unknown step")
	require.Contains(t, out, "2 of 3 traces failed")
}

func TestReplayRenderer_VerboseDecisions(t *testing.T) {
	r := styles.NewReplayRenderer(styles.NewTheme())
	report := styles.ReplayReport{
		Path: "a.yaml", Steps: 1, Final: "hidden",
		Decisions: []styles.ReplayDecision{
			{Event: "mouse_moved", From: "tracking", To: "idle", Dismissed: true, Reason: "pointer_leave"},
		},
	}

	require.NotContains(t, r.Render([]styles.ReplayReport{report}, false), "pointer_leave")
	out := r.Render([]styles.ReplayReport{report}, true)
	require.Contains(t, out, "pointer_leave")
	require.Contains(t, out, "1 traces passed")
}
