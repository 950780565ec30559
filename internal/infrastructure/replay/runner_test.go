package replay

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			tr, err := Load(path)
			require.NoError(t, err)

			res, err := NewRunner(context.Background()).Run(tr)
			require.NoError(t, err)
			for _, f := range res.Failures {
				t.Error(f.String())
			}
			assert.Equal(t, len(tr.Steps), res.Steps)
		})
	}
}

func TestRun_ReportsFailedExpectations(t *testing.T) {
	tr, err := Parse([]byte(`
name: wrong
steps:
  - do: show
  - do: expect
    expect: {state: hidden, windows: 3}
`), FormatYAML)
	require.NoError(t, err)

	res, err := NewRunner(context.Background()).Run(tr)
	require.NoError(t, err)
	assert.False(t, res.Passed())
	require.Len(t, res.Failures, 2)
	assert.Equal(t, 2, res.Failures[0].Step)
	assert.Contains(t, res.Failures[0].String(), "state = visible, want hidden")
}

func TestRun_AbortsOnBadStep(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "popup before show",
			body: "steps:\n  - do: focus\n    target: popup\n",
			want: "popup window does not exist yet",
		},
		{
			name: "unknown window",
			body: "steps:\n  - do: focus\n    target: sidebar\n",
			want: `unknown window "sidebar"`,
		},
		{
			name: "unknown event kind",
			body: "steps:\n  - do: event\n    kind: resized\n",
			want: `unknown event kind "resized"`,
		},
		{
			name: "unknown key source",
			body: "steps:\n  - do: key\n    chord: escape\n    source: mouse\n",
			want: `unknown key source "mouse"`,
		},
		{
			name: "bad chord",
			body: "steps:\n  - do: key\n    chord: hyper+escape\n",
			want: "unknown modifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Parse([]byte(tt.body), FormatYAML)
			require.NoError(t, err)

			_, err = NewRunner(context.Background()).Run(tr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_ExpectHandledWithoutKey(t *testing.T) {
	tr, err := Parse([]byte("steps:\n  - do: expect\n    expect: {handled: true}\n"), FormatYAML)
	require.NoError(t, err)

	res, err := NewRunner(context.Background()).Run(tr)
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Contains(t, res.Failures[0].Message, "no key was pressed")
}

func TestRun_CollectsDecisions(t *testing.T) {
	tr, err := Load(filepath.Join("testdata", "pointer_leave.yaml"))
	require.NoError(t, err)

	res, err := NewRunner(context.Background()).Run(tr)
	require.NoError(t, err)
	require.NotEmpty(t, res.Decisions)
	last := res.Decisions[len(res.Decisions)-1]
	assert.True(t, last.Dismissed)
	assert.Equal(t, 1, res.Final.Hides)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		format Format
		want   string
	}{
		{name: "no steps", body: "name: empty\n", format: FormatYAML, want: "has no steps"},
		{name: "unknown verb", body: "steps:\n  - do: jump\n", format: FormatYAML, want: `unknown step "jump"`},
		{name: "unknown field", body: "steps:\n  - do: show\n    speed: 3\n", format: FormatYAML, want: "speed"},
		{name: "window named popup", body: "steps:\n  - do: window\n    name: popup\n    bounds: [0, 0, 1, 1]\n", format: FormatYAML, want: "window needs a name"},
		{name: "short bounds", body: "steps:\n  - do: bounds\n    target: popup\n    bounds: [1, 2]\n", format: FormatYAML, want: "bounds must be"},
		{name: "bad at", body: "steps:\n  - do: event\n    kind: mouse_moved\n    at: [1]\n", format: FormatYAML, want: "at must be"},
		{name: "expect without block", body: "[[steps]]\ndo = \"expect\"\n", format: FormatTOML, want: "expect needs"},
		{name: "toml unknown field", body: "[[steps]]\ndo = \"show\"\nfast = true\n", format: FormatTOML, want: "decode toml trace"},
		{name: "unknown format", body: "", format: Format("json"), want: "unknown trace format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "quick-show.yml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - do: show\n"), 0o644))
	tr, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "quick-show", tr.Name)
	assert.Equal(t, path, tr.Source)

	bad := filepath.Join(dir, "trace.json")
	require.NoError(t, os.WriteFile(bad, []byte("{}"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported trace extension"))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestCollect(t *testing.T) {
	paths, err := Collect([]string{"testdata"})
	require.NoError(t, err)
	assert.Len(t, paths, 7)
	assert.Equal(t, filepath.Join("testdata", "alt_enter.yaml"), paths[0])
	assert.Equal(t, filepath.Join("testdata", "dialog_variant.toml"), paths[1])

	single := filepath.Join("testdata", "reuse.yaml")
	paths, err = Collect([]string{single})
	require.NoError(t, err)
	assert.Equal(t, []string{single}, paths)

	_, err = Collect([]string{t.TempDir()})
	assert.Error(t, err)

	_, err = Collect([]string{filepath.Join("testdata", "missing.yaml")})
	assert.Error(t, err)
}
