package desktop

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	args [][]string
	err  error
}

func (r *recorder) start(cmd *exec.Cmd) error {
	r.args = append(r.args, cmd.Args)
	return r.err
}

func tempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o644))
	return path
}

func TestOpenFile_UsesEditorWithLine(t *testing.T) {
	rec := &recorder{}
	a := New(Options{Opener: "xdg-open", Editor: "nvim --remote", Start: rec.start})
	path := tempFile(t)

	require.NoError(t, a.OpenFile(context.Background(), path, 42))

	require.Len(t, rec.args, 1)
	assert.Equal(t, []string{"nvim", "--remote", "+42", path}, rec.args[0])
}

func TestOpenFile_FallsBackToOpener(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	rec := &recorder{}
	a := New(Options{Opener: "gio open", Start: rec.start})
	path := tempFile(t)

	require.NoError(t, a.OpenFile(context.Background(), path, 3))
	assert.Equal(t, []string{"gio", "open", path}, rec.args[0])
}

func TestOpenFile_Errors(t *testing.T) {
	rec := &recorder{}
	a := New(Options{Opener: "xdg-open", Editor: "vi", Start: rec.start})

	assert.Error(t, a.OpenFile(context.Background(), "", 0))
	assert.Error(t, a.OpenFile(context.Background(), filepath.Join(t.TempDir(), "missing.go"), 0))
	assert.Empty(t, rec.args)

	rec.err = errors.New("exec failed")
	err := a.OpenFile(context.Background(), tempFile(t), 0)
	assert.ErrorIs(t, err, rec.err)
}

func TestOpenURL(t *testing.T) {
	rec := &recorder{}
	a := New(Options{Opener: "xdg-open", Start: rec.start})

	require.NoError(t, a.OpenURL(context.Background(), "https://sourcegraph.com/search?q=popup"))
	assert.Equal(t, []string{"xdg-open", "https://sourcegraph.com/search?q=popup"}, rec.args[0])

	assert.Error(t, a.OpenURL(context.Background(), "not a url"))
}
