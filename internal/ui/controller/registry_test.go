package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/findpopup/internal/domain/entity"
	"github.com/bnema/findpopup/internal/infrastructure/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) (*Registry, *headless.Host, map[string]*headless.Content) {
	t.Helper()
	host := headless.NewHost()
	contents := map[string]*headless.Content{}

	reg := NewRegistry(func(contextID string) (*PopupController, error) {
		if contextID == "broken" {
			return nil, errors.New("no workspace")
		}
		content := headless.NewContent()
		contents[contextID] = content
		opts := DefaultOptions()
		opts.ContextID = contextID
		return New(context.Background(), Dependencies{
			Host:      host,
			Windows:   host,
			Scheduler: host,
			Content:   content,
		}, opts)
	})
	t.Cleanup(reg.CloseAll)
	return reg, host, contents
}

func TestRegistry_OneControllerPerContext(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	a1, err := reg.Get("project-a")
	require.NoError(t, err)
	a2, err := reg.Get("project-a")
	require.NoError(t, err)
	b, err := reg.Get("project-b")
	require.NoError(t, err)

	assert.Same(t, a1, a2)
	assert.NotSame(t, a1, b)
	assert.Equal(t, "project-a", a1.ContextID())
	assert.NotEqual(t, a1.ID(), b.ID())
	assert.Equal(t, []string{"project-a", "project-b"}, reg.ContextIDs())
}

func TestRegistry_FactoryErrorIsWrapped(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	_, err := reg.Get("broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Empty(t, reg.ContextIDs())
}

func TestRegistry_PreloadCreatesHiddenPopup(t *testing.T) {
	reg, host, _ := newTestRegistry(t)

	require.NoError(t, reg.Preload("project-a"))
	c, ok := reg.Lookup("project-a")
	require.True(t, ok)
	assert.Equal(t, entity.PopupHidden, c.State())
	assert.Equal(t, 1, host.WindowsCreated())

	require.NoError(t, reg.Show("project-a"))
	assert.Equal(t, 1, host.WindowsCreated())
	assert.Equal(t, entity.PopupVisible, c.State())
}

func TestRegistry_CloseDisposes(t *testing.T) {
	reg, host, contents := newTestRegistry(t)

	require.NoError(t, reg.Show("project-a"))
	require.NoError(t, reg.Show("project-b"))
	c, _ := reg.Lookup("project-a")

	reg.Close("project-a")
	reg.Close("project-a")

	assert.Equal(t, entity.PopupDisposed, c.State())
	assert.True(t, contents["project-a"].Disposed())
	assert.False(t, contents["project-b"].Disposed())
	assert.Equal(t, []string{"project-b"}, reg.ContextIDs())

	reg.CloseAll()
	assert.True(t, contents["project-b"].Disposed())
	assert.Empty(t, reg.ContextIDs())
	assert.Equal(t, 0, host.DispatcherCount())
}
