package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(body), filePerm))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "Find", mgr.viper.GetString("popup.title"))
	assert.Equal(t, 750, mgr.viper.GetInt("popup.min_width"))
	assert.Equal(t, 420, mgr.viper.GetInt("popup.min_height"))
	assert.True(t, mgr.viper.GetBool("dismiss.on_pointer_leave"))
	assert.Equal(t, 64, mgr.viper.GetInt("dismiss.history_size"))
	assert.Equal(t, "MTToggleOverlaysAction", mgr.viper.GetString("theme_overlay.action_id"))
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, configFileName))
	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Equal(t, filepath.Join(dir, configFileName), mgr.GetConfigFile())
}

func TestLoad_ReadsAndNormalizesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[popup]
title = "  "
min_width = 0
default_width = 300

[dismiss]
on_pointer_leave = false

[logging]
level = "WARNING"
format = "JSON"
`)

	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "Find", cfg.Popup.Title)
	assert.Equal(t, 750, cfg.Popup.MinWidth)
	assert.Equal(t, 750, cfg.Popup.DefaultWidth, "default size is clamped up to the minimum")
	assert.Equal(t, 800, cfg.Popup.DefaultHeight)
	assert.False(t, cfg.Dismiss.OnPointerLeave)
	assert.True(t, cfg.Dismiss.OnClickOutside)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[dismiss]\nhistory_size = -5\n")

	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dismiss.history_size")
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[dismiss\non_focus_loss = ")

	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)
	assert.Error(t, mgr.Load())
}

func TestReload_NotifiesCallbacks(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(cfg *Config) { got = append(got, cfg) })

	writeConfig(t, dir, "[dismiss]\non_click_outside = false\n")
	require.NoError(t, mgr.Reload())

	require.Len(t, got, 1)
	assert.False(t, got[0].Dismiss.OnClickOutside)
	assert.False(t, mgr.Get().Dismiss.OnClickOutside)
}

func TestReload_InvalidKeepsPreviousConfig(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerForDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	writeConfig(t, dir, "[logging]\nlevel = \"loud\"\n")
	require.Error(t, mgr.Reload())

	assert.False(t, called)
	assert.Equal(t, "info", mgr.Get().Logging.Level)
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr, err := NewManagerForDir(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Popup.Title = "mutated"
	assert.Equal(t, "Find", mgr.Get().Popup.Title)
}

func TestWatch_IsIdempotent(t *testing.T) {
	mgr, err := NewManagerForDir(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch())
}
