package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAppConfig(), cfg)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.True(t, cfg.Display.ShowCompleted)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CHECKLIST_STORAGE_BACKEND", " Memory ")
	t.Setenv("CHECKLIST_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestSaveThenLoadConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := DefaultAppConfig()
	want.Storage.Backend = BackendKeyring
	want.Storage.Path = "~/trips/checklist.db"
	want.Display.ShowCompleted = false
	require.NoError(t, SaveConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, BackendKeyring, got.Storage.Backend)
	assert.Equal(t, filepath.Join(home, "trips", "checklist.db"), got.Storage.Path)
	assert.False(t, got.Display.ShowCompleted)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
