package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxNameLength, cfg.MaxNameLength)
	assert.NotEmpty(t, cfg.Database.Path)
}

func TestSaveAndLoadConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &EngineConfig{
		MaxNameLength: 42,
		Database:      DatabaseConfig{Path: "/tmp/notebook.db"},
	}
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.MaxNameLength)
	assert.Equal(t, "/tmp/notebook.db", loaded.Database.Path)
}

func TestLoadConfig_NonPositiveMaxFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveConfig(path, &EngineConfig{
		MaxNameLength: -1,
		Database:      DatabaseConfig{Path: "x.db"},
	}))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxNameLength, loaded.MaxNameLength)
}
