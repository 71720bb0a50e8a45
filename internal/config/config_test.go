package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Drill.Tense)
	assert.Nil(t, cfg.Log.Level)
}

func TestLoadConfigDecodesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[drill]
tense = "perfekt"
subject = "du"
count = 12
history = false

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Drill.Tense)
	assert.Equal(t, "perfekt", *cfg.Drill.Tense)
	assert.Equal(t, "du", *cfg.Drill.Subject)
	assert.Equal(t, 12, *cfg.Drill.Count)
	require.NotNil(t, cfg.Drill.History)
	assert.False(t, *cfg.Drill.History)
	assert.Nil(t, cfg.Drill.Type)
	assert.Equal(t, "debug", *cfg.Log.Level)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[drill]\nwords = 3\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drill.words")
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	assert.Equal(t, filepath.Join("/cfg", "verbdrill", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/cfg", "verbdrill", "verbs.json"), DefaultCatalogPath())
	assert.Equal(t, filepath.Join("/data", "verbdrill", "verbdrill.db"), DefaultDBPath())
	assert.Equal(t, filepath.Join("/data", "verbdrill", "verbdrill.log"), DefaultLogPath())
}
