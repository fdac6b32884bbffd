package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/panels/pkg/core/gesture"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig([]string{filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)

	dir, err := cfg.direction()
	require.NoError(t, err)
	assert.Equal(t, gesture.Row, dir)
	assert.Equal(t, defaultStep, cfg.step())
	assert.Zero(t, cfg.debounce())
	assert.Equal(t, 42.0, cfg.correction().Apply(42))
}

func TestLoadConfigLaterFilesWin(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(dir, "user.toml")
	local := filepath.Join(dir, "local.toml")
	require.NoError(t, os.WriteFile(user, []byte("direction = \"column\"\nzoom = 2\nstep = 5\n"), 0o644))
	require.NoError(t, os.WriteFile(local, []byte("step = 2.5\ndebounce_ms = 40\n"), 0o644))

	cfg, err := loadConfig([]string{user, local})
	require.NoError(t, err)

	d, err := cfg.direction()
	require.NoError(t, err)
	assert.Equal(t, gesture.Column, d)
	assert.Equal(t, 2.5, cfg.step())
	assert.Equal(t, 40*time.Millisecond, cfg.debounce())
	assert.Equal(t, 21.0, cfg.correction().Apply(42))
}

func TestLoadConfigRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("step = ["), 0o644))

	_, err := loadConfig([]string{path})
	assert.Error(t, err)

	cfg := &Config{Direction: "diagonal"}
	_, err = cfg.direction()
	assert.Error(t, err)
}

func TestConfigPaths(t *testing.T) {
	paths := configPaths()
	require.Len(t, paths, 2)
	assert.Equal(t, "config.toml", filepath.Base(paths[0]))
	assert.Equal(t, appName, filepath.Base(filepath.Dir(paths[0])))
	assert.Equal(t, ".panels.toml", paths[1])
}
