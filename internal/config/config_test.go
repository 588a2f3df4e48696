package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeclash/internal/arena"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CODECLASH_SERVER_URL", "")
	t.Setenv("CODECLASH_USERNAME", "")
	t.Setenv("CODECLASH_LANGUAGE", "")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.Server.BaseURL)
	assert.Zero(t, cfg.Server.TimeoutSeconds)
	assert.Equal(t, arena.LangPython, cfg.Language())
	assert.Empty(t, cfg.Defaults.Username)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `server:
  base_url: http://arena.example.com:8080
  timeout_seconds: 30
defaults:
  username: ada
  language: javascript
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("CODECLASH_SERVER_URL", "")
	t.Setenv("CODECLASH_USERNAME", "")
	t.Setenv("CODECLASH_LANGUAGE", "")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "http://arena.example.com:8080", cfg.Server.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout())
	assert.Equal(t, "ada", cfg.Defaults.Username)
	assert.Equal(t, arena.LangJavaScript, cfg.Language())
}

func TestEnvOverrides(t *testing.T) {
	t.Run("server URL override", func(t *testing.T) {
		t.Setenv("CODECLASH_SERVER_URL", "http://10.0.0.7:5000")
		t.Setenv("CODECLASH_USERNAME", "")
		t.Setenv("CODECLASH_LANGUAGE", "")

		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "http://10.0.0.7:5000", cfg.Server.BaseURL)
	})

	t.Run("username and language override", func(t *testing.T) {
		t.Setenv("CODECLASH_SERVER_URL", "")
		t.Setenv("CODECLASH_USERNAME", "grace")
		t.Setenv("CODECLASH_LANGUAGE", "cpp")

		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "grace", cfg.Defaults.Username)
		assert.Equal(t, arena.LangCPP, cfg.Language())
	})

	t.Run("env beats file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  base_url: http://from-file:5000\n"), 0644))

		t.Setenv("CODECLASH_SERVER_URL", "http://from-env:5000")
		t.Setenv("CODECLASH_USERNAME", "")
		t.Setenv("CODECLASH_LANGUAGE", "")

		cfg, err := LoadFrom(path)
		require.NoError(t, err)
		assert.Equal(t, "http://from-env:5000", cfg.Server.BaseURL)
	})
}

func TestValidation(t *testing.T) {
	t.Run("rejects a non-URL server address", func(t *testing.T) {
		t.Setenv("CODECLASH_SERVER_URL", "not a url at all")
		t.Setenv("CODECLASH_USERNAME", "")
		t.Setenv("CODECLASH_LANGUAGE", "")

		_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})

	t.Run("rejects an unknown language", func(t *testing.T) {
		t.Setenv("CODECLASH_SERVER_URL", "")
		t.Setenv("CODECLASH_USERNAME", "")
		t.Setenv("CODECLASH_LANGUAGE", "fortran")

		_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed YAML is an error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [this is not\n  a mapping"), 0644))

		_, err := LoadFrom(path)
		require.Error(t, err)
	})
}

func TestPath(t *testing.T) {
	t.Run("explicit env var wins", func(t *testing.T) {
		t.Setenv("CODECLASH_CONFIG", "/tmp/custom.yaml")
		assert.Equal(t, "/tmp/custom.yaml", Path())
	})

	t.Run("XDG_CONFIG_HOME is honored", func(t *testing.T) {
		t.Setenv("CODECLASH_CONFIG", "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		assert.Equal(t, filepath.Join("/xdg", "codeclash", "config.yaml"), Path())
	})
}

func TestLogDir(t *testing.T) {
	t.Run("explicit dir wins", func(t *testing.T) {
		cfg := Default()
		cfg.Log.Dir = "/var/log/clash"
		assert.Equal(t, "/var/log/clash", cfg.LogDir())
	})

	t.Run("XDG_STATE_HOME fallback", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/state")
		cfg := Default()
		assert.Equal(t, filepath.Join("/state", "codeclash", "logs"), cfg.LogDir())
	})
}
