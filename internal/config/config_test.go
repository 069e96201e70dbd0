package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8000", cfg.Server.Addr)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Client.BaseURL)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9001\"\n  db_path: /tmp/tasks.db\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9001", cfg.Server.Addr)
	assert.Equal(t, "/tmp/tasks.db", cfg.Server.DBPath)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Client.BaseURL)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("client:\n  base_url: http://file:1\n"), 0o644))
	t.Setenv("HMCTS_BASE_URL", "http://env:2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.Client.BaseURL)
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
