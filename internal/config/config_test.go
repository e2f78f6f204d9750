package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://localhost/backstage")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "postgres://localhost/backstage", cfg.DatabaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, time.Hour, cfg.SweepInterval)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "backstage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen_addr: ":9090"
followup_workers: 2
sweep_interval: 15m
log:
  level: debug
  file: /var/log/backstage.log
`), 0o600))
	t.Setenv("DATABASE_URL", "postgres://plain")
	t.Setenv("BACKSTAGE_DATABASE_URL", "postgres://prefixed")
	t.Setenv("BACKSTAGE_FOLLOWUP_WORKERS", "4")
	t.Setenv("BACKSTAGE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "postgres://prefixed", cfg.DatabaseURL)
	assert.Equal(t, 4, cfg.FollowUpWorkers)
	assert.Equal(t, 15*time.Minute, cfg.SweepInterval)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/var/log/backstage.log", cfg.Log.File)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_URL=postgres://from-dotenv\n"), 0o600))
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://from-dotenv", cfg.DatabaseURL)
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BACKSTAGE_DATABASE_URL", "")

	cfg, err := Load("")
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
	assert.Equal(t, ":8080", cfg.ListenAddr)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewLogger(LogConfig{Level: "WARN"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)

	file := filepath.Join(t.TempDir(), "app.log")
	logger, closer, err = NewLogger(LogConfig{Level: "info", File: file, MaxSizeMB: 1}, &buf)
	require.NoError(t, err)
	logger.Info().Msg("to file")
	require.NoError(t, closer.Close())
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	_, _, err = NewLogger(LogConfig{Level: "loud"}, &buf)
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+), restoring the original directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
