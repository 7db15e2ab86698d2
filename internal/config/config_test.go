package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 8760*time.Hour, cfg.Tracking.Retention)
	assert.Equal(t, 24*time.Hour, cfg.Admin.SessionTTL)
	assert.True(t, cfg.Tracking.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
	assert.False(t, cfg.SMTP.Configured())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER_PORT", "9090")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")
	t.Setenv("PORTFOLIO_TRACKING_ENABLED", "false")
	t.Setenv("PORTFOLIO_SMTP_USER", "me@example.com")
	t.Setenv("PORTFOLIO_SMTP_PASS", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Tracking.Enabled)
	assert.True(t, cfg.SMTP.Configured())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
server:
  port: "7000"
log:
  format: console
`), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"server.port", "server.mode", "log.level", "log.format", "database.path", "tracking.retention"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidate_TracingEndpoint(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Tracing.Enabled = true
	cfg.Tracing.Endpoint = ""
	assert.ErrorContains(t, cfg.Validate(), "tracing.endpoint")
}
