package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Second, cfg.RendererTimeout)
	assert.Equal(t, "order.status.changed", cfg.KafkaOrderChangedTopic)
	assert.Equal(t, "0 */5 * * * *", cfg.BacklogReportSchedule)
	assert.False(t, cfg.UsesPostgres())
}

func TestLoadConfig_EnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "ops")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "deliveryops")
	t.Setenv("RENDERER_TIMEOUT", "5s")

	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.RendererTimeout)
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, "host=db port=5432 user=ops password=secret dbname=deliveryops sslmode=disable", cfg.DSN())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := []byte("LOG_LEVEL=warn\nREDIS_URL=redis://cache:6379/0\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), content, 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("REDIS_URL")
	})

	cfg, err := LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "redis://cache:6379/0", cfg.RedisURL)
}

func TestLoadConfig_DatabaseNeedsCredentials(t *testing.T) {
	t.Setenv("DB_HOST", "db")

	_, err := LoadConfig(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_NAME")
}
