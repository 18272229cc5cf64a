package config

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
	assert.Equal(t, "4000", cfg.App.HTTPPort)
	assert.Equal(t, ":4000", cfg.App.Address())
	assert.Equal(t, []string{"*"}, cfg.App.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout())
	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout())
	assert.False(t, cfg.RateLimit.Enabled)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.App.HTTPPort)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORSAllowedOrigins)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerWindow)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.True(t, cfg.Logger.EnableSampling)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := "DB_HOST=db.internal\nDB_NAME=todos\nREST_TIMEOUT_SECONDS=3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "todos", cfg.DB.Name)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout())
}

func TestLoadConfig_ProductionFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("APP_ENV=production\n"), 0o600))

	cfg, err := LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.True(t, cfg.Logger.EnableSampling)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")
	t.Setenv("LOG_LEVEL", "loud")

	cfg, err := LoadConfig(t.TempDir())

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "Config.App.HTTPPort must be numeric")
	assert.Contains(t, err.Error(), "Config.Logger.Level must be one of")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "h", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "host=h user=u password=p dbname=n port=5432 sslmode=disable", c.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	c := RedisConfig{Host: "localhost", Port: "6379"}

	assert.Equal(t, "localhost:6379", c.Addr())
}
