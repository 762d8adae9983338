package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
user = "svc"
password = "p@ss"
dbname = "availability"

[redis]
enabled = true
addr = "redis:6379"
ttl = 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL())
	assert.Equal(t, "postgres://svc:p%40ss@db:5432/availability?sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverridesPath(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "from_env"
`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Database.DBName)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server\nhttp_port = "))
		assert.Error(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
[server]
http_port = 70000

[database]
dbname = "x"

[metrics]
path = "metrics"

[redis]
enabled = true
ttl = 0
`))
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "http_port")
		assert.Contains(t, err.Error(), "metrics.path")
		assert.Contains(t, err.Error(), "redis.ttl")
	})
}

func TestDSN_WithoutUser(t *testing.T) {
	d := DatabaseConfig{Host: "localhost", Port: 5432, DBName: "db", SSLMode: "require"}
	assert.Equal(t, "postgres://localhost:5432/db?sslmode=require", d.DSN())
}
