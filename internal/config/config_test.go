package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[logs]
level = "debug"

[metrics]
enabled = true

[salon_api]
url = "http://api.local:3333"
timeout = 5

[sessions]
ttl = 600
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesFileAndDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "http://api.local:3333", cfg.SalonAPI.URL)
	assert.Equal(t, 5, cfg.SalonAPI.Timeout)
	assert.Equal(t, 600, cfg.Sessions.TTL)
	assert.Equal(t, 60, cfg.Sessions.SweepInterval)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SALON_API_URL", "http://override:1")
	t.Setenv("HTTP_PORT", "7000")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "http://override:1", cfg.SalonAPI.URL)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestLoad_InvalidPortEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")

	_, err := Load(writeConfig(t, sampleConfig))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	assert.Error(t, cfg.Validate(), "salon_api.url is required")

	cfg.SalonAPI.URL = "http://x"
	assert.NoError(t, cfg.Validate())

	cfg.Database.Enabled = true
	assert.Error(t, cfg.Validate())

	cfg.Database.Host = "localhost"
	assert.NoError(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", DBName: "db", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=db sslmode=disable", d.DSN())
}
