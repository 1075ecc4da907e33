package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
user = "booking"
password = "booking"
dbname = "booking"
`

func TestLoad_Minimal(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Email.Enabled)
	assert.Equal(t, "0 9 * * *", cfg.Reminders.CronExpr)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, minimalConfig+`
[server]
http_port = 9090

[reminders]
enabled = true
cron_expr = "30 8 * * *"
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Reminders.Enabled)
	assert.Equal(t, "30 8 * * *", cfg.Reminders.CronExpr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "fromenv")
	t.Setenv("ADMIN_API_KEY", "envkey")

	cfg, err := Load(writeConfigFile(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "fromenv", cfg.Database.Password)
	assert.Equal(t, "envkey", cfg.Admin.APIKey)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing database section", func(t *testing.T) {
		_, err := Load(writeConfigFile(t, `[server]
http_port = 8080
`))
		assert.Error(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		_, err := Load(writeConfigFile(t, minimalConfig+`
[server]
http_port = 99999
`))
		assert.Error(t, err)
	})

	t.Run("email enabled without endpoint", func(t *testing.T) {
		_, err := Load(writeConfigFile(t, minimalConfig+`
[email]
enabled = true
`))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", DBName: "booking", SSLMode: "require",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=booking sslmode=require", d.DSN())
}
