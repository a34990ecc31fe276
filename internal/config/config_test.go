package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8083
read_timeout = 15
write_timeout = 15

[logs]
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "bms-schedule-service"

[barber_backend]
url = "http://backend:8080"
token = "secret"
timeout = 5

[editor]
session_ttl = 900

[audit]
enabled = true

[database]
host = "db"
port = 5432
user = "app"
password = "pass"
dbname = "schedule"
sslmode = "disable"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "http://backend:8080", cfg.BarberBackend.URL)
	assert.Equal(t, 5, cfg.BarberBackend.Timeout)
	assert.Equal(t, 900, cfg.Editor.SessionTTL)
	assert.Equal(t, 60, cfg.Editor.CleanupInterval, "cleanup interval defaults")
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout, "shutdown timeout defaults")
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t,
		"host=db port=5432 user=app password=pass dbname=schedule sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{
			"missing http port",
			`
[barber_backend]
url = "http://backend:8080"
`,
		},
		{
			"missing backend url",
			`
[server]
http_port = 8083
`,
		},
		{
			"audit without database",
			`
[server]
http_port = 8083

[barber_backend]
url = "http://backend:8080"

[audit]
enabled = true
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
