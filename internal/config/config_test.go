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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  host: "0.0.0.0"

auth:
  admin:
    username: "bc"
    password: "secret"
  staff:
    - username: "support1"
      password: "staff-pass"
  protect_reads: true

site:
  static_dir: "./dist"
  ping_message: "hello"
  allowed_origins:
    - "https://bloodcloud.gg"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "bc", cfg.Auth.Admin.Username)
	assert.Equal(t, "secret", cfg.Auth.Admin.Password)
	require.Len(t, cfg.Auth.Staff, 1)
	assert.Equal(t, "support1", cfg.Auth.Staff[0].Username)
	assert.True(t, cfg.Auth.ProtectReads)
	assert.Equal(t, "./dist", cfg.Site.StaticDir)
	assert.Equal(t, "hello", cfg.Site.PingMessage)
	assert.Equal(t, []string{"https://bloodcloud.gg"}, cfg.Site.AllowedOrigins)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  admin:
    username: "bc"
    password: "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "./web/dist", cfg.Site.StaticDir)
	assert.Equal(t, "ping", cfg.Site.PingMessage)
	assert.NotEmpty(t, cfg.Site.AllowedOrigins)
	assert.False(t, cfg.Auth.ProtectReads)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090

auth:
  admin:
    username: "bc"
    password: "from-file"
`)

	t.Setenv("PORT", "7070")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "from-env")
	t.Setenv("PING_MESSAGE", "env ping")

	cfg, err := LoadFromEnv(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "root", cfg.Auth.Admin.Username)
	assert.Equal(t, "from-env", cfg.Auth.Admin.Password)
	assert.Equal(t, "env ping", cfg.Site.PingMessage)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.Auth.Admin = Credential{Username: "bc", Password: "secret"}
	assert.NoError(t, cfg.Validate())

	cfg.Auth.Staff = []Credential{{Username: "support1"}}
	assert.Error(t, cfg.Validate())

	cfg.Auth.Staff[0].Password = "staff-pass"
	assert.NoError(t, cfg.Validate())
}

func TestGetHost(t *testing.T) {
	cfg := ServerConfig{Host: "localhost"}
	assert.Equal(t, "localhost", cfg.GetHost())

	t.Setenv("SERVER_HOST", "10.0.0.5")
	assert.Equal(t, "10.0.0.5", cfg.GetHost())
}
