package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `env:
  env: test
  serviceName: adminapi
  debug: true
  log:
    pretty: true
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
    writeTimeout: 10s
jwt:
  secret: "0123456789abcdef0123456789abcdef"
  accessTokenExpirationMinutes: 20
  refreshTokenExpirationDays: 7
auth:
  bcryptCost: 10
`

func writeTestConfig(t *testing.T, name string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeTestConfig(t, "test")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "adminapi", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Debug)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout, "duration strings decode via hook")
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.WriteTimeout)
	assert.Equal(t, 20, cfg.JWT.AccessTokenExpirationMinutes)
	assert.Equal(t, 7, cfg.JWT.RefreshTokenExpirationDays)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t, "test")

	override := strings.Repeat("x", 32)
	t.Setenv("JWT_SECRET", override)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, override, cfg.JWT.Secret)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("nonexistent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.JWT.Secret = strings.Repeat("a", 32)

	require.NoError(t, cfg.applyDefaults())
	assert.Equal(t, defaultAccessTokenExpirationMinutes, cfg.JWT.AccessTokenExpirationMinutes)
	assert.Equal(t, defaultRefreshTokenExpirationDays, cfg.JWT.RefreshTokenExpirationDays)
}

func TestApplyDefaults_RejectsShortSecret(t *testing.T) {
	cfg := &Config{}
	cfg.JWT.Secret = "too-short"

	require.Error(t, cfg.applyDefaults())
}
