package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvJWTSecret, "s3cret")
	t.Setenv(EnvAddr, ":8080")
	t.Setenv(EnvRedisAddr, "")

	cfg, err := LoadServerConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadServerConfig_File(t *testing.T) {
	t.Setenv(EnvJWTSecret, "")
	t.Setenv(EnvAddr, "")
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\njwt_secret: fromfile\ntoken_ttl: 2h\n"), 0o644))

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "fromfile", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.AuthBurst)
}

func TestLoadServerConfig_RequiresSecret(t *testing.T) {
	t.Setenv(EnvJWTSecret, "")
	_, err := LoadServerConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvJWTSecret)
}
