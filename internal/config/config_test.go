package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_PUBLISH_TIMEOUT_MS", "")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.App.Addr())
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 500*time.Millisecond, cfg.Redis.PublishTimeout())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("AUTH_JWT_SECRET", "s3cr3t")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_PUBLISH_TIMEOUT_MS", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.App.Addr())
	assert.Equal(t, "s3cr3t", cfg.Auth.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 50*time.Millisecond, cfg.Redis.PublishTimeout())
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "x")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{
		App:  AppConfig{Env: "production"},
		Auth: AuthConfig{JWTSecret: defaultJWTSecret},
	}
	require.Error(t, cfg.Validate())

	cfg.Auth.JWTSecret = "rotated-out-of-band"
	require.NoError(t, cfg.Validate())

	cfg.Auth.JWTSecret = "   "
	require.Error(t, cfg.Validate())
}
