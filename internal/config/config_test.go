package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SECRET_KEY", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 300*time.Minute, cfg.TokenExpiry)
	// Development falls back to an insecure key rather than exiting
	assert.NotEmpty(t, cfg.SecretKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SECRET_KEY", "prod-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_EXPIRY", "1h")
	t.Setenv("AUTH_RATE_LIMIT", "5")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "prod-secret", cfg.SecretKey)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, time.Hour, cfg.TokenExpiry)
	assert.Equal(t, 5, cfg.AuthRateLimit)
}

func TestEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SOME_DURATION", "not-a-duration")
	assert.Equal(t, time.Minute, envDuration("SOME_DURATION", time.Minute))

	t.Setenv("SOME_INT", "not-an-int")
	assert.Equal(t, 7, envInt("SOME_INT", 7))

	assert.Equal(t, "fallback", envString("UNSET_KEY_XYZ", "fallback"))
}
