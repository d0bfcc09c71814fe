package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	for _, k := range []string{"PORT", "APP_ENV", "LOG_LEVEL", "SESSION_TTL", "SESSION_STORE", "REDIS_DB", "FIXTURES_SOURCE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, StoreMemory, cfg.SessionStore)
	assert.Equal(t, FixturesStatic, cfg.FixturesSource)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("FIXTURES_SOURCE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/fidexia")

	cfg := Load()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, StoreRedis, cfg.SessionStore)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "postgres://localhost/fidexia", cfg.DatabaseURL)
}
