package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "supersecret")
		t.Setenv("TOKEN_TTL", "2h")
		t.Setenv("RATE_LIMIT_RPS", "5")
		t.Setenv("RATE_LIMIT_BURST", "7")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "supersecret", cfg.JWTSecret)
		assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
		assert.Equal(t, 5.0, cfg.RateLimitRPS)
		assert.Equal(t, 7, cfg.RateLimitBurst)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("JWT_SECRET", "supersecret")
		t.Setenv("APP_PORT", "")
		t.Setenv("DB_SSLMODE", "")
		t.Setenv("TOKEN_TTL", "not-a-duration")
		t.Setenv("RATE_LIMIT_RPS", "")
		t.Setenv("RATE_LIMIT_BURST", "-1")

		cfg := LoadConfig()

		assert.Equal(t, defaultAppPort, cfg.AppPort)
		assert.Equal(t, "disable", cfg.DBSSLMode)
		assert.Equal(t, defaultTokenTTL, cfg.TokenTTL)
		assert.Equal(t, float64(defaultRateLimit), cfg.RateLimitRPS)
		assert.Equal(t, defaultRateBurst, cfg.RateLimitBurst)
	})
}

func TestLoadDBConfig(t *testing.T) {
	t.Run("NoJWTSecretNeeded", func(t *testing.T) {
		t.Setenv("DB_HOST", "db")
		t.Setenv("JWT_SECRET", "")

		cfg, err := LoadDBConfig()
		assert.NoError(t, err)
		assert.Equal(t, "db", cfg.DBHost)
	})

	t.Run("MissingHost", func(t *testing.T) {
		t.Setenv("DB_HOST", "")

		_, err := LoadDBConfig()
		assert.EqualError(t, err, "DB_HOST is not set")
	})
}
