package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort   = "4000"
	defaultTokenTTL  = 24 * time.Hour
	defaultRateLimit = 10
	defaultRateBurst = 20
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	AppPort string
	AppEnv  string

	JWTSecret  string
	TokenTTL   time.Duration
	CORSOrigin string

	RateLimitRPS   float64
	RateLimitBurst int
}

func LoadConfig() *Config {
	cfg := fromEnv()

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	return cfg
}

// LoadDBConfig loads the settings needed to reach the database only; tools
// such as the migrator do not need a JWT secret.
func LoadDBConfig() (*Config, error) {
	cfg := fromEnv()
	if cfg.DBHost == "" {
		return nil, errors.New("DB_HOST is not set")
	}
	return cfg, nil
}

func fromEnv() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		DBSSLMode:      envOr("DB_SSLMODE", "disable"),
		AppPort:        envOr("APP_PORT", defaultAppPort),
		AppEnv:         os.Getenv("APP_ENV"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       durationOr("TOKEN_TTL", defaultTokenTTL),
		CORSOrigin:     envOr("CORS_ORIGIN", "http://localhost:3000"),
		RateLimitRPS:   floatOr("RATE_LIMIT_RPS", defaultRateLimit),
		RateLimitBurst: intOr("RATE_LIMIT_BURST", defaultRateBurst),
	}
}

// IsProduction reports whether the playground and verbose errors must be disabled.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func floatOr(key string, fallback float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}

func intOr(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
