package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"lg/bmi-tracker/internal/health"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Health   HealthConfig
	LogLevel string
}

// ServerConfig holds options for the local form server.
type ServerConfig struct {
	Addr       string
	SessionTTL time.Duration
}

// StoreConfig locates the record store.
type StoreConfig struct {
	Path         string
	HistoryLimit int
}

// HealthConfig selects computation policies.
type HealthConfig struct {
	Breakpoints     health.Breakpoints
	UnlistedCalorie string // female | male | midpoint
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine; the environment alone is enough.
		_ = godotenv.Load()
	}

	ttl, err := time.ParseDuration(getenvWithDefault("SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	limit, err := strconv.Atoi(getenvWithDefault("HISTORY_LIMIT", "10"))
	if err != nil {
		return nil, fmt.Errorf("HISTORY_LIMIT: %w", err)
	}
	bp, err := health.ParseBreakpoints(os.Getenv("BMI_BREAKPOINTS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:       getenvWithDefault("APP_ADDR", "127.0.0.1:8501"),
			SessionTTL: ttl,
		},
		Store: StoreConfig{
			Path:         getenvWithDefault("BMI_DB_PATH", "bmi_history.db"),
			HistoryLimit: limit,
		},
		Health: HealthConfig{
			Breakpoints:     bp,
			UnlistedCalorie: getenvWithDefault("CALORIE_UNLISTED_OFFSET", "female"),
		},
		LogLevel: getenvWithDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Addr == "" {
		return errors.New("APP_ADDR must not be empty")
	}
	if c.Server.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Store.Path == "" {
		return errors.New("BMI_DB_PATH must not be empty")
	}
	if c.Store.HistoryLimit < 1 || c.Store.HistoryLimit > 100 {
		return errors.New("HISTORY_LIMIT must be between 1 and 100")
	}
	if _, err := health.ParseCaloriePolicy(c.Health.UnlistedCalorie); err != nil {
		return fmt.Errorf("CALORIE_UNLISTED_OFFSET: %w", err)
	}
	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	return nil
}

// Calculator builds the health calculator described by this config.
func (c *Config) Calculator() health.Calculator {
	policy, err := health.ParseCaloriePolicy(c.Health.UnlistedCalorie)
	if err != nil {
		policy = health.DefaultCaloriePolicy()
	}
	return health.Calculator{
		Classifier: health.Classifier{Breakpoints: c.Health.Breakpoints},
		Calories:   policy,
	}
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
