// Package config loads the scheduler and validator binaries'
// environment-driven settings.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every environment-tunable setting shared by the
// scheduler and validator CLIs.
type Config struct {
	LogLevel string `json:"log_level"`
	LogFormat string `json:"log_format"`

	EarlyStop EarlyStopConfig `json:"early_stop"`

	SolveWallClockCap time.Duration `json:"solve_wall_clock_cap"`
	DefaultSeed       int64         `json:"default_seed"`
}

// EarlyStopConfig mirrors the search driver's termination policy.
type EarlyStopConfig struct {
	Enabled              bool          `json:"enabled"`
	ScoreThreshold       int           `json:"score_threshold"`
	MinSolutions         int           `json:"min_solutions"`
	NoImprovementTimeout time.Duration `json:"no_improvement_timeout"`
}

// Load reads configuration from the environment, falling back to the
// spec's documented defaults for any unset variable.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
		EarlyStop: EarlyStopConfig{
			Enabled:              getEnvBool("EARLY_STOP_ENABLED", true),
			ScoreThreshold:       getEnvInt("EARLY_STOP_SCORE_THRESHOLD", 800),
			MinSolutions:         getEnvInt("EARLY_STOP_MIN_SOLUTIONS", 10),
			NoImprovementTimeout: getEnvDuration("EARLY_STOP_NO_IMPROVEMENT_SEC", 600*time.Second),
		},
		SolveWallClockCap: getEnvDuration("SOLVE_WALL_CLOCK_CAP_SEC", 1800*time.Second),
		DefaultSeed:       getEnvInt64("DEFAULT_SEED", 1),
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
