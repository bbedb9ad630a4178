package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rao305/boilerai-sub000/internal/planner"
)

// Config holds process-level settings. Everything is overridable through
// BOILERAI_* environment variables; main loads a .env file first so local
// setups can keep them in one place.
type Config struct {
	DBPath  string
	Horizon int
	Weights planner.Weights
}

// Default returns a Config with standard values. DBPath is empty; callers
// resolve it through ResolveDBPath so the home lookup happens once.
func Default() Config {
	return Config{
		Horizon: planner.DefaultHorizon,
		Weights: planner.DefaultWeights(),
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("BOILERAI_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("BOILERAI_HORIZON"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Horizon = n
		}
	}
	loadWeight("BOILERAI_WEIGHT_CRITICAL_PATH", &cfg.Weights.CriticalPath)
	loadWeight("BOILERAI_WEIGHT_BLOCKING", &cfg.Weights.BlockingFactor)
	loadWeight("BOILERAI_WEIGHT_DIFFICULTY", &cfg.Weights.Difficulty)
	loadWeight("BOILERAI_WEIGHT_REQUIREMENT", &cfg.Weights.Requirement)
	loadWeight("BOILERAI_WEIGHT_SUCCESS_RATE", &cfg.Weights.SuccessRate)

	return cfg
}

func loadWeight(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			*dst = f
		}
	}
}

// ResolveDBPath returns the configured database path, defaulting to
// ~/.boilerai/boilerai.db.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".boilerai", "boilerai.db"), nil
}
