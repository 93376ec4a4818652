// Package config loads application settings from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunable settings of the visualizer.
type Config struct {
	// ArraySize is the fixed number of values per run.
	ArraySize int `env:"SORTVIS_ARRAY_SIZE" envDefault:"5"`
	// StepDelay is the pacing interval between animation steps.
	StepDelay time.Duration `env:"SORTVIS_STEP_DELAY" envDefault:"800ms"`
	// TimerRefresh is how often the stopwatch display updates.
	TimerRefresh time.Duration `env:"SORTVIS_TIMER_REFRESH" envDefault:"20ms"`
	// HistoryLimit bounds the run history kept per algorithm.
	HistoryLimit int `env:"SORTVIS_HISTORY_LIMIT" envDefault:"10"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ArraySize <= 0 {
		return Config{}, fmt.Errorf("array size must be positive, got %d", cfg.ArraySize)
	}
	if cfg.StepDelay <= 0 {
		return Config{}, fmt.Errorf("step delay must be positive, got %s", cfg.StepDelay)
	}
	if cfg.TimerRefresh <= 0 {
		return Config{}, fmt.Errorf("timer refresh must be positive, got %s", cfg.TimerRefresh)
	}
	return cfg, nil
}
