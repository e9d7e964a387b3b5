// Package config reads studyai settings from STUDYAI_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds runtime settings for the flows and the outer surfaces.
type Config struct {
	ProcessingDelay time.Duration `env:"PROCESSING_DELAY" envDefault:"2s"`
	Tick            time.Duration `env:"TICK" envDefault:"500ms"`
	Step            int           `env:"STEP" envDefault:"20"`
	ToastTTL        time.Duration `env:"TOAST_TTL" envDefault:"4s"`

	// DBPath is the session catalog. The default keeps it in memory.
	DBPath string `env:"DB" envDefault:":memory:"`

	LogEvents     bool   `env:"LOG_EVENTS" envDefault:"false"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`

	NoColor bool `env:"NO_COLOR" envDefault:"false"`
}

const envPrefix = "STUDYAI_"

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		ProcessingDelay: 2 * time.Second,
		Tick:            500 * time.Millisecond,
		Step:            20,
		ToastTTL:        4 * time.Second,
		DBPath:          ":memory:",
		LogMaxSizeMB:    10,
		LogMaxBackups:   3,
	}
}

// Load parses the environment on top of the defaults and validates the
// result.
func Load() (Config, error) {
	return load(env.Options{Prefix: envPrefix})
}

// LoadFrom parses the given variables instead of the process environment.
// Keys include the STUDYAI_ prefix.
func LoadFrom(vars map[string]string) (Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return load(env.Options{Prefix: envPrefix, Environment: vars})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the flows cannot run with.
func (c Config) Validate() error {
	if c.ProcessingDelay <= 0 {
		return fmt.Errorf("processing delay must be positive, got %s", c.ProcessingDelay)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.Tick)
	}
	if c.Step <= 0 || c.Step > 100 {
		return fmt.Errorf("step must be between 1 and 100, got %d", c.Step)
	}
	if c.ToastTTL <= 0 {
		return fmt.Errorf("toast ttl must be positive, got %s", c.ToastTTL)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path must not be empty")
	}
	return nil
}
