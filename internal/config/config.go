// Package config reads forestblast settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Display modes.
const (
	DisplayTerminal = "terminal"
	DisplayPlain    = "plain"
)

type Config struct {
	Display   string        `env:"FORESTBLAST_DISPLAY" env-default:"terminal" env-description:"terminal or plain"`
	TurnDelay time.Duration `env:"FORESTBLAST_TURN_DELAY" env-default:"1s" env-description:"pause between explosions"`
	Seed      int64         `env:"FORESTBLAST_SEED" env-default:"0" env-description:"random seed, 0 picks one"`
	LogLevel  string        `env:"FORESTBLAST_LOG_LEVEL" env-default:"warn"`
	LogFile   string        `env:"FORESTBLAST_LOG_FILE"`
	Telemetry Telemetry
}

type Telemetry struct {
	Enabled bool   `env:"FORESTBLAST_TELEMETRY" env-default:"false"`
	APIKey  string `env:"HONEYCOMB_FORESTBLAST_API_KEY"`
	Dataset string `env:"HONEYCOMB_FORESTBLAST_DATASET" env-default:"forestblast"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load the configuration, panicking on error.
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		panic(err)
	}
	return config
}

func (that *Config) validate() error {
	switch that.Display {
	case DisplayTerminal, DisplayPlain:
	default:
		return fmt.Errorf("unknown display %q, want %q or %q", that.Display, DisplayTerminal, DisplayPlain)
	}
	if that.TurnDelay < 0 {
		return fmt.Errorf("turn delay must not be negative, got %s", that.TurnDelay)
	}
	return nil
}

// Usage describes the environment variables.
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}
