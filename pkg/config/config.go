// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full service configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`
	// GeminiAPIKey authorizes the AI endpoints. Empty disables them.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	// FontPath optionally points at a TTF for thumbnail text.
	FontPath string `env:"CARD_FONT_PATH"`
	// AICooldown is the minimum gap between uses of each AI operation.
	AICooldown time.Duration `env:"AI_COOLDOWN" envDefault:"10s"`
	// MobileScale switches exports to the lower capture scale.
	MobileScale bool `env:"MOBILE_SCALE"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
