package engine

import (
	"fmt"

	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/logger"

	"github.com/caarlos0/env/v11"
)

// Config holds the startup parameters of a session.
type Config struct {
	Log logger.Config

	// Survivors join the game, in order, before any command runs.
	Survivors []string `env:"ZOMBICIDE_SURVIVORS" envSeparator:","`
	// Script is a JSON-lines command file. Empty means stdin.
	Script string `env:"ZOMBICIDE_SCRIPT"`
}

// NewConfig reads the configuration from the environment.
func NewConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
