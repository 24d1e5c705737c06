// Package config loads configuration from the environment for CLI entry
// points and provides their fatal-exit helper.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads a .env file from the working directory into the
// process environment when one exists. A missing file is not an error;
// system environment variables apply as-is.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
