package main

import (
	"fmt"

	"github.com/phrazzld/scry-cards/internal/config"
)

// loadAppConfig loads the application configuration from defaults, an
// optional config file and environment variables.
func loadAppConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
