package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Poseidon-99/ai-resource-configurator/insight"
)

// cliConfig is the optional YAML config file shape.
type cliConfig struct {
	Insight insight.Config `yaml:"insight"`
}

// loadConfig reads the config file when given, then applies environment
// overrides. Missing file without an explicit --config is not an error.
func loadConfig(path string) (cliConfig, error) {
	var cfg cliConfig

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// NewClient fills in model and endpoint defaults; only the key has an
	// environment override.
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Insight.APIKey = key
	}
	return cfg, nil
}
