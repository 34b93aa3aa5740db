package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file. A missing file is not an
// error: the tool works out of the box on defaults plus environment
// variables (ETHERSCAN_API_KEY in particular).
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if cfg.Etherscan.APIKey == "" {
		cfg.Etherscan.APIKey = os.Getenv("ETHERSCAN_API_KEY")
	}
	cfg.Etherscan.ApplyDefaults()
	cfg.Blacklist.ApplyDefaults()
	cfg.Scoring.ApplyDefaults()

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return &cfg, nil
}
