// internal/config/load.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, validates and normalizes the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse is Load without the file.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	Normalize(&cfg)
	return &cfg, nil
}
