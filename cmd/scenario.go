package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mortgage-strategy/domain"
)

// loadScenario reads a YAML document holding one SimulationConfig.
func loadScenario(path string) (domain.SimulationConfig, error) {
	var cfg domain.SimulationConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	return cfg, nil
}
