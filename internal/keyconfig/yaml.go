package keyconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a layer from YAML data.
func ParseYAML(fallbackName string, source Source, data []byte) (*Layer, error) {
	var cfg layerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing layer YAML (%s): %w", fallbackName, err)
	}
	return fromConfig(cfg, fallbackName, source), nil
}
