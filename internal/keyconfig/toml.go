package keyconfig

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOML parses a layer from TOML data.
func ParseTOML(fallbackName string, source Source, data []byte) (*Layer, error) {
	var cfg layerConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing layer TOML (%s): %w", fallbackName, err)
	}
	return fromConfig(cfg, fallbackName, source), nil
}
