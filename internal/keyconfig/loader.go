package keyconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/keylens/internal/key"
	"github.com/dshills/keylens/internal/scope"
)

// FileSystem is an abstraction for file reads, allowing in-memory file
// systems in tests.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// LoadFile loads a layer from path, dispatching on the file extension
// (.json, .toml, .yaml/.yml). A missing file returns (nil, nil): a layer
// may legitimately be unavailable depending on host state.
func LoadFile(path string, source Source) (*Layer, error) {
	return LoadFileFS(DefaultFS(), path, source)
}

// LoadFileFS is LoadFile with an explicit file system.
func LoadFileFS(fsys FileSystem, path string, source Source) (*Layer, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading layer file %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(name, source, data)
	case ".toml":
		return ParseTOML(name, source, data)
	case ".yaml", ".yml":
		return ParseYAML(name, source, data)
	default:
		return nil, fmt.Errorf("unsupported layer file format: %s", path)
	}
}

// layerConfig is the on-disk structure shared by the TOML and YAML
// loaders. The JSON loader parses the same shape tolerantly via gjson.
type layerConfig struct {
	Name   string        `toml:"name" yaml:"name"`
	Groups []groupConfig `toml:"groups" yaml:"groups"`
}

type groupConfig struct {
	Name    string        `toml:"name" yaml:"name"`
	Scope   string        `toml:"scope" yaml:"scope"`
	Modal   bool          `toml:"modal" yaml:"modal"`
	Entries []entryConfig `toml:"entries" yaml:"entries"`
}

type entryConfig struct {
	Key         string `toml:"key" yaml:"key"`
	Ctrl        bool   `toml:"ctrl" yaml:"ctrl"`
	Shift       bool   `toml:"shift" yaml:"shift"`
	Alt         bool   `toml:"alt" yaml:"alt"`
	OS          bool   `toml:"os" yaml:"os"`
	Any         bool   `toml:"any" yaml:"any"`
	Value       string `toml:"value" yaml:"value"`
	KeyModifier string `toml:"key_modifier" yaml:"key_modifier"`
	Command     string `toml:"command" yaml:"command"`
	Name        string `toml:"label" yaml:"label"`

	// Active defaults to true when omitted, hence the pointer.
	Active *bool `toml:"active" yaml:"active"`
}

// fromConfig converts a parsed layer config, applying entry defaults.
func fromConfig(cfg layerConfig, fallbackName string, source Source) *Layer {
	name := cfg.Name
	if name == "" {
		name = fallbackName
	}

	layer := NewLayer(name, source)
	for _, gc := range cfg.Groups {
		g := NewGroup(gc.Name).ForScope(scope.Context(gc.Scope))
		if gc.Modal {
			g.AsModal()
		}
		for _, ec := range gc.Entries {
			active := true
			if ec.Active != nil {
				active = *ec.Active
			}
			g.Add(Entry{
				Type:        key.Token(ec.Key),
				Mods:        key.FromFlags(ec.Ctrl, ec.Shift, ec.Alt, ec.OS),
				Any:         ec.Any,
				Value:       TriggerValue(ec.Value),
				KeyModifier: key.Token(ec.KeyModifier),
				Command:     ec.Command,
				Name:        ec.Name,
				Active:      active,
			})
		}
		layer.Add(g)
	}
	return layer
}
