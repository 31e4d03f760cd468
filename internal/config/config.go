// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Normalize.
const (
	DefaultOutputDir   = "."
	DefaultAssetsFile  = "new_assets.json"
	DefaultSensorsFile = "new_sensors.json"
	DefaultIndent      = 4
	DefaultLogLevel    = "info"
)

type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// ---- OUTPUT ----

type OutputConfig struct {
	Dir         string `yaml:"dir"`
	AssetsFile  string `yaml:"assets_file"`
	SensorsFile string `yaml:"sensors_file"`
	Indent      int    `yaml:"indent"` // spaces; 0 => default
}

// ---- LOG ----

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a normalized configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	Normalize(cfg)
	return cfg
}

// Load reads and decodes a YAML config file.
// Unknown keys are rejected. No validation, no defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes YAML config bytes. An empty document yields a zero Config.
func Parse(b []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &cfg, nil
}
