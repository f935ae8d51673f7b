// Package config loads the optional rbaconv.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rbatools/rbaconv/pkg/rba"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig mirrors rbaconv.yaml. All fields are optional; flags and
// environment variables take precedence over the file.
type ProjectConfig struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
	Strict    bool   `yaml:"strict"`
}

const ConfigFileName = "rbaconv.yaml"

// Load reads rbaconv.yaml from the given directory.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Environment variable names recognized by ApplyEnv. A .env file loaded at
// startup feeds the same variables.
const (
	EnvInputDir  = "RBACONV_INPUT_DIR"
	EnvOutputDir = "RBACONV_OUTPUT_DIR"
	EnvStrict    = "RBACONV_STRICT"
)

// ApplyEnv overlays environment variables onto cfg. Precedence is
// flag > environment > rbaconv.yaml > default, so callers apply this after
// loading the file and before flags.
func ApplyEnv(cfg *ProjectConfig) {
	if v, ok := os.LookupEnv(EnvInputDir); ok && v != "" {
		cfg.InputDir = v
	}
	if v, ok := os.LookupEnv(EnvOutputDir); ok && v != "" {
		cfg.OutputDir = v
	}
	if v, ok := os.LookupEnv(EnvStrict); ok && v != "" {
		cfg.Strict = rba.IsTrue(v)
	}
}

// ApplyOverrides applies --set key=value pairs onto cfg. Keys use the
// rbaconv.yaml field names. Overrides beat every other source.
func ApplyOverrides(cfg *ProjectConfig, pairs []string) error {
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("override %q is not in key=value format (example: --set strict=1)", pair)
		}
		switch key {
		case "input_dir":
			cfg.InputDir = value
		case "output_dir":
			cfg.OutputDir = value
		case "strict":
			cfg.Strict = rba.IsTrue(value)
		case "":
			return fmt.Errorf("override has empty key: %q", pair)
		default:
			return fmt.Errorf("unknown override key %q (valid: input_dir, output_dir, strict)", key)
		}
	}
	return nil
}
