package config

// Configuration loading and validation for breathe

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tturner/breathe/internal/errors"
	"github.com/tturner/breathe/internal/logging"
	"github.com/tturner/breathe/internal/technique"
)

// ColorMode controls phase coloring on the status line
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode name
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (use auto, always or never)", s)
	}
}

// DisplayConfig controls how phases are drawn
type DisplayConfig struct {
	Color    ColorMode `yaml:"color" toml:"color"`
	Progress bool      `yaml:"progress" toml:"progress"` // redraw a bar once per second within a phase
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file,omitempty" toml:"file,omitempty"`
}

// SessionConfig controls the per-phase session log
type SessionConfig struct {
	CSV  string `yaml:"csv,omitempty" toml:"csv,omitempty"`
	JSON string `yaml:"json,omitempty" toml:"json,omitempty"`
}

// Config represents the breathe configuration file
type Config struct {
	// DefaultTechnique skips the menu when set ("1".."3" or a technique key).
	DefaultTechnique string        `yaml:"default_technique,omitempty" toml:"default_technique,omitempty"`
	Display          DisplayConfig `yaml:"display" toml:"display"`
	Logging          LoggingConfig `yaml:"logging" toml:"logging"`
	Session          SessionConfig `yaml:"session" toml:"session"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Color: ColorAuto,
		},
		Logging: LoggingConfig{
			Level: "error",
		},
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Marshal encodes cfg in the format implied by path
func Marshal(cfg *Config, path string) ([]byte, error) {
	if isTOML(path) {
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return yaml.Marshal(cfg)
}

// WriteDefault writes a default configuration to path
func WriteDefault(path string) error {
	data, err := Marshal(Default(), path)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Load reads a configuration file. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapConfigError(
				fmt.Errorf("config file not found: %s", path),
				path,
			)
		}
		return nil, errors.WrapConfigError(
			fmt.Errorf("read config file: %w", err),
			path,
		)
	}

	cfg := Default()
	if isTOML(path) {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapConfigError(fmt.Errorf("parse TOML: %w", err), path)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapConfigError(fmt.Errorf("parse YAML: %w", err), path)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.WrapConfigError(err, path)
	}

	return cfg, nil
}

// Validate checks cfg and fills in empty fields with defaults
func Validate(cfg *Config) error {
	mode, err := ParseColorMode(string(cfg.Display.Color))
	if err != nil {
		return fmt.Errorf("display.color: %w", err)
	}
	cfg.Display.Color = mode

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "error"
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	if cfg.DefaultTechnique != "" {
		if _, ok := technique.Lookup(cfg.DefaultTechnique); !ok {
			return fmt.Errorf("default_technique: unknown technique %q (use one of %s)",
				cfg.DefaultTechnique, strings.Join(technique.Selectors(), ", "))
		}
	}

	if cfg.Session.CSV != "" && cfg.Session.CSV == cfg.Session.JSON {
		return fmt.Errorf("session.csv and session.json must be different files")
	}

	return nil
}
