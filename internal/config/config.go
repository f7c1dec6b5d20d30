package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"surfboot/internal/graphics/renderer"
)

// Config is the on-disk configuration.
type Config struct {
	Renderer string   `yaml:"renderer"`
	Width    uint32   `yaml:"width"`
	Height   uint32   `yaml:"height"`
	Reset    []string `yaml:"reset"`
	FPSLimit int      `yaml:"fps_limit"`
	Title    string   `yaml:"title"`
	LogLevel string   `yaml:"log_level"`
}

// ValidationError names the offending field.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Renderer: renderer.TypeWebGPU.String(),
		Width:    900,
		Height:   600,
		Reset:    []string{"vsync"},
		FPSLimit: DefaultFPSLimit,
		Title:    "surfboot",
		LogLevel: "info",
	}
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "surfboot", "config.yaml"), nil
}

// Load reads the configuration from the standard location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path over the defaults. A missing file yields the
// defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := renderer.ParseType(c.Renderer); err != nil {
		return &ValidationError{Path: "renderer", Err: fmt.Errorf("renderer must be one of: %s", strings.Join(renderer.TypeNames(), ", "))}
	}
	if c.Width == 0 {
		return &ValidationError{Path: "width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Height == 0 {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be > 0")}
	}
	if _, err := renderer.ParseResetFlags(c.Reset); err != nil {
		return &ValidationError{Path: "reset", Err: err}
	}
	if c.FPSLimit < 0 {
		return &ValidationError{Path: "fps_limit", Err: fmt.Errorf("fps_limit must be >= 0")}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	return nil
}

// Options converts the configuration into renderer options. It expects a
// validated config.
func (c *Config) Options() (renderer.Options, error) {
	t, err := renderer.ParseType(c.Renderer)
	if err != nil {
		return renderer.Options{}, err
	}
	reset, err := renderer.ParseResetFlags(c.Reset)
	if err != nil {
		return renderer.Options{}, err
	}
	return renderer.Options{
		Renderer: t,
		Resolution: renderer.Resolution{
			Width:  c.Width,
			Height: c.Height,
			Reset:  reset,
		},
	}, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
