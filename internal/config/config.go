// Package config loads the docgrid command configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every setting the command accepts. Command-line flags that
// are set explicitly override values loaded from a file.
type Config struct {
	Source    string   `yaml:"source"`
	Format    string   `yaml:"format"`
	Output    string   `yaml:"output"`
	Fill      string   `yaml:"fill"`
	Timeout   Duration `yaml:"timeout"`
	UserAgent string   `yaml:"user_agent"`
	Charset   string   `yaml:"charset"`
	MaxCells  int      `yaml:"max_cells"`
	Scale     int      `yaml:"scale"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format: "",
		Fill:   " ",
		Scale:  2,
	}
}

// Load reads the YAML file at path on top of Default(). Unknown keys are
// rejected so that typos do not go unnoticed.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Fill == "" {
		return errors.New("fill must not be empty")
	}
	if c.MaxCells < 0 {
		return fmt.Errorf("max_cells must not be negative, got %d", c.MaxCells)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", time.Duration(c.Timeout))
	}
	return nil
}

// Duration is a time.Duration written in YAML as a Go duration string such
// as "30s" or "1m30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
