package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable defaults from config.yaml. Every field is
// optional; zero values defer to built-in behavior.
type Config struct {
	// TemplatesDir overrides the templates directory.
	TemplatesDir string `yaml:"templates_dir"`

	// PluginsDir overrides the template extensions directory.
	PluginsDir string `yaml:"plugins_dir"`

	// Editor overrides $EDITOR for the --open flag.
	Editor string `yaml:"editor"`

	// AssumeYes answers every confirmation prompt affirmatively.
	AssumeYes bool `yaml:"assume_yes"`
}

// Load reads the config file at path. A missing file yields the zero
// config without error; a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyTo overlays the config's overrides onto the given paths.
func (c *Config) ApplyTo(p *Paths) {
	if c.TemplatesDir != "" {
		p.Templates = c.TemplatesDir
	}
	if c.PluginsDir != "" {
		p.Plugins = c.PluginsDir
	}
}
