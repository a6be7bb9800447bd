// Package config manages zap's configuration directory layout and the
// optional config file.
//
// The default root is ~/.config/zap/, containing templates/, plugins/,
// and config.yaml. The root can be overridden with ZAP_CONFIG_DIR.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths zap reads from.
type Paths struct {
	// Root is the configuration directory (default: ~/.config/zap).
	Root string

	// Templates is the directory containing file templates.
	Templates string

	// Plugins is the directory containing template function extensions.
	Plugins string

	// Config is the path to the optional config file.
	Config string
}

// DefaultPaths returns the default paths for zap.
// ZAP_CONFIG_DIR overrides the root directory.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("ZAP_CONFIG_DIR")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".config", "zap")
	}

	return &Paths{
		Root:      root,
		Templates: filepath.Join(root, "templates"),
		Plugins:   filepath.Join(root, "plugins"),
		Config:    filepath.Join(root, "config.yaml"),
	}, nil
}

// TemplatePath returns the path a named template is expected at.
func (p *Paths) TemplatePath(name string) string {
	return filepath.Join(p.Templates, name)
}
