package cli

import (
	"fmt"

	"github.com/danieljhkim/zap/internal/clock"
	"github.com/danieljhkim/zap/internal/config"
	"github.com/danieljhkim/zap/internal/engine"
	"github.com/danieljhkim/zap/internal/fsops"
	"github.com/danieljhkim/zap/internal/template"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	paths, cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	renderer := template.NewEngine(paths.Templates)
	if err := template.LoadExtensions(renderer, paths.Plugins, warnf); err != nil {
		// Extensions are optional; a bad plugins dir shouldn't stop a touch.
		warnf("skipping template extensions: %v", err)
	}

	var confirmer engine.Confirmer = PromptConfirmer{}
	if flagYes || cfg.AssumeYes {
		confirmer = AssumeYesConfirmer{}
	}

	return engine.New(fsops.NewRealFS(), clock.SystemClock{}, confirmer, renderer, nil, cfg.Editor), nil
}

// loadConfig resolves the config directory and reads the optional config file.
func loadConfig() (*config.Paths, *config.Config, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyTo(paths)

	return paths, cfg, nil
}

func warnf(format string, args ...any) {
	PrintWarning(fmt.Sprintf(format, args...))
}
