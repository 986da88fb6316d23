package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const fileName = "t2048.yaml"

// Load loads the configuration and applies environment overrides.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile resolves the YAML layer. Keys missing from a file keep their
// default values.
func loadFile(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "config.yaml")
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error

	if err := t2048.ValidateTarget(c.Game.Target); err != nil {
		errs = append(errs, fmt.Errorf("game.target: %w", err))
	}
	if c.Game.Spawn4Prob < 0 || c.Game.Spawn4Prob > 1 {
		errs = append(errs, fmt.Errorf("game.spawn4_prob must be within [0, 1], got %g", c.Game.Spawn4Prob))
	}
	if _, err := storage.ParseBackend(c.Store.Backend); err != nil {
		errs = append(errs, fmt.Errorf("store.backend: %w", err))
	}
	if c.UI.Refresh <= 0 {
		errs = append(errs, fmt.Errorf("ui.refresh must be positive, got %s", c.UI.Refresh))
	}
	if c.UI.TileSize < 40 {
		errs = append(errs, fmt.Errorf("ui.tile_size must be at least 40, got %d", c.UI.TileSize))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
