// Package config provides YAML-based configuration loading with embedded
// defaults and environment overrides for the 2048 game.
package config

import "time"

// Config contains all configuration for the game and its frontends.
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Store StoreConfig `yaml:"store"`
	UI    UIConfig    `yaml:"ui"`
}

// GameConfig defines rule parameters.
type GameConfig struct {
	Target     int     `yaml:"target" env:"T2048_TARGET"`
	Spawn4Prob float64 `yaml:"spawn4_prob" env:"T2048_SPAWN4"`
}

// StoreConfig selects the best-score backend.
type StoreConfig struct {
	Backend string `yaml:"backend" env:"T2048_STORE"`
	Path    string `yaml:"path" env:"T2048_STORE_PATH"`
}

// UIConfig defines presentation parameters.
type UIConfig struct {
	Refresh  time.Duration `yaml:"refresh" env:"T2048_REFRESH"`
	Flash    bool          `yaml:"flash" env:"T2048_FLASH"`
	TileSize int           `yaml:"tile_size" env:"T2048_TILE_SIZE"`
}
