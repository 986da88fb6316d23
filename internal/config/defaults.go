package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Target:     t2048.DefaultTarget,
			Spawn4Prob: t2048.DefaultSpawn4Prob,
		},
		Store: StoreConfig{
			Backend: string(storage.BackendJSON),
		},
		UI: UIConfig{
			Refresh:  core.DefaultRefreshInterval,
			Flash:    true,
			TileSize: 100,
		},
	}
}
