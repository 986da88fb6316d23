// t2048 is the 2048 sliding-tile puzzle for the terminal and the desktop.
//
// Usage:
//
//	t2048 play             - Play in the terminal
//	t2048 gui              - Play in a desktop window
//	t2048 best [--reset]   - Show or reset the best score
//	t2048 targets          - List target tile presets
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--seed <value>        - Set RNG seed for reproducible games
//	--store json|sqlite   - Best score backend
//	--store-path <path>   - Best score file or database
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagStore     string
	flagStorePath string
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles to reach the target",
	Long: `2048 is the sliding-tile puzzle: move all tiles in one direction,
equal neighbors merge into their sum, and a new tile appears after every
move. Reach the target tile to win; fill the board with no merges left
and the game is over.

Available commands:
  play     - Play in the terminal
  gui      - Play in a desktop window
  best     - Show or reset the best score
  targets  - List target tile presets

Examples:
  t2048 play
  t2048 play --target 4096
  t2048 gui --store sqlite
  t2048 best --reset`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Best score backend: json or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagStorePath, "store-path", "", "Path to best score file or database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(targetsCmd)
}
