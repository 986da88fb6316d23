package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/hjkl  - Move tiles
  U                 - Undo the last move
  N                 - New game (asks first)
  T                 - Choose the target tile
  X                 - Reset best score (asks first)
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play --target 512
  t2048 play --seed 42 --store sqlite`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().Int("target", 0, "Winning tile (power of two, 128..65536)")
}

func runPlay(cmd *cobra.Command, args []string) {
	sess, err := openSession(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	defaults := core.DefaultConfig()
	width, height := defaults.ScreenW, defaults.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := sess.newGame()
	runErr := tui.Run(game, tui.Options{
		Width:   width,
		Height:  height,
		Refresh: sess.cfg.UI.Refresh,
		Flash:   sess.cfg.UI.Flash,
		Logger:  sess.logger,
	})

	// Close store before potential exit
	sess.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
