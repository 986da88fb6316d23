package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the keyboard or by clicking the
on-screen arrow and command buttons.

Controls:
  Arrows/WASD  - Move tiles
  U            - Undo the last move
  N            - New game (asks first)
  T            - Cycle the target tile
  X            - Reset best score (asks first)
  Q/Esc        - Quit

Examples:
  t2048 gui
  t2048 gui --target 1024`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().Int("target", 0, "Winning tile (power of two, 128..65536)")
}

func runGUI(cmd *cobra.Command, args []string) {
	sess, err := openSession(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := gui.Run(sess.newGame(), gui.Options{
		TileSize: sess.cfg.UI.TileSize,
		Flash:    sess.cfg.UI.Flash,
		Logger:   sess.logger,
	})

	sess.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
