package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the best score",
	Long: `Print the persisted best score, or reset it to zero.

Examples:
  t2048 best
  t2048 best --store sqlite
  t2048 best --reset`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the best score to 0")
}

func runBest(cmd *cobra.Command, args []string) {
	sess, err := openSession(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	if sess.store == nil {
		fmt.Fprintln(os.Stderr, "Error: best score store is unavailable")
		sess.Close()
		os.Exit(1)
	}

	if err := reportBest(os.Stdout, sess.store, flagReset, sess.logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		sess.Close()
		os.Exit(1)
	}
}

// reportBest prints the best score and where it is stored, or resets it.
func reportBest(w io.Writer, store storage.BestStore, reset bool, logger *log.Logger) error {
	if reset {
		if err := store.SaveBest(0); err != nil {
			return fmt.Errorf("resetting best score: %w", err)
		}
		fmt.Fprintln(w, "Best score reset.")
		fmt.Fprintf(w, "Store: %s\n", store.Path())
		return nil
	}

	best, err := store.LoadBest()
	if err != nil {
		// Malformed data counts as no best score
		logger.Warn("could not load best score", "error", err)
		best = 0
	}
	fmt.Fprintf(w, "Best: %d\n", best)
	fmt.Fprintf(w, "Store: %s\n", store.Path())
	return nil
}
