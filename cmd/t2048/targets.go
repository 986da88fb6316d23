package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List target tile presets",
	Long:  `Shows the target tiles offered by the target picker.`,
	Args:  cobra.NoArgs,
	Run:   runTargets,
}

func runTargets(cmd *cobra.Command, args []string) {
	fmt.Println("Target presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range t2048.TargetPresets {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	// Print header
	fmt.Printf("  %-6s  %-*s\n", "Target", maxNameLen, "Name")
	fmt.Printf("  %-6s  %-*s\n", "------", maxNameLen, "----")

	for _, p := range t2048.TargetPresets {
		marker := ""
		if p.Target == t2048.DefaultTarget {
			marker = "  (default)"
		}
		fmt.Printf("  %-6d  %-*s%s\n", p.Target, maxNameLen, p.Name, marker)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play --target <n>' to play for any power of two from 128 to 65536.")
}
