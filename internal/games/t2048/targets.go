// Package t2048 implements the 2048 sliding-tile puzzle: the grid engine,
// the turn-based game controller and its text rendering.
package t2048

import (
	"errors"
	"fmt"
)

// DefaultTarget is the classic winning tile.
const DefaultTarget = 2048

// Target bounds accepted by SetTarget.
const (
	MinTarget = 128
	MaxTarget = 65536
)

// ErrInvalidTarget is returned for targets that are not a power of two
// within [MinTarget, MaxTarget].
var ErrInvalidTarget = errors.New("t2048: invalid target")

// TargetPreset is a named target tile offered by the target pickers.
type TargetPreset struct {
	Name   string
	Target int
}

// TargetPresets lists the selectable targets, easiest first.
// 8192 and above are very hard on a 4x4 board but reachable.
var TargetPresets = []TargetPreset{
	{Name: "Warm-up", Target: 128},
	{Name: "Getting Started", Target: 256},
	{Name: "Building Momentum", Target: 512},
	{Name: "The Climb", Target: 1024},
	{Name: "Classic 2048", Target: 2048},
	{Name: "Beyond Limits", Target: 4096},
	{Name: "Master Class", Target: 8192},
	{Name: "Expert Challenge", Target: 16384},
	{Name: "Grandmaster", Target: 32768},
	{Name: "Ultimate Champion", Target: 65536},
}

// PresetIndex returns the index of target in TargetPresets, or -1.
func PresetIndex(target int) int {
	for i, p := range TargetPresets {
		if p.Target == target {
			return i
		}
	}
	return -1
}

// NextPreset returns the preset after target, wrapping around. Unknown
// targets move to the classic preset.
func NextPreset(target int) TargetPreset {
	i := PresetIndex(target)
	if i < 0 {
		return TargetPresets[PresetIndex(DefaultTarget)]
	}
	return TargetPresets[(i+1)%len(TargetPresets)]
}

// ValidateTarget checks that v is a power of two within the accepted range.
func ValidateTarget(v int) error {
	if v < MinTarget || v > MaxTarget || v&(v-1) != 0 {
		return fmt.Errorf("%w: %d (want a power of two between %d and %d)", ErrInvalidTarget, v, MinTarget, MaxTarget)
	}
	return nil
}
