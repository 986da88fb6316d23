package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderHUDAndBoard(t *testing.T) {
	snap := Snapshot{
		Board:  Board{{2048, 0, 0, 4}},
		Score:  1234,
		Best:   5678,
		Moves:  9,
		Target: 2048,
		State:  StateWon,
	}

	s := core.NewScreen(80, 24)
	Render(s, snap, RenderOptions{})
	out := s.String()

	for _, want := range []string{"Score: 1234", "Best: 5678", "Moves: 9", "Target: 2048", "2048", "Reached target 2048!"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStatusOverride(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   string
	}{
		{"state text", "", "Playing..."},
		{"notice", "Best score reset", "Best score reset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(MinScreenW, MinScreenH)
			Render(s, Snapshot{Target: 2048}, RenderOptions{Status: tt.status})
			if out := s.String(); !strings.Contains(out, tt.want) {
				t.Errorf("rendered screen missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := core.NewScreen(20, 10)
	Render(s, Snapshot{}, RenderOptions{})

	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", s.String())
	}
}

func TestRenderFlashHighlightsMergedCells(t *testing.T) {
	snap := Snapshot{
		Board:  Board{{4, 0, 0, 0}},
		Merged: []Cell{{X: 0, Y: 0}},
		State:  StatePlaying,
	}

	s := core.NewScreen(80, 24)
	Render(s, snap, RenderOptions{Flash: true})

	boardX := (80 - boardW) / 2
	c := s.GetCell(boardX+1, hudHeight+2)
	if !c.Highlight {
		t.Errorf("merged cell should be highlighted, got %+v", c)
	}

	Render(s, snap, RenderOptions{Flash: false})
	if c := s.GetCell(boardX+1, hudHeight+2); c.Highlight {
		t.Errorf("cell should not be highlighted without flash, got %+v", c)
	}
}

func TestRenderOverlay(t *testing.T) {
	s := core.NewScreen(80, 24)
	Render(s, Snapshot{State: StatePlaying}, RenderOptions{Overlay: []string{"Start a new game?", "y/n"}})

	if !strings.Contains(s.String(), "Start a new game?") {
		t.Errorf("overlay text missing:\n%s", s.String())
	}
}

func TestTargetPresets(t *testing.T) {
	if len(TargetPresets) != 10 {
		t.Errorf("len(TargetPresets) = %d, want 10", len(TargetPresets))
	}
	for _, p := range TargetPresets {
		if err := ValidateTarget(p.Target); err != nil {
			t.Errorf("preset %q: %v", p.Name, err)
		}
	}

	if next := NextPreset(2048); next.Target != 4096 {
		t.Errorf("NextPreset(2048) = %d, want 4096", next.Target)
	}
	if next := NextPreset(65536); next.Target != 128 {
		t.Errorf("NextPreset(65536) = %d, want 128 (wrap)", next.Target)
	}
	if next := NextPreset(64); next.Target != DefaultTarget {
		t.Errorf("NextPreset(64) = %d, want %d", next.Target, DefaultTarget)
	}
}
