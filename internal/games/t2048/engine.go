package t2048

import "math/rand"

// DefaultSpawn4Prob is the chance a spawned tile is a 4 instead of a 2.
const DefaultSpawn4Prob = 0.10

// Engine holds the board and the running score and owns the random source
// used for tile spawns.
type Engine struct {
	board      Board
	score      int
	rng        *rand.Rand
	spawn4Prob float64
	merged     mergeMask
}

// NewEngine creates an engine with an empty board.
func NewEngine(rng *rand.Rand, spawn4Prob float64) *Engine {
	return &Engine{
		rng:        rng,
		spawn4Prob: spawn4Prob,
	}
}

// Board returns a copy of the current board.
func (e *Engine) Board() Board {
	return e.board
}

// Score returns the running score.
func (e *Engine) Score() int {
	return e.score
}

// Clear empties the board and zeroes the score.
func (e *Engine) Clear() {
	e.board = Board{}
	e.score = 0
	e.merged = mergeMask{}
}

// restore replaces board and score, used by undo.
func (e *Engine) restore(b Board, score int) {
	e.board = b
	e.score = score
	e.merged = mergeMask{}
}

// Slide moves all tiles in dir, merging equal neighbors and adding the
// merged values to the score. Reports whether the board changed.
func (e *Engine) Slide(dir Direction) bool {
	gained, mask, changed := e.board.slide(dir)
	e.score += gained
	e.merged = mask
	return changed
}

// MergedCells returns the cells that received a merged tile on the last slide.
func (e *Engine) MergedCells() []Cell {
	return e.merged.cells()
}

// SpawnRandomCell places a 2 (or a 4, with the configured probability) in a
// uniformly chosen empty cell. Returns false when the board is full.
func (e *Engine) SpawnRandomCell() (Cell, bool) {
	empty := e.board.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < e.spawn4Prob {
		value = 4
	}
	e.board[cell.Y][cell.X] = value

	return cell, true
}

// CanMove reports whether any direction would change the board.
func (e *Engine) CanMove() bool {
	return e.board.CanMove()
}
