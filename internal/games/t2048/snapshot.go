package t2048

// Snapshot is a read-only copy of the game for rendering and tests.
type Snapshot struct {
	Board   Board
	Score   int
	Best    int
	Moves   int
	Target  int
	MaxTile int
	State   State
	CanUndo bool
	Merged  []Cell // Cells merged by the last accepted move
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	board := g.engine.Board()
	return Snapshot{
		Board:   board,
		Score:   g.engine.Score(),
		Best:    g.best,
		Moves:   g.moves,
		Target:  g.target,
		MaxTile: board.MaxTile(),
		State:   g.state,
		CanUndo: g.undo != nil,
		Merged:  g.engine.MergedCells(),
	}
}
