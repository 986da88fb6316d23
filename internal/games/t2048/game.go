package t2048

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// State is the controller's position in the game lifecycle.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Terminal reports whether no further moves are accepted.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// BestScoreStore persists the best score across sessions.
// The game reads it once at construction and writes on every change.
type BestScoreStore interface {
	LoadBest() (int, error)
	SaveBest(best int) error
}

// undoSnapshot is the single-step undo slot.
type undoSnapshot struct {
	board Board
	score int
	state State
}

// Game is the turn-based 2048 controller. It is not safe for concurrent
// use; each frontend owns one instance.
type Game struct {
	engine *Engine
	store  BestScoreStore
	logger *log.Logger

	state  State
	moves  int
	target int
	best   int
	undo   *undoSnapshot
}

// Option configures a Game.
type Option func(*options)

type options struct {
	seed       int64
	target     int
	spawn4Prob float64
	logger     *log.Logger
}

// WithSeed fixes the RNG seed. 0 means seed from the clock.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithTarget sets the initial winning tile. Invalid values keep the default.
func WithTarget(target int) Option {
	return func(o *options) {
		if ValidateTarget(target) == nil {
			o.target = target
		}
	}
}

// WithSpawn4Prob sets the probability that a spawned tile is a 4.
func WithSpawn4Prob(p float64) Option {
	return func(o *options) {
		if p >= 0 && p <= 1 {
			o.spawn4Prob = p
		}
	}
}

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a game with two random tiles. store may be nil, in which case
// the best score lives only in memory.
func New(store BestScoreStore, opts ...Option) *Game {
	o := options{
		target:     DefaultTarget,
		spawn4Prob: DefaultSpawn4Prob,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}

	g := &Game{
		engine: NewEngine(rand.New(rand.NewSource(o.seed)), o.spawn4Prob),
		store:  store,
		logger: o.logger,
		target: o.target,
	}
	g.best = g.loadBest()
	g.Reset()

	return g
}

func (g *Game) loadBest() int {
	if g.store == nil {
		return 0
	}
	best, err := g.store.LoadBest()
	if err != nil || best < 0 {
		g.logger.Warn("could not load best score, starting from zero", "error", err)
		return 0
	}
	g.logger.Debug("loaded best score", "best", best)
	return best
}

func (g *Game) saveBest() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveBest(g.best); err != nil {
		g.logger.Warn("could not save best score", "best", g.best, "error", err)
	}
}

// Reset starts a fresh game: empty board with two random tiles, zero score
// and moves, no undo. The best score and target are kept.
func (g *Game) Reset() {
	g.engine.Clear()
	g.state = StatePlaying
	g.moves = 0
	g.undo = nil

	g.engine.SpawnRandomCell()
	g.engine.SpawnRandomCell()
}

// Move applies a directional move. It is ignored once the game is won or
// lost. Returns whether the board changed.
func (g *Game) Move(dir Direction) bool {
	if g.state != StatePlaying {
		return false
	}

	g.undo = &undoSnapshot{
		board: g.engine.Board(),
		score: g.engine.Score(),
		state: g.state,
	}

	if !g.engine.Slide(dir) {
		// A full board with no merges is lost even if nothing moved.
		if !g.engine.CanMove() {
			g.state = StateLost
		}
		return false
	}

	g.moves++
	g.engine.SpawnRandomCell()

	if score := g.engine.Score(); score > g.best {
		g.best = score
		g.saveBest()
	}

	board := g.engine.Board()
	switch {
	case board.Contains(g.target):
		g.state = StateWon
		g.logger.Info("target reached", "target", g.target, "score", g.engine.Score(), "moves", g.moves)
	case !board.CanMove():
		g.state = StateLost
		g.logger.Info("no moves left", "score", g.engine.Score(), "moves", g.moves)
	}

	g.logger.Debug("move", "dir", dir, "score", g.engine.Score(), "moves", g.moves)
	return true
}

// Undo restores the board, score and state from before the last move.
// Only one step is kept: a second Undo without a move in between is a
// no-op. The move counter and best score are not rolled back.
func (g *Game) Undo() bool {
	if g.undo == nil {
		return false
	}

	g.engine.restore(g.undo.board, g.undo.score)
	g.state = g.undo.state
	g.undo = nil
	return true
}

// SetTarget changes the winning tile for future moves. Tiles already on the
// board are not re-checked.
func (g *Game) SetTarget(target int) error {
	if err := ValidateTarget(target); err != nil {
		return err
	}
	g.target = target
	g.logger.Debug("target changed", "target", target)
	return nil
}

// ResetBest zeroes and persists the best score.
func (g *Game) ResetBest() {
	g.best = 0
	g.saveBest()
}

// Board returns a copy of the board.
func (g *Game) Board() Board { return g.engine.Board() }

// Score returns the current score.
func (g *Game) Score() int { return g.engine.Score() }

// Best returns the best score.
func (g *Game) Best() int { return g.best }

// Moves returns the number of accepted moves this game.
func (g *Game) Moves() int { return g.moves }

// Target returns the winning tile value.
func (g *Game) Target() int { return g.target }

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// CanUndo reports whether an undo snapshot is available.
func (g *Game) CanUndo() bool { return g.undo != nil }

// MergedCells returns the cells that received a merged tile on the last
// accepted move, for the merge flash.
func (g *Game) MergedCells() []Cell { return g.engine.MergedCells() }
