package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// matrix is a square grid of any cell type. Board and the merge mask share
// the reverse/transpose helpers through it.
type matrix[T any] [BoardSize][BoardSize]T

// Board represents a 4x4 game board. 0 is an empty cell.
type Board matrix[int]

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

func reverseRows[T any](m *matrix[T]) {
	for y := range BoardSize {
		for i, j := 0, BoardSize-1; i < j; i, j = i+1, j-1 {
			m[y][i], m[y][j] = m[y][j], m[y][i]
		}
	}
}

func transpose[T any](m *matrix[T]) {
	for y := range BoardSize {
		for x := y + 1; x < BoardSize; x++ {
			m[y][x], m[x][y] = m[x][y], m[y][x]
		}
	}
}

// ReverseRows reverses each row in place.
func (b *Board) ReverseRows() {
	reverseRows((*matrix[int])(b))
}

// Transpose swaps rows and columns in place.
func (b *Board) Transpose() {
	transpose((*matrix[int])(b))
}

// CompressLeft slides all non-zero values in each row to the left, keeping
// their order. Reports whether any tile changed position.
func (b *Board) CompressLeft() bool {
	moved := false

	for y := range BoardSize {
		var row [BoardSize]int
		writePos := 0
		for x := range BoardSize {
			if b[y][x] == 0 {
				continue
			}
			row[writePos] = b[y][x]
			if writePos != x {
				moved = true
			}
			writePos++
		}
		b[y] = row
	}

	return moved
}

// MergeLeft doubles the left tile of every equal adjacent pair and empties
// the right one, scanning each row once from the left. A tile produced by a
// merge is never merged again in the same pass, so [2 2 2 2] becomes
// [4 0 4 0]. Returns the points gained and whether any merge happened.
func (b *Board) MergeLeft() (gained int, merged bool) {
	gained, mask := b.mergeLeft()
	return gained, mask.any()
}

// mergeLeft is MergeLeft that also reports which cells hold merge results.
func (b *Board) mergeLeft() (int, mergeMask) {
	var mask mergeMask
	gained := 0

	for y := range BoardSize {
		for x := 0; x < BoardSize-1; x++ {
			if b[y][x] == 0 || b[y][x] != b[y][x+1] {
				continue
			}
			b[y][x] *= 2
			b[y][x+1] = 0
			gained += b[y][x]
			mask[y][x] = true
		}
	}

	return gained, mask
}

// mergeMask marks cells that received a merged tile.
type mergeMask matrix[bool]

func (m *mergeMask) any() bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if m[y][x] {
				return true
			}
		}
	}
	return false
}

func (m *mergeMask) cells() []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if m[y][x] {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// transform is the pre-step that turns a move into a "move left".
// Its inverse (reverse first, then transpose) restores the orientation.
type transform struct {
	transpose bool
	reverse   bool
}

var directionTransforms = map[Direction]transform{
	DirLeft:  {},
	DirRight: {reverse: true},
	DirUp:    {transpose: true},
	DirDown:  {transpose: true, reverse: true},
}

func (t transform) apply(b *Board, mask *mergeMask) {
	if t.transpose {
		b.Transpose()
		transpose((*matrix[bool])(mask))
	}
	if t.reverse {
		b.ReverseRows()
		reverseRows((*matrix[bool])(mask))
	}
}

func (t transform) undo(b *Board, mask *mergeMask) {
	if t.reverse {
		b.ReverseRows()
		reverseRows((*matrix[bool])(mask))
	}
	if t.transpose {
		b.Transpose()
		transpose((*matrix[bool])(mask))
	}
}

// slide moves the board in the given direction by running the canonical
// compress, merge, compress sequence under the direction's transform.
func (b *Board) slide(dir Direction) (gained int, mask mergeMask, changed bool) {
	t, ok := directionTransforms[dir]
	if !ok {
		return 0, mask, false
	}

	t.apply(b, &mask)
	compressed := b.CompressLeft()
	gained, mask = b.mergeLeft()
	b.CompressLeft()
	t.undo(b, &mask)

	return gained, mask, compressed || mask.any()
}

// Slide performs a move in the given direction on a copy of the board.
// Returns the new board, score gained, and whether the board changed.
func Slide(board Board, dir Direction) (Board, int, bool) {
	gained, _, changed := board.slide(dir)
	return board, gained, changed
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func (b *Board) EmptyCells() []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// IsFull returns true if no empty cell remains.
func (b *Board) IsFull() bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] == 0 {
				return false
			}
		}
	}
	return true
}

// CanMerge returns true if any two horizontally or vertically adjacent
// cells hold equal non-zero values.
func (b *Board) CanMerge() bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := b[y][x]
			if val == 0 {
				continue
			}
			if x < BoardSize-1 && b[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && b[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether sliding in some direction changes the board.
// An empty board cannot move.
func (b *Board) CanMove() bool {
	if b.IsFull() {
		return b.CanMerge()
	}
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if _, _, changed := Slide(*b, dir); changed {
			return true
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			maxVal = max(maxVal, b[y][x])
		}
	}
	return maxVal
}

// Contains reports whether any cell holds exactly value.
func (b *Board) Contains(value int) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] == value {
				return true
			}
		}
	}
	return false
}
