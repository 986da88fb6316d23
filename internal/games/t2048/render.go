package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = BoardSize*cellWidth + 1  // +1 for right border
	boardH = BoardSize*cellHeight + 1 // +1 for bottom border

	// MinScreenW and MinScreenH are the smallest terminal that fits the
	// HUD, the board and the status line.
	MinScreenW = 44
	MinScreenH = hudHeight + 1 + boardH + 2
)

// RenderOptions carries presentation state owned by the frontend.
type RenderOptions struct {
	Flash   bool     // Highlight the cells merged by the last move
	Overlay []string // Dialog lines drawn in a box over the board
	Status  string   // Overrides the state-derived status line
}

// tileColors follows the classic palette: warm beige for small tiles,
// orange and red through the middle, gold for the big ones.
var tileColors = map[int]core.Color{
	2:    core.ColorBeige,
	4:    core.ColorBeige,
	8:    core.ColorOrange,
	16:   core.ColorOrange,
	32:   core.ColorRed,
	64:   core.ColorBrightRed,
	128:  core.ColorYellow,
	256:  core.ColorYellow,
	512:  core.ColorBrightYellow,
	1024: core.ColorGold,
	2048: core.ColorGold,
}

// TileColor returns the color for a tile value.
func TileColor(v int) core.Color {
	if c, ok := tileColors[v]; ok {
		return c
	}
	return core.ColorMagenta
}

// StatusText describes the snapshot's state for the status line.
func StatusText(snap Snapshot) string {
	switch snap.State {
	case StateWon:
		return fmt.Sprintf("Reached target %d!", snap.Target)
	case StateLost:
		return "No more moves. Game Over."
	default:
		return "Playing..."
	}
}

// Render draws the snapshot into the screen buffer.
func Render(dst *core.Screen, snap Snapshot, opts RenderOptions) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	renderHUD(dst, snap)
	renderBoard(dst, snap, boardX, boardY, opts.Flash)

	status := opts.Status
	if status == "" {
		status = StatusText(snap)
	}
	statusColor := core.ColorGray
	if snap.State == StateWon {
		statusColor = core.ColorGold
	} else if snap.State == StateLost {
		statusColor = core.ColorRed
	}
	drawCentered(dst, boardY+boardH+1, status, statusColor)

	if len(opts.Overlay) > 0 {
		drawOverlay(dst, core.NewRect(boardX, boardY, boardW, boardH), opts.Overlay)
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(x, y, text, c)
}

// renderHUD draws the title, score line and target.
func renderHUD(dst *core.Screen, snap Snapshot) {
	drawCentered(dst, 0, "2 0 4 8", core.ColorGold)
	drawCentered(dst, 1, fmt.Sprintf("Score: %d   Best: %d   Moves: %d", snap.Score, snap.Best, snap.Moves), core.ColorBrightWhite)
	drawCentered(dst, 2, fmt.Sprintf("Target: %d   Max: %d", snap.Target, snap.MaxTile), core.ColorGray)
}

// renderBoard draws the 4x4 grid with tiles.
func renderBoard(dst *core.Screen, snap Snapshot, boardX, boardY int, flash bool) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	var highlight [BoardSize][BoardSize]bool
	if flash {
		for _, c := range snap.Merged {
			highlight[c.Y][c.X] = true
		}
	}

	for y := range BoardSize {
		for x := range BoardSize {
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1
			val := snap.Board[y][x]

			if highlight[y][x] {
				inner := core.NewRect(cellX, cellY, cellWidth-1, cellHeight-1)
				dst.DrawRect(inner, core.Cell{Rune: ' ', Color: TileColor(val), Highlight: true})
			}
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			for i, r := range valStr {
				dst.SetCell(cellX+padLeft+i, cellY, core.Cell{
					Rune:      r,
					Color:     TileColor(val),
					Highlight: highlight[y][x],
				})
			}
		}
	}
}

// drawOverlay draws a boxed dialog centered over area.
func drawOverlay(dst *core.Screen, area core.Rect, lines []string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := area.CenteredRect(maxLen+4, len(lines)+2)
	dst.DrawRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColored(cx-len([]rune(line))/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
