// Package view holds the display-independent half of the desktop frontend:
// window geometry, clickable buttons and the input state machine. It has no
// graphics dependency so it can be tested without a display.
package view

import (
	"image"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

const (
	TileMargin  = 5
	BoardMargin = 20
	HeaderH     = 170
	FooterH     = 190

	buttonH   = 40
	buttonGap = 10
	dialogBtn = 120
)

// Button is a clickable rectangle bound to an action.
type Button struct {
	Label  string
	Action core.Action
	Rect   image.Rectangle
}

// Layout computes pixel positions for a given tile size.
type Layout struct {
	Tile int
}

// BoardInner is the width of the tile grid without its margin.
func (l Layout) BoardInner() int {
	return l.Tile*t2048.BoardSize + TileMargin*(t2048.BoardSize-1)
}

// ScreenSize is the logical window size.
func (l Layout) ScreenSize() (int, int) {
	w := l.BoardInner() + 4*BoardMargin
	h := HeaderH + l.BoardInner() + 2*BoardMargin + FooterH
	return w, h
}

// BoardOrigin is the top-left corner of the first tile.
func (l Layout) BoardOrigin() image.Point {
	w, _ := l.ScreenSize()
	return image.Pt((w-l.BoardInner())/2, HeaderH+BoardMargin)
}

// BoardRect is the board background including its margin.
func (l Layout) BoardRect() image.Rectangle {
	o := l.BoardOrigin()
	size := l.BoardInner() + 2*BoardMargin
	return image.Rect(o.X-BoardMargin, o.Y-BoardMargin, o.X-BoardMargin+size, o.Y-BoardMargin+size)
}

// TileRect returns the rectangle of the tile at column x, row y.
func (l Layout) TileRect(x, y int) image.Rectangle {
	o := l.BoardOrigin()
	px := o.X + x*(l.Tile+TileMargin)
	py := o.Y + y*(l.Tile+TileMargin)
	return image.Rect(px, py, px+l.Tile, py+l.Tile)
}

// StatusY is the baseline of the status line under the board.
func (l Layout) StatusY() int {
	return l.BoardRect().Max.Y + 30
}

type buttonSpec struct {
	label  string
	action core.Action
}

var (
	arrowRow = []buttonSpec{
		{"Left", core.ActionLeft},
		{"Up", core.ActionUp},
		{"Down", core.ActionDown},
		{"Right", core.ActionRight},
	}
	controlRow = []buttonSpec{
		{"New Game", core.ActionNewGame},
		{"Undo", core.ActionUndo},
		{"Target", core.ActionSetTarget},
		{"Reset Best", core.ActionResetBest},
	}
)

// Buttons returns the play controls under the board: a row of arrows and
// a row of game commands, both as wide as the board.
func (l Layout) Buttons() []Button {
	board := l.BoardRect()
	top := board.Max.Y + 45

	buttons := l.row(arrowRow, board.Min.X, board.Dx(), top)
	return append(buttons, l.row(controlRow, board.Min.X, board.Dx(), top+buttonH+buttonGap)...)
}

// DialogButtons returns the buttons drawn over the board while d is open.
func (l Layout) DialogButtons(d Dialog) []Button {
	w, h := l.ScreenSize()
	top := h/2 + 50

	switch d {
	case DialogAnnounce:
		return l.row([]buttonSpec{{"OK", core.ActionConfirm}}, (w-dialogBtn)/2, dialogBtn, top)
	case DialogConfirmNew, DialogConfirmReset:
		span := 2*dialogBtn + buttonGap
		return l.row([]buttonSpec{
			{"Yes", core.ActionConfirm},
			{"No", core.ActionCancel},
		}, (w-span)/2, span, top)
	}
	return nil
}

// row splits span into equal buttons separated by buttonGap.
func (l Layout) row(specs []buttonSpec, x, span, y int) []Button {
	n := len(specs)
	bw := (span - buttonGap*(n-1)) / n

	buttons := make([]Button, n)
	for i, s := range specs {
		bx := x + i*(bw+buttonGap)
		buttons[i] = Button{
			Label:  s.label,
			Action: s.action,
			Rect:   image.Rect(bx, y, bx+bw, y+buttonH),
		}
	}
	return buttons
}

// HitTest returns the action of the button under p, or ActionNone.
func HitTest(buttons []Button, p image.Point) core.Action {
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b.Action
		}
	}
	return core.ActionNone
}
