// Package gui provides the Ebiten desktop frontend for the 2048 game.
package gui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/gui/view"
)

// Options configures the desktop frontend.
type Options struct {
	TileSize int  // Tile edge in pixels
	Flash    bool // Blink merged tiles
	Logger   *log.Logger
}

// App implements ebiten.Game on top of a 2048 controller.
type App struct {
	ctl    *view.Controller
	layout view.Layout
	faces  faces
}

// keyBinding maps physical keys to an action.
type keyBinding struct {
	keys   []ebiten.Key
	action core.Action
}

var keyActions = []keyBinding{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeyU}, core.ActionUndo},
	{[]ebiten.Key{ebiten.KeyN}, core.ActionNewGame},
	{[]ebiten.Key{ebiten.KeyT}, core.ActionSetTarget},
	{[]ebiten.Key{ebiten.KeyX}, core.ActionResetBest},
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, core.ActionQuit},
}

var dialogKeyActions = []keyBinding{
	{[]ebiten.Key{ebiten.KeyY, ebiten.KeyEnter}, core.ActionConfirm},
	{[]ebiten.Key{ebiten.KeyN, ebiten.KeyEscape}, core.ActionCancel},
}

// NewApp creates the window state for game.
func NewApp(game *t2048.Game, opts Options) (*App, error) {
	if opts.TileSize <= 0 {
		opts.TileSize = 100
	}

	f, err := loadFaces(opts.TileSize)
	if err != nil {
		return nil, err
	}

	return &App{
		ctl:    view.NewController(game, opts.Flash, opts.Logger),
		layout: view.Layout{Tile: opts.TileSize},
		faces:  f,
	}, nil
}

// Update handles keyboard and mouse input once per frame.
func (a *App) Update() error {
	if a.ctl.Quit() {
		return ebiten.Termination
	}

	keys, buttons := keyActions, a.layout.Buttons()
	if d := a.ctl.Dialog(); d != view.DialogNone {
		keys, buttons = dialogKeyActions, a.layout.DialogButtons(d)
	}

	action := justPressed(keys)
	if action == core.ActionNone {
		action = clicked(buttons)
	}
	a.ctl.Handle(action, time.Now())
	return nil
}

// justPressed returns the first action whose key went down this frame.
func justPressed(table []keyBinding) core.Action {
	for _, entry := range table {
		for _, k := range entry.keys {
			if inpututil.IsKeyJustPressed(k) {
				return entry.action
			}
		}
	}
	return core.ActionNone
}

// clicked returns the action of the button under a fresh left click.
func clicked(buttons []view.Button) core.Action {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return core.ActionNone
	}
	return view.HitTest(buttons, image.Pt(ebiten.CursorPosition()))
}

// Draw renders the current game state.
func (a *App) Draw(screen *ebiten.Image) {
	now := time.Now()
	snap := a.ctl.Game().Snapshot()
	w, h := a.layout.ScreenSize()

	screen.Fill(backgroundColor)

	a.drawHeader(screen, snap, w)
	a.drawBoard(screen, snap, a.ctl.FlashOn(now))
	a.drawFooter(screen, snap, w, h, now)

	d := a.ctl.Dialog()
	switch d {
	case view.DialogConfirmNew:
		a.drawOverlay(screen, "Start a new game?", "Y / Enter: yes    N / Esc: no")
	case view.DialogConfirmReset:
		a.drawOverlay(screen, "Reset best score?", "Y / Enter: yes    N / Esc: no")
	case view.DialogAnnounce:
		title, subtitle := a.ctl.Announce()
		a.drawOverlay(screen, title, subtitle)
	}
	a.drawButtons(screen, a.layout.DialogButtons(d))
}

func (a *App) drawHeader(screen *ebiten.Image, snap t2048.Snapshot, w int) {
	text.Draw(screen, "2048", a.faces.title, view.BoardMargin, 60, textColor)

	panelW := 100
	a.drawScorePanel(screen, "SCORE", snap.Score, w-2*panelW-2*view.BoardMargin+view.BoardMargin/2, 20, panelW)
	a.drawScorePanel(screen, "BEST", snap.Best, w-panelW-view.BoardMargin, 20, panelW)

	info := fmt.Sprintf("Moves: %d    Target: %d    Max: %d", snap.Moves, snap.Target, snap.MaxTile)
	text.Draw(screen, info, a.faces.bold, view.BoardMargin, 120, textColor)
}

func (a *App) drawScorePanel(screen *ebiten.Image, title string, score, x, y, panelW int) {
	const panelH = 60
	ebitenutil.DrawRect(screen, float64(x), float64(y), float64(panelW), panelH, boardColor)

	text.Draw(screen, title, a.faces.small, x+(panelW-textWidth(a.faces.small, title))/2, y+20, textColorLight)

	s := strconv.Itoa(score)
	text.Draw(screen, s, a.faces.bold, x+(panelW-textWidth(a.faces.bold, s))/2, y+45, textColorLight)
}

func (a *App) drawBoard(screen *ebiten.Image, snap t2048.Snapshot, flash bool) {
	fillRect(screen, a.layout.BoardRect(), boardColor)

	var highlight [t2048.BoardSize][t2048.BoardSize]bool
	if flash {
		for _, c := range snap.Merged {
			highlight[c.Y][c.X] = true
		}
	}

	for y := range t2048.BoardSize {
		for x := range t2048.BoardSize {
			v := snap.Board[y][x]
			r := a.layout.TileRect(x, y)

			bg := tileColor(v)
			if highlight[y][x] {
				bg = lighten(bg, 0.85)
			}
			fillRect(screen, r, bg)

			if v == 0 {
				continue
			}
			s := strconv.Itoa(v)
			face := a.fitFace(a.faces.tile, s, r.Dx()-2*view.TileMargin)
			tx := r.Min.X + (r.Dx()-textWidth(face, s))/2
			ty := r.Min.Y + (r.Dy()+textHeight(face, s))/2
			text.Draw(screen, s, face, tx, ty, tileTextColor(v))
		}
	}
}

// fitFace returns face, or a smaller one when s is wider than width.
func (a *App) fitFace(face font.Face, s string, width int) font.Face {
	for _, f := range []font.Face{face, a.faces.bold, a.faces.small} {
		if textWidth(f, s) <= width {
			return f
		}
	}
	return a.faces.small
}

func (a *App) drawFooter(screen *ebiten.Image, snap t2048.Snapshot, w, h int, now time.Time) {
	status := t2048.StatusText(snap)
	statusColor := color.Color(textColor)
	if snap.State == t2048.StateLost {
		statusColor = lostColor
	}
	if notice := a.ctl.Notice(now); notice != "" {
		status = notice
	}
	text.Draw(screen, status, a.faces.bold, (w-textWidth(a.faces.bold, status))/2, a.layout.StatusY(), statusColor)

	a.drawButtons(screen, a.layout.Buttons())

	controls := "Arrows/WASD: move  U: undo  N: new  T: target  X: reset best  Q: quit"
	text.Draw(screen, controls, a.faces.small, (w-textWidth(a.faces.small, controls))/2, h-20, textColor)
}

func (a *App) drawButtons(screen *ebiten.Image, buttons []view.Button) {
	for _, b := range buttons {
		fillRect(screen, b.Rect, buttonColor)
		face := a.fitFace(a.faces.bold, b.Label, b.Rect.Dx()-2*view.TileMargin)
		tx := b.Rect.Min.X + (b.Rect.Dx()-textWidth(face, b.Label))/2
		ty := b.Rect.Min.Y + (b.Rect.Dy()+textHeight(face, b.Label))/2
		text.Draw(screen, b.Label, face, tx, ty, textColorLight)
	}
}

func (a *App) drawOverlay(screen *ebiten.Image, title, subtitle string) {
	w, h := a.layout.ScreenSize()
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), overlayColor)

	text.Draw(screen, title, a.faces.title, (w-textWidth(a.faces.title, title))/2, h/2-20, color.White)
	text.Draw(screen, subtitle, a.faces.bold, (w-textWidth(a.faces.bold, subtitle))/2, h/2+25, color.White)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), c)
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.layout.ScreenSize()
}

// Run opens the window and blocks until it is closed.
func Run(game *t2048.Game, opts Options) error {
	app, err := NewApp(game, opts)
	if err != nil {
		return err
	}

	w, h := app.layout.ScreenSize()
	ebiten.SetWindowTitle("2048")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
