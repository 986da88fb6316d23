package view

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// NoticeDuration is how long transient messages replace the status line.
const NoticeDuration = 2 * time.Second

// Dialog is the modal shown over the board.
type Dialog int

const (
	DialogNone Dialog = iota
	DialogConfirmNew
	DialogConfirmReset
	DialogAnnounce
)

// Controller turns actions from keys or clicks into game calls and keeps the
// window's modal state.
type Controller struct {
	game   *t2048.Game
	logger *log.Logger

	flash        t2048.Flash
	flashEnabled bool

	dialog   Dialog
	announce [2]string
	notice   string
	noticeAt time.Time
	quit     bool
}

// NewController wraps game. A nil logger discards output.
func NewController(game *t2048.Game, flash bool, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{game: game, flashEnabled: flash, logger: logger}
}

// Game returns the wrapped controller.
func (c *Controller) Game() *t2048.Game { return c.game }

// Dialog returns the open modal.
func (c *Controller) Dialog() Dialog { return c.dialog }

// Quit reports whether the player asked to close the window.
func (c *Controller) Quit() bool { return c.quit }

// Announce returns the title and subtitle of the win or loss dialog.
func (c *Controller) Announce() (string, string) {
	return c.announce[0], c.announce[1]
}

// FlashOn reports whether merged tiles are highlighted at now.
func (c *Controller) FlashOn(now time.Time) bool {
	return c.flashEnabled && c.flash.On(now)
}

// Notice returns the live transient message, or "" once it has expired.
func (c *Controller) Notice(now time.Time) string {
	if c.notice == "" || now.Sub(c.noticeAt) >= NoticeDuration {
		return ""
	}
	return c.notice
}

// Handle applies one action. While a dialog is open only confirm and cancel
// are honoured.
func (c *Controller) Handle(action core.Action, now time.Time) {
	if action == core.ActionNone {
		return
	}
	if c.dialog != DialogNone {
		c.handleDialog(action, now)
		return
	}

	if action.IsMove() {
		dir, _ := t2048.ActionDirection(action)
		c.move(dir, now)
		return
	}

	switch action {
	case core.ActionQuit:
		c.quit = true
	case core.ActionUndo:
		if c.game.Undo() {
			c.flash.Stop()
		}
	case core.ActionNewGame:
		c.dialog = DialogConfirmNew
	case core.ActionResetBest:
		c.dialog = DialogConfirmReset
	case core.ActionSetTarget:
		next := t2048.NextPreset(c.game.Target())
		if err := c.game.SetTarget(next.Target); err != nil {
			c.logger.Warn("target rejected", "target", next.Target, "error", err)
			return
		}
		c.showNotice(fmt.Sprintf("Target set to %d (%s)", next.Target, next.Name), now)
	}
}

func (c *Controller) move(dir t2048.Direction, now time.Time) {
	before := c.game.State()
	if c.game.Move(dir) && c.flashEnabled && len(c.game.MergedCells()) > 0 {
		c.flash.Start(now)
	}
	if before.Terminal() {
		return
	}

	switch c.game.State() {
	case t2048.StateWon:
		c.announce = [2]string{fmt.Sprintf("You reached %d!", c.game.Target()), "Enter or OK to continue"}
		c.dialog = DialogAnnounce
	case t2048.StateLost:
		c.announce = [2]string{"Game Over", "No more moves!"}
		c.dialog = DialogAnnounce
	}
}

func (c *Controller) handleDialog(action core.Action, now time.Time) {
	switch action {
	case core.ActionConfirm:
		switch c.dialog {
		case DialogConfirmNew:
			c.game.Reset()
			c.flash.Stop()
			c.logger.Debug("new game started")
		case DialogConfirmReset:
			c.game.ResetBest()
			c.showNotice("Best score reset", now)
		}
		c.dialog = DialogNone
	case core.ActionCancel:
		c.dialog = DialogNone
	}
}

func (c *Controller) showNotice(msg string, now time.Time) {
	c.notice = msg
	c.noticeAt = now
}
