package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// noticeDuration is how long a notice replaces the status line.
const noticeDuration = 2 * time.Second

// mode selects what the game screen is currently showing on top of the board.
type mode int

const (
	modePlay mode = iota
	modeConfirmNew
	modeConfirmReset
	modeAnnounce
	modeTarget
)

// Options configures the terminal frontend.
type Options struct {
	Width   int
	Height  int
	Refresh time.Duration // View refresh interval
	Flash   bool          // Blink merged tiles
	Logger  *log.Logger
}

// Model is the Bubble Tea model for playing 2048.
type Model struct {
	game     *t2048.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	flash    t2048.Flash
	opts     Options
	logger   *log.Logger
	mode     mode
	picker   targetPicker
	announce []string
	notice   string
	noticeAt time.Time
	quitting bool
	width    int
	height   int
	now      func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *t2048.Game, opts Options) Model {
	cfg := core.DefaultConfig()
	if opts.Width <= 0 {
		opts.Width = cfg.ScreenW
	}
	if opts.Height <= 0 {
		opts.Height = cfg.ScreenH
	}
	if opts.Refresh <= 0 {
		opts.Refresh = cfg.Refresh
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		opts:   opts,
		logger: logger,
		width:  opts.Width,
		height: opts.Height,
		now:    time.Now,
	}
	m.screen = core.NewScreen(m.width, m.screenHeight())
	return m
}

// Init starts the refresh loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Refresh)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.width, m.screenHeight())
		return m, nil

	case TickMsg:
		return m, tickCmd(m.opts.Refresh)

	case FlashMsg:
		if m.flash.Running(m.now()) {
			return m, flashCmd()
		}
		return m, nil
	}

	return m, nil
}

// handleKey dispatches a key according to the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeTarget:
		return m.handleTargetKey(msg)
	case modeConfirmNew, modeConfirmReset, modeAnnounce:
		return m.handleDialogKey(msg)
	}
	return m.handlePlayKey(msg)
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action.IsMove() {
		dir, _ := t2048.ActionDirection(action)
		return m.move(dir)
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUndo:
		if m.game.Undo() {
			m.flash.Stop()
		}
	case core.ActionNewGame:
		m.mode = modeConfirmNew
	case core.ActionResetBest:
		m.mode = modeConfirmReset
	case core.ActionSetTarget:
		m.picker = newTargetPicker(m.game.Target())
		m.mode = modeTarget
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.screenHeight())
	}

	return m, nil
}

// move applies a slide and starts the flash or end-of-game dialog.
func (m Model) move(dir t2048.Direction) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	before := m.game.State()
	if m.game.Move(dir) && m.opts.Flash && len(m.game.MergedCells()) > 0 {
		m.flash.Start(m.now())
		cmd = flashCmd()
	}

	if before.Terminal() {
		return m, cmd
	}
	switch m.game.State() {
	case t2048.StateWon:
		m.announce = []string{fmt.Sprintf("You reached %d!", m.game.Target())}
		m.mode = modeAnnounce
	case t2048.StateLost:
		m.announce = []string{"Game Over", "No more moves!"}
		m.mode = modeAnnounce
	}

	return m, cmd
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.DialogAction(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionConfirm:
		switch m.mode {
		case modeConfirmNew:
			m.game.Reset()
			m.flash.Stop()
			m.logger.Debug("new game started")
		case modeConfirmReset:
			m.game.ResetBest()
			m.showNotice("Best score reset")
			m.logger.Debug("best score reset")
		}
		m.mode = modePlay
	case core.ActionCancel:
		m.mode = modePlay
	}

	return m, nil
}

func (m Model) handleTargetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	var result pickerResult
	m.picker, result = m.picker.Update(msg, m.keys)

	switch result {
	case pickerChosen:
		if err := m.game.SetTarget(m.picker.chosen); err != nil {
			m.logger.Warn("target rejected", "target", m.picker.chosen, "error", err)
		} else {
			m.showNotice(fmt.Sprintf("Target set to %d", m.picker.chosen))
		}
		m.mode = modePlay
	case pickerCancelled:
		m.mode = modePlay
	}

	return m, nil
}

func (m *Model) showNotice(msg string) {
	m.notice = msg
	m.noticeAt = m.now()
}

// status returns the live notice, or "" once it has expired.
func (m Model) status() string {
	if m.notice == "" || m.now().Sub(m.noticeAt) >= noticeDuration {
		return ""
	}
	return m.notice
}

// overlay returns the dialog lines for the current mode.
func (m Model) overlay() []string {
	yesNo := fmt.Sprintf("%s yes   %s no", m.keys.Confirm.Help().Key, m.keys.Cancel.Help().Key)

	switch m.mode {
	case modeConfirmNew:
		return []string{"Start a new game?", "", yesNo}
	case modeConfirmReset:
		return []string{"Reset best score to 0?", "", yesNo}
	case modeAnnounce:
		return append(append([]string{}, m.announce...), "", "press enter")
	case modeTarget:
		return m.picker.Lines()
	}
	return nil
}

// helpHeight is the number of lines the help view takes.
func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

func (m Model) screenHeight() int {
	return max(m.height-m.helpHeight(), 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	t2048.Render(m.screen, m.game.Snapshot(), t2048.RenderOptions{
		Flash:   m.flash.On(m.now()),
		Overlay: m.overlay(),
		Status:  m.status(),
	})

	helpView := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.View(m.keys))
	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program for the given game.
func Run(game *t2048.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
