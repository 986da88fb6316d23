package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// pickerWindow is how many presets are visible at once.
const pickerWindow = 5

// pickerResult tells the game screen what the picker decided.
type pickerResult int

const (
	pickerOpen pickerResult = iota
	pickerChosen
	pickerCancelled
)

// targetPicker lets the player choose a preset target or type a custom one.
// The last row opens the custom input.
type targetPicker struct {
	cursor   int
	current  int
	custom   bool
	input    textinput.Model
	chosen   int
	inputErr string
}

func newTargetPicker(current int) targetPicker {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(current)
	ti.CharLimit = 5
	ti.Prompt = ""
	ti.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("digits only")
			}
		}
		return nil
	}

	cursor := t2048.PresetIndex(current)
	if cursor < 0 {
		cursor = len(t2048.TargetPresets)
	}

	return targetPicker{
		cursor:  cursor,
		current: current,
		input:   ti,
	}
}

// rows is the number of selectable rows: presets plus the custom entry.
func (p targetPicker) rows() int {
	return len(t2048.TargetPresets) + 1
}

// Update handles a key and reports whether the picker is done.
func (p targetPicker) Update(msg tea.KeyMsg, keys KeyMap) (targetPicker, pickerResult) {
	if p.custom {
		return p.updateCustom(msg)
	}

	switch {
	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor < p.rows()-1 {
			p.cursor++
		}
	case msg.Type == tea.KeyEnter:
		if p.cursor == len(t2048.TargetPresets) {
			p.custom = true
			p.inputErr = ""
			p.input.Reset()
			p.input.Focus()
			return p, pickerOpen
		}
		p.chosen = t2048.TargetPresets[p.cursor].Target
		return p, pickerChosen
	case msg.Type == tea.KeyEsc, key.Matches(msg, keys.Quit):
		return p, pickerCancelled
	}
	return p, pickerOpen
}

func (p targetPicker) updateCustom(msg tea.KeyMsg) (targetPicker, pickerResult) {
	switch msg.Type {
	case tea.KeyEsc:
		p.custom = false
		p.input.Blur()
		return p, pickerOpen
	case tea.KeyEnter:
		v, err := strconv.Atoi(strings.TrimSpace(p.input.Value()))
		if err != nil {
			p.inputErr = "Enter a number"
			return p, pickerOpen
		}
		if err := t2048.ValidateTarget(v); err != nil {
			p.inputErr = fmt.Sprintf("Power of two, %d to %d", t2048.MinTarget, t2048.MaxTarget)
			return p, pickerOpen
		}
		p.chosen = v
		return p, pickerChosen
	}

	p.input, _ = p.input.Update(msg)
	p.inputErr = ""
	return p, pickerOpen
}

// Lines renders the picker as dialog lines.
func (p targetPicker) Lines() []string {
	if p.custom {
		status := fmt.Sprintf("Power of two, %d to %d", t2048.MinTarget, t2048.MaxTarget)
		if p.inputErr != "" {
			status = p.inputErr
		}
		return []string{
			"Custom target",
			"",
			"> " + p.input.Value() + "_",
			status,
			"",
			"enter ok   esc back",
		}
	}

	lines := []string{fmt.Sprintf("Target (now %d)", p.current), ""}

	start := core.Clamp(p.cursor-pickerWindow/2, 0, p.rows()-pickerWindow)
	for i := start; i < start+pickerWindow; i++ {
		label := "Custom..."
		if i < len(t2048.TargetPresets) {
			preset := t2048.TargetPresets[i]
			label = fmt.Sprintf("%-5d %s", preset.Target, preset.Name)
		}
		cursor := "  "
		if i == p.cursor {
			cursor = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-24s", cursor, label))
	}

	return append(lines, "", "enter pick   esc cancel")
}
