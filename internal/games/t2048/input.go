package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

var actionDirections = map[core.Action]Direction{
	core.ActionUp:    DirUp,
	core.ActionDown:  DirDown,
	core.ActionLeft:  DirLeft,
	core.ActionRight: DirRight,
}

// ActionDirection maps a movement action to its slide direction.
func ActionDirection(a core.Action) (Direction, bool) {
	d, ok := actionDirections[a]
	return d, ok
}
