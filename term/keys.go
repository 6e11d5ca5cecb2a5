package term

import (
	"sync"

	"snake-engine/game/types"

	"github.com/gdamore/tcell/v2"
)

var directions = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyRight: types.Right,
	tcell.KeyLeft:  types.Left,
}

var runeDirections = map[rune]types.Direction{
	'w': types.Up,
	'k': types.Up,
	's': types.Down,
	'j': types.Down,
	'd': types.Right,
	'l': types.Right,
	'a': types.Left,
	'h': types.Left,
}

// Direction maps a key press to a heading, None for anything else
func Direction(key tcell.Key, r rune) types.Direction {
	if key == tcell.KeyRune {
		return runeDirections[r]
	}
	return directions[key]
}

// IsQuit reports whether a key press should end the session
func IsQuit(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return r == 'q'
	}
	return false
}

// latch carries the most recent key press from the event goroutine to the
// simulation loop. Terminals report presses, not held keys, so a press stays
// latched until the loop samples it.
type latch struct {
	mu  sync.Mutex
	dir types.Direction
}

func (l *latch) Set(dir types.Direction) {
	if dir == types.None {
		return
	}
	l.mu.Lock()
	l.dir = dir
	l.mu.Unlock()
}

// Sample implements input.Source and clears the latch
func (l *latch) Sample() types.Direction {
	l.mu.Lock()
	defer l.mu.Unlock()
	dir := l.dir
	l.dir = types.None
	return dir
}
