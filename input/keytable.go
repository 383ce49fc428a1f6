// Package input maps terminal key events onto engine inputs
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-chase/engine"
)

// KeyTable maps keys to engine inputs
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]engine.Input

	// Printable rune bindings
	Runes map[rune]engine.Input
}

// DefaultKeyTable returns the default key bindings
// Arrows, vi keys and WASD steer; q, Esc or Ctrl+C quit; space restarts after game over
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Input{
			tcell.KeyUp:     engine.InputUp,
			tcell.KeyDown:   engine.InputDown,
			tcell.KeyLeft:   engine.InputLeft,
			tcell.KeyRight:  engine.InputRight,
			tcell.KeyCtrlC:  engine.InputQuit,
			tcell.KeyCtrlQ:  engine.InputQuit,
			tcell.KeyEscape: engine.InputQuit,
		},
		Runes: map[rune]engine.Input{
			'k': engine.InputUp,
			'j': engine.InputDown,
			'h': engine.InputLeft,
			'l': engine.InputRight,
			'w': engine.InputUp,
			's': engine.InputDown,
			'a': engine.InputLeft,
			'd': engine.InputRight,
			'q': engine.InputQuit,
			'Q': engine.InputQuit,
			' ': engine.InputRestart,
		},
	}
}

// Resolve maps a key and rune to an input, unbound keys map to InputNone
func (kt *KeyTable) Resolve(key tcell.Key, r rune) engine.Input {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}

// Lookup maps a tcell key event to an input
func (kt *KeyTable) Lookup(ev *tcell.EventKey) engine.Input {
	return kt.Resolve(ev.Key(), ev.Rune())
}
