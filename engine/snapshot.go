package engine

import (
	"fmt"

	"github.com/lixenwraith/snake-chase/constants"
	"github.com/lixenwraith/snake-chase/grid"
)

// Cell is a single glyph at a grid position
type Cell struct {
	Position grid.Position
	Glyph    rune
}

// Snapshot is the renderable view of the engine after a Step
type Snapshot struct {
	// Segments are head-first, Erase holds the cells vacated by this call's movement
	Segments []Cell
	Erase    []Cell
	Target   Cell

	Score     int
	ScoreText string

	GameOver     bool
	GameOverText []string

	// Clear requests a full screen clear, set once after construction or reset
	Clear bool
	// Quit signals the driver to terminate
	Quit bool
	// Moved reports whether the cadence gate opened and the trail advanced
	Moved bool
	// Tick counts movement ticks since the last reset
	Tick uint64
}

// snapshot builds the renderable view and consumes the pending clear request
func (e *Engine) snapshot(moved bool) Snapshot {
	snap := Snapshot{
		Segments:  make([]Cell, len(e.state.Trail)),
		Target:    Cell{Position: e.state.Target, Glyph: constants.GlyphTarget},
		Score:     len(e.state.Trail),
		ScoreText: fmt.Sprintf(constants.ScoreFormat, len(e.state.Trail)),
		GameOver:  e.state.GameOver(),
		Clear:     e.clearPending,
		Moved:     moved,
		Tick:      e.tick,
	}
	e.clearPending = false

	for i, seg := range e.state.Trail {
		snap.Segments[i] = Cell{Position: seg.Position, Glyph: constants.GlyphSegment}
	}

	if moved && len(e.vacated) > 0 {
		snap.Erase = make([]Cell, len(e.vacated))
		for i, p := range e.vacated {
			snap.Erase[i] = Cell{Position: p, Glyph: constants.GlyphErase}
		}
	}

	if snap.GameOver {
		snap.GameOverText = []string{constants.GameOverText, constants.GameOverHint}
	}

	return snap
}
