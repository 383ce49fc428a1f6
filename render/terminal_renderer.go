// Package render draws engine snapshots onto a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-chase/constants"
	"github.com/lixenwraith/snake-chase/engine"
)

// TerminalRenderer handles all terminal rendering
// Drawing is incremental: cells persist between frames until erased or cleared
type TerminalRenderer struct {
	screen tcell.Screen

	defaultStyle  tcell.Style
	headStyle     tcell.Style
	segmentStyle  tcell.Style
	targetStyle   tcell.Style
	scoreStyle    tcell.Style
	gameOverStyle tcell.Style
	hintStyle     tcell.Style
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	return &TerminalRenderer{
		screen:        screen,
		defaultStyle:  defaultStyle,
		headStyle:     defaultStyle.Foreground(RgbHead).Bold(true),
		segmentStyle:  defaultStyle.Foreground(RgbSegment),
		targetStyle:   defaultStyle.Foreground(RgbTarget).Bold(true),
		scoreStyle:    defaultStyle.Foreground(RgbScoreText),
		gameOverStyle: defaultStyle.Foreground(RgbGameOverText).Bold(true),
		hintStyle:     defaultStyle.Foreground(RgbHintText),
	}
}

// RenderFrame draws a snapshot and shows the screen
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	if snap.Clear {
		r.screen.SetStyle(r.defaultStyle)
		r.screen.Clear()
	}

	for _, c := range snap.Erase {
		r.setCell(c, r.defaultStyle)
	}

	r.setCell(snap.Target, r.targetStyle)

	// Tail first so the head wins when segments stack
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		style := r.segmentStyle
		if i == 0 {
			style = r.headStyle
		}
		r.setCell(snap.Segments[i], style)
	}

	r.printCentered(0, snap.ScoreText, r.scoreStyle)

	if snap.GameOver && len(snap.GameOverText) > 0 {
		row := constants.GameOverRow()
		r.printCentered(row, snap.GameOverText[0], r.gameOverStyle)
		for i, line := range snap.GameOverText[1:] {
			r.printCentered(row+2*(i+1), line, r.hintStyle)
		}
	}

	r.screen.Show()
}

func (r *TerminalRenderer) setCell(c engine.Cell, style tcell.Style) {
	r.screen.SetContent(int(c.Position.X), int(c.Position.Y), c.Glyph, nil, style)
}

// printCentered writes text centered on the game grid width
func (r *TerminalRenderer) printCentered(y int, text string, style tcell.Style) {
	x := (int(constants.GridWidth) - len(text)) / 2
	if x < 0 {
		x = 0
	}
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
