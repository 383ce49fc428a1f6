package constants

// Glyphs drawn by the rendering sink
const (
	GlyphSegment = '#'
	GlyphTarget  = '*'
	GlyphErase   = ' '
)

// UI Text
const (
	WindowTitle = "Rusty Snake"

	// ScoreFormat is rendered centered on row 0
	ScoreFormat = "SCORE: %d"

	GameOverText = "GAME OVER"
	GameOverHint = "QUIT: Q, START: SPACE"
)

// GameOverRow returns the row of the first game-over line; the hint sits two rows below
func GameOverRow() int {
	return int(GridHeight)/2 - 1
}
