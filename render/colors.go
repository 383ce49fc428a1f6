package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbHead    = tcell.NewRGBColor(255, 165, 0) // Orange, matches the cursor of the typing game
	RgbSegment = tcell.NewRGBColor(0, 200, 0)   // Normal Green
	RgbTarget  = tcell.NewRGBColor(255, 255, 0) // Bright Yellow

	RgbScoreText    = tcell.NewRGBColor(255, 255, 255) // White
	RgbGameOverText = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbHintText     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)
