package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the driver frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the minimum interval between movement ticks (cadence gate)
	GameUpdateInterval = 50 * time.Millisecond
)

// Grid Dimensions (terminal cells)
const (
	GridWidth  uint8 = 80
	GridHeight uint8 = 50
)

// Trail start position on creation and reset
const (
	StartX uint8 = 30
	StartY uint8 = 25
)
