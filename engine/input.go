package engine

import "github.com/lixenwraith/snake-chase/grid"

// Input is the per-frame input supplied by a driver
type Input uint8

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputQuit
	InputRestart
)

// Direction maps directional inputs to a grid direction, ok is false for every other input
func (in Input) Direction() (grid.Direction, bool) {
	switch in {
	case InputUp:
		return grid.Up, true
	case InputDown:
		return grid.Down, true
	case InputLeft:
		return grid.Left, true
	case InputRight:
		return grid.Right, true
	}
	return grid.None, false
}

func (in Input) String() string {
	switch in {
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputQuit:
		return "quit"
	case InputRestart:
		return "restart"
	}
	return "none"
}

// ParseInput maps an action name to an Input, unknown names map to InputNone
func ParseInput(action string) Input {
	switch action {
	case "up":
		return InputUp
	case "down":
		return InputDown
	case "left":
		return InputLeft
	case "right":
		return InputRight
	case "quit":
		return InputQuit
	case "restart":
		return InputRestart
	}
	return InputNone
}

// ResolveInput applies a directional input to the head
// A trail longer than one segment cannot reverse onto itself; a lone head may turn any way
// Non-directional input and input received after game over are ignored
func (e *Engine) ResolveInput(in Input) {
	d, ok := in.Direction()
	if !ok || e.state.Phase == PhaseGameOver {
		return
	}

	head := &e.state.Trail[0]
	if len(e.state.Trail) > 1 && d == head.Direction.Opposite() {
		return
	}
	head.Direction = d
}
