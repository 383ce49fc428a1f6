package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/snake-chase/constants"
	"github.com/lixenwraith/snake-chase/grid"
)

// GamePhase represents the game state machine position
type GamePhase uint8

const (
	PhasePlaying GamePhase = iota
	PhaseGameOver
)

func (p GamePhase) String() string {
	if p == PhaseGameOver {
		return "game over"
	}
	return "playing"
}

// CanTransition checks if a phase transition is valid
// GameOver is left only through reset, never by a tick
func CanTransition(from, to GamePhase) bool {
	validTransitions := map[GamePhase][]GamePhase{
		PhasePlaying:  {PhaseGameOver},
		PhaseGameOver: {PhasePlaying},
	}
	return slices.Contains(validTransitions[from], to)
}

// Segment is one trail cell and the direction it moved in on its last update
type Segment struct {
	Position  grid.Position
	Direction grid.Direction
}

// State is the full mutable simulation state
// Trail is head-first and never empty
type State struct {
	Trail      []Segment
	Target     grid.Position
	Phase      GamePhase
	LastStepAt time.Time
}

// newState returns the creation defaults: a lone undirected head at the start cell
func newState(target grid.Position, now time.Time) State {
	return State{
		Trail: []Segment{{
			Position:  grid.Position{X: constants.StartX, Y: constants.StartY},
			Direction: grid.None,
		}},
		Target:     target,
		Phase:      PhasePlaying,
		LastStepAt: now,
	}
}

// GameOver reports whether the state is terminal
func (s State) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Head returns the player-controlled segment
func (s State) Head() Segment {
	return s.Trail[0]
}

// Tail returns the last segment
func (s State) Tail() Segment {
	return s.Trail[len(s.Trail)-1]
}

// clone returns a copy that shares no trail storage with s
func (s State) clone() State {
	s.Trail = slices.Clone(s.Trail)
	return s
}

// transition moves to phase to if allowed, returns false otherwise
func (s *State) transition(to GamePhase) bool {
	if !CanTransition(s.Phase, to) {
		return false
	}
	s.Phase = to
	return true
}
