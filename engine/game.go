// Package engine implements the chase simulation: input resolution, movement, growth and collision
// The engine is single-owner and not safe for concurrent use; drivers call Step from one goroutine
package engine

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/snake-chase/constants"
	"github.com/lixenwraith/snake-chase/grid"
)

// Engine owns the simulation state and advances it at a fixed cadence
type Engine struct {
	clock TimeProvider
	rng   *rand.Rand

	state State
	tick  uint64

	// Scratch buffers reused across ticks
	vacated []grid.Position
	dirs    []grid.Direction

	clearPending bool
}

// NewEngine creates an engine in its initial state
// clock stamps creation and reset, rng samples target positions
func NewEngine(clock TimeProvider, rng *rand.Rand) *Engine {
	e := &Engine{
		clock: clock,
		rng:   rng,
	}
	e.Reset()
	return e
}

// Reset reinitializes the state to the creation defaults and requests a screen clear
// Safe to call in any phase
func (e *Engine) Reset() {
	e.state = newState(grid.Random(e.rng), e.clock.Now())
	e.tick = 0
	e.vacated = e.vacated[:0]
	e.clearPending = true
	log.Printf("engine reset: head %v, target %v", e.state.Head().Position, e.state.Target)
}

// IsGameOver reports whether the head has collided with the trail
func (e *Engine) IsGameOver() bool {
	return e.state.GameOver()
}

// Score is the trail length
func (e *Engine) Score() int {
	return len(e.state.Trail)
}

// State returns a copy of the current simulation state
func (e *Engine) State() State {
	return e.state.clone()
}

// Step runs one driver frame
// Quit is signalled in any phase. After game over only restart is honored.
// Directional input is resolved on every call; movement runs only once
// GameUpdateInterval has elapsed since the previous movement tick
func (e *Engine) Step(in Input, now time.Time) Snapshot {
	if in == InputQuit {
		snap := e.snapshot(false)
		snap.Quit = true
		return snap
	}

	if e.state.GameOver() {
		if in == InputRestart {
			e.Reset()
		}
		return e.snapshot(false)
	}

	e.ResolveInput(in)

	if now.Sub(e.state.LastStepAt) < constants.GameUpdateInterval {
		return e.snapshot(false)
	}

	e.advance(now)
	return e.snapshot(true)
}

// advance performs one movement tick: move, collide, consume, propagate
func (e *Engine) advance(now time.Time) {
	trail := e.state.Trail
	e.state.LastStepAt = now
	e.tick++

	e.vacated = e.vacated[:0]
	for i := range trail {
		e.vacated = append(e.vacated, trail[i].Position)
		trail[i].Position = trail[i].Position.Move(trail[i].Direction)
	}

	// A lone head has no body to hit
	head := trail[0].Position
	for _, seg := range trail[1:] {
		if seg.Position == head {
			e.state.transition(PhaseGameOver)
			log.Printf("game over: head %v hit trail, score %d, tick %d", head, len(trail), e.tick)
			return
		}
	}

	if head == e.state.Target {
		e.state.Target = grid.Random(e.rng)
		tail := trail[len(trail)-1]
		e.state.Trail = append(e.state.Trail, Segment{
			Position:  tail.Position.Behind(tail.Direction),
			Direction: tail.Direction,
		})
		log.Printf("target consumed at %v: length %d, next target %v", head, len(e.state.Trail), e.state.Target)
	}

	e.propagate()
}

// propagate shifts directions one segment tail-ward
// Old directions are buffered first so each segment takes its leader's pre-shift direction
func (e *Engine) propagate() {
	trail := e.state.Trail
	if len(trail) < 2 {
		return
	}

	e.dirs = e.dirs[:0]
	for _, seg := range trail {
		e.dirs = append(e.dirs, seg.Direction)
	}
	for i := 1; i < len(trail); i++ {
		trail[i].Direction = e.dirs[i-1]
	}
}
