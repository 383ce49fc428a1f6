package engine

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/lixenwraith/snake-chase/grid"
)

// NewTestEngine creates an engine on a mock clock with a seeded RNG
// This is a test helper shared by the engine, render and network tests
func NewTestEngine(start time.Time, seed uint64) (*Engine, *MockTimeProvider) {
	clock := NewMockTimeProvider(start)
	e := NewEngine(clock, rand.New(rand.NewPCG(seed, seed)))
	return e, clock
}

// SetTarget places the target, test scenario setup only
func (e *Engine) SetTarget(p grid.Position) {
	e.state.Target = p
}

// SetTrail replaces the trail, test scenario setup only
// An empty trail is ignored to keep the trail invariant
func (e *Engine) SetTrail(trail []Segment) {
	if len(trail) == 0 {
		return
	}
	e.state.Trail = slices.Clone(trail)
}
