package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-chase/constants"
	"github.com/lixenwraith/snake-chase/core"
	"github.com/lixenwraith/snake-chase/engine"
	"github.com/lixenwraith/snake-chase/input"
	"github.com/lixenwraith/snake-chase/render"
)

var (
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/snake-chase.log")
	seedFlag  = flag.Uint64("seed", 0, "Target placement seed, 0 derives one from the clock")
)

func main() {
	flag.Parse()

	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(*seedFlag); err != nil {
		fmt.Fprintf(os.Stderr, "snake-chase: %v\n", err)
		os.Exit(1)
	}
}

func run(seed uint64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.SetTitle(constants.WindowTitle)
	screen.HideCursor()
	if w, h := screen.Size(); w < int(constants.GridWidth) || h < int(constants.GridHeight) {
		log.Printf("terminal %dx%d is smaller than the %dx%d grid, output will be clipped",
			w, h, constants.GridWidth, constants.GridHeight)
	}

	clock := engine.NewMonotonicTimeProvider()
	eng := engine.NewEngine(clock, newRand(seed))

	return loop(screen, eng, clock, render.NewTerminalRenderer(screen), input.DefaultKeyTable())
}

// loop is the frame driver: the latest key each frame is fed to Step and the snapshot drawn
func loop(screen tcell.Screen, eng *engine.Engine, clock engine.TimeProvider, renderer *render.TerminalRenderer, keys *input.KeyTable) error {
	eventChan := make(chan tcell.Event, 256)
	// Input polling uses its own goroutine as PollEvent blocks
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Screen finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	pending := engine.InputNone
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				// Latest key wins within a frame, except that quit is never overwritten
				if in := keys.Lookup(ev); in != engine.InputNone && pending != engine.InputQuit {
					pending = in
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			snap := eng.Step(pending, clock.Now())
			pending = engine.InputNone

			renderer.RenderFrame(snap)

			if snap.Quit {
				log.Printf("quit at score %d", snap.Score)
				return nil
			}
		}
	}
}

// newRand seeds target placement, logging the seed so a game can be replayed
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed %d", seed)
	return rand.New(rand.NewPCG(seed, seed))
}
