package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/snake-chase/core"
	"github.com/lixenwraith/snake-chase/engine"
	"github.com/lixenwraith/snake-chase/network"
)

var (
	addrFlag  = flag.String("addr", ":8080", "HTTP listen address")
	debugFlag = flag.Bool("debug", false, "Write the log to logs/snake-chase.log instead of stderr")
	seedFlag  = flag.Uint64("seed", 0, "Target placement seed, 0 derives one from the clock; sessions derive their stream from it")
)

func main() {
	flag.Parse()

	if *debugFlag {
		if logFile := core.SetupLogging(true); logFile != nil {
			defer logFile.Close()
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cfg := network.DefaultConfig()
	cfg.Address = *addrFlag

	clock := engine.NewMonotonicTimeProvider()
	srv := network.NewServer(cfg, clock, func(id uint64) *engine.Engine {
		return engine.NewEngine(clock, rand.New(rand.NewPCG(seed, id)))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "snake-web: %v\n", err)
		os.Exit(1)
	}
}
