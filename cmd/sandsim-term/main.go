package main

import (
	"flag"
	"log"
	"strconv"

	"sandsim/internal/app"
	"sandsim/internal/audio"
	"sandsim/internal/core"
	"sandsim/internal/sand"
	"sandsim/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Tile = 1
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	cols, rows := screen.Size()
	tile := cfg.Tile
	if tile <= 0 {
		tile = 1
	}
	winW, winH := term.WindowSize(cols, rows, tile)
	simCfg := cfg.SimConfig()
	simCfg["tile"] = strconv.Itoa(tile)
	simCfg["window_w"] = strconv.Itoa(winW)
	simCfg["window_h"] = strconv.Itoa(winH)

	sim, err := core.New(cfg.Sim, simCfg)
	if err != nil {
		screen.Fini()
		log.Fatalf("build sim: %v", err)
	}
	world, ok := sim.(*sand.World)
	if !ok {
		screen.Fini()
		log.Fatalf("sim %q is not a sandbox", cfg.Sim)
	}
	world.Reset(cfg.Seed)

	var cue sand.Cue
	if cfg.Sound {
		if c, err := audio.NewCue(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer c.Close()
			cue = c
		}
	}

	runErr := term.New(screen, world, cue, cfg.Seed).Run()
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
