//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandsim/internal/app"
	"sandsim/internal/audio"
	"sandsim/internal/core"
	"sandsim/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatalf("build sim: %v", err)
	}
	world, ok := sim.(*sand.World)
	if !ok {
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

	game := app.New(world, cfg.Seed, cfg.HUDWidth, cue)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("sandsim: " + world.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
