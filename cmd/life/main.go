//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"life-gl/internal/app"
	"life-gl/internal/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	if err := app.CheckEnvironment(); err != nil {
		log.Printf("cannot start: %v", err)
		os.Exit(2)
	}

	sim := life.NewWithConfig(cfg.LifeConfig())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle("life-gl — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
