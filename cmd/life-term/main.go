package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"life-gl/internal/app"
	"life-gl/internal/loop"
	"life-gl/internal/sims/life"
	"life-gl/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Size = 40
	cfg.TPS = 20
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	screen, err := term.Open()
	if err != nil {
		log.Printf("cannot start: %v", err)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go screen.Watch(ctx, cancel)

	sim := life.NewWithConfig(cfg.LifeConfig())
	sim.Reset(cfg.Seed)

	l := loop.New(screen, screen)
	l.Start(sim)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	err = l.Run(ctx, ticker.C)
	screen.Close()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	log.Printf("%d generations in %.1fs (%.1f fps)", sim.Generation(), l.Elapsed().Seconds(), l.FPS())
}
