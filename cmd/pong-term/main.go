package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"bat-pong/internal/app"
	"bat-pong/internal/audio"
	"bat-pong/internal/game"
	"bat-pong/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write log output to this file instead of discarding it")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// The screen owns stdout/stderr while running.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	sim, err := game.New(cfg.GameConfig())
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("create simulation: %v", err)
	}

	var player *audio.Player
	if cfg.Sound {
		player, err = audio.NewPlayer(cfg.Volume)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		}
		defer player.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fe := term.New(screen, sim, term.Options{TPS: cfg.TPS, MinFPS: cfg.MinFPS, Debug: cfg.Debug}, player)
	err = fe.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	log.Printf("session ended: score %d lives %d", sim.Score(), sim.Lives())
}
