//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"bat-pong/internal/app"
	"bat-pong/internal/audio"
	"bat-pong/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sim, err := game.New(cfg.GameConfig())
	if err != nil {
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

	g := app.New(sim, cfg, player)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowTitle("bat-pong")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
