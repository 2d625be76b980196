package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"bat-pong/internal/game"
	"bat-pong/internal/sweep"
)

func main() {
	duration := flag.Duration("duration", 30*time.Second, "simulated time per scenario")
	fpsList := flag.String("fps", "30,60,120,240", "comma-separated frame rates to compare")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Float64("w", game.DefaultConfig().Width, "playfield width")
	height := flag.Float64("h", game.DefaultConfig().Height, "playfield height")
	flag.Parse()

	rates, err := parseRates(*fpsList)
	if err != nil {
		log.Fatalf("invalid -fps: %v", err)
	}

	base := game.DefaultConfig()
	base.Width = *width
	base.Height = *height

	var scenarios []sweep.Scenario
	for _, bounce := range game.BounceNames() {
		for _, fps := range rates {
			scenarios = append(scenarios, sweep.Scenario{FPS: fps, Bounce: bounce, Duration: *duration})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %s each)\n", len(scenarios), *workers, *duration)
	start := time.Now()
	results, err := sweep.RunAll(context.Background(), base, scenarios, *workers)
	if err != nil {
		log.Fatal(err)
	}

	for _, res := range results {
		fmt.Printf("%-8s fps=%-6g frames=%-6d hits=%-4d misses=%-3d walls=%-4d lost=%-2d paddle=%.1f ball=(%.1f,%.1f) speed=%.1f\n",
			res.Scenario.Bounce, res.Scenario.FPS, res.Frames, res.Hits, res.Misses, res.WallHits, res.RoundsLost,
			res.PaddleX, res.BallX, res.BallY, res.BallSpeed)
	}
	fmt.Printf("\nElapsed %s\n", time.Since(start).Round(time.Millisecond))
}

func parseRates(s string) ([]float64, error) {
	var rates []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		if v <= 0 {
			return nil, fmt.Errorf("frame rate %g must be positive", v)
		}
		rates = append(rates, v)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no frame rates given")
	}
	return rates, nil
}
