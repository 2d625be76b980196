// Package sweep runs the simulation headless at several frame rates and
// bounce models to compare how far their outcomes drift apart.
package sweep

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bat-pong/internal/game"
)

// Scenario is one headless run: a frame rate, a bounce model and how much
// simulated time to cover.
type Scenario struct {
	FPS      float64
	Bounce   string
	Duration time.Duration
}

func (s Scenario) String() string {
	return fmt.Sprintf("bounce=%s fps=%g duration=%s", s.Bounce, s.FPS, s.Duration)
}

// Result summarises a finished scenario.
type Result struct {
	Scenario Scenario

	Frames     int
	Hits       int
	Misses     int
	WallHits   int
	RoundsLost int

	PaddleX   float64
	BallX     float64
	BallY     float64
	BallSpeed float64
}

// Track is an autopilot: it steers the paddle under the ball's centre, idling
// while the ball is within a quarter paddle of the middle.
func Track(sim *game.Simulation) game.Movement {
	paddle := sim.PaddleRect()
	ball := sim.BallRect()
	dead := paddle.Width() / 4
	switch d := ball.CenterX() - paddle.CenterX(); {
	case d < -dead:
		return game.Left
	case d > dead:
		return game.Right
	default:
		return game.Stopped
	}
}

// Run plays a scenario with the autopilot. The session is restarted whenever
// a round is lost so the full duration is always simulated.
func Run(base game.Config, sc Scenario) (Result, error) {
	if sc.FPS <= 0 {
		return Result{}, fmt.Errorf("scenario %s: fps must be positive", sc)
	}
	cfg := base
	cfg.Bounce = sc.Bounce
	sim, err := game.New(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", sc, err)
	}

	res := Result{Scenario: sc}
	frames := int(sc.Duration.Seconds()*sc.FPS + 0.5)
	for i := 0; i < frames; i++ {
		if sim.State() == game.Paused {
			sim.Input(game.Right)
		}
		for _, ev := range sim.Step(sc.FPS, Track(sim)) {
			switch ev.Kind {
			case game.PaddleHit:
				res.Hits++
			case game.Miss:
				res.Misses++
			case game.WallBounce:
				res.WallHits++
			case game.RoundLost:
				res.RoundsLost++
			}
		}
		res.Frames++
	}

	res.PaddleX = sim.PaddleRect().Left
	res.BallX = sim.BallRect().Left
	res.BallY = sim.BallRect().Top
	res.BallSpeed = sim.BallSpeed()
	return res, nil
}

// RunAll runs scenarios on a pool of workers and returns the results sorted by
// bounce model and then frame rate. The first scenario error cancels the rest.
func RunAll(ctx context.Context, base game.Config, scenarios []Scenario, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan Scenario)
	results := make(chan Result)
	errs := make(chan error, 1)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res, err := Run(base, sc)
				if err != nil {
					select {
					case errs <- err:
					default:
					}
					cancel()
					continue
				}
				select {
				case results <- res:
				case <-ctx.Done():
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, sc := range scenarios {
			select {
			case jobs <- sc:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, len(scenarios))
	for res := range results {
		all = append(all, res)
	}

	select {
	case err := <-errs:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil && len(all) < len(scenarios) {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Scenario.Bounce != all[j].Scenario.Bounce {
			return all[i].Scenario.Bounce < all[j].Scenario.Bounce
		}
		return all[i].Scenario.FPS < all[j].Scenario.FPS
	})
	return all, nil
}
