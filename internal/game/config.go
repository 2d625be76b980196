package game

import (
	"errors"
	"fmt"
)

const (
	// StartingLives is the number of misses a player may make per round.
	StartingLives = 3
	// SpeedUpFactor scales the ball's speed after every paddle hit.
	SpeedUpFactor = 1.1
	// DefaultBounce names the bounce model used when none is configured.
	DefaultBounce = "angled"
)

// ErrInvalidPlayfield is returned for non-positive playfield dimensions.
var ErrInvalidPlayfield = errors.New("playfield dimensions must be positive")

// Config controls the simulation dimensions and paddle bounce model.
type Config struct {
	Width  float64
	Height float64
	Bounce string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 640, Height: 480, Bounce: DefaultBounce}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidPlayfield, c.Width, c.Height)
	}
	if _, err := LookupBounce(c.Bounce); err != nil {
		return err
	}
	return nil
}

// Playfield is the fixed rectangle the ball lives in. Its boundary lines are
// x=0, x=W, y=0 and y=H.
type Playfield struct {
	W, H float64
}
