package app

import (
	"flag"
	"fmt"
	"strings"

	"bat-pong/internal/game"
)

// Config represents the command-line parameters shared by both frontends.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Bounce string
	Sound  bool
	Volume float64
	Debug  bool
	MinFPS float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := game.DefaultConfig()
	return &Config{
		Width:  int(def.Width),
		Height: int(def.Height),
		Scale:  1,
		TPS:    60,
		Bounce: def.Bounce,
		Sound:  true,
		Volume: 0.5,
		MinFPS: 10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "playfield width in logical units")
	fs.IntVar(&c.Height, "h", c.Height, "playfield height in logical units")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame loop ticks per second")
	fs.StringVar(&c.Bounce, "bounce", c.Bounce, "paddle bounce model ("+strings.Join(game.BounceNames(), ", ")+")")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound cues")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "sound cue volume in [0,1]")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show the fps/ball debug panel")
	fs.Float64Var(&c.MinFPS, "min-fps", c.MinFPS, "floor for the measured frame rate after stalls")
}

// Validate reports flag combinations the frontends cannot run with.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be within [0,1], got %g", c.Volume)
	}
	return c.GameConfig().Validate()
}

// GameConfig converts the flags into a simulation configuration.
func (c *Config) GameConfig() game.Config {
	return game.Config{Width: float64(c.Width), Height: float64(c.Height), Bounce: c.Bounce}
}
