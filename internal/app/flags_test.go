package app

import (
	"errors"
	"flag"
	"io"
	"testing"

	"bat-pong/internal/game"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	if err := fs.Parse([]string{"-w", "320", "-h", "200", "-bounce", "classic", "-debug", "-sound=false"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	gc := cfg.GameConfig()
	if gc.Width != 320 || gc.Height != 200 || gc.Bounce != "classic" {
		t.Fatalf("GameConfig = %+v", gc)
	}
	if !cfg.Debug || cfg.Sound {
		t.Fatalf("debug=%v sound=%v", cfg.Debug, cfg.Sound)
	}
}

func TestConfigDefaultsValid(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Bounce = "spin"
	if err := cfg.Validate(); !errors.Is(err, game.ErrUnknownBounce) {
		t.Fatalf("unknown bounce err = %v", err)
	}

	cfg = NewConfig()
	cfg.Volume = 2
	if err := cfg.Validate(); err == nil {
		t.Fatal("volume above 1 should be rejected")
	}

	cfg = NewConfig()
	cfg.Scale = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero scale should be rejected")
	}
}

func TestMovementAt(t *testing.T) {
	if got := MovementAt(500, 800); got != game.Right {
		t.Fatalf("right half = %v", got)
	}
	if got := MovementAt(400, 800); got != game.Left {
		t.Fatalf("midline = %v, want left", got)
	}
	if got := MovementAt(10, 800); got != game.Left {
		t.Fatalf("left half = %v", got)
	}
}

func TestKeyMovement(t *testing.T) {
	cases := []struct {
		left, right bool
		want        game.Movement
	}{
		{false, false, game.Stopped},
		{true, false, game.Left},
		{false, true, game.Right},
		{true, true, game.Stopped},
	}
	for _, tc := range cases {
		if got := KeyMovement(tc.left, tc.right); got != tc.want {
			t.Fatalf("KeyMovement(%v,%v) = %v, want %v", tc.left, tc.right, got, tc.want)
		}
	}
}
