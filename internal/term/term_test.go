package term

import (
	"testing"
	"time"

	"bat-pong/internal/game"

	"github.com/gdamore/tcell/v2"
)

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	sim, err := game.New(game.DefaultConfig())
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return New(screen, sim, Options{TPS: 60}, nil), screen
}

func cell(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestCellSpan(t *testing.T) {
	cases := []struct {
		name        string
		lo, hi      float64
		scale       float64
		limit       int
		first, last int
		ok          bool
	}{
		{"exact", 320, 400, 0.125, 80, 40, 49, true},
		{"sub-cell", 320, 326.4, 0.125, 80, 40, 40, true},
		{"clipped", -16, 16, 0.125, 80, 0, 1, true},
		{"past end", 700, 720, 0.125, 80, 0, 0, false},
		{"empty", 10, 10, 1, 80, 0, 0, false},
	}
	for _, tc := range cases {
		first, last, ok := CellSpan(tc.lo, tc.hi, tc.scale, tc.limit)
		if ok != tc.ok || (ok && (first != tc.first || last != tc.last)) {
			t.Fatalf("%s: CellSpan = %d,%d,%v want %d,%d,%v", tc.name, first, last, ok, tc.first, tc.last, tc.ok)
		}
	}
}

func TestDrawPlacesEntitiesAndStatus(t *testing.T) {
	f, screen := newTestFrontend(t)
	f.Draw()

	for x := 40; x <= 49; x++ {
		if got := cell(screen, x, 24); got != '█' {
			t.Fatalf("paddle cell (%d,24) = %q", x, got)
		}
	}
	if got := cell(screen, 39, 24); got == '█' {
		t.Fatal("paddle drawn left of its rectangle")
	}
	if got := cell(screen, 40, 1); got != '█' {
		t.Fatalf("ball cell (40,1) = %q", got)
	}

	want := "Score: 0 Lives: 3"
	for i, r := range want {
		if got := cell(screen, i, 0); got != r {
			t.Fatalf("status cell %d = %q, want %q", i, got, r)
		}
	}
}

func TestKeysDriveSession(t *testing.T) {
	f, _ := newTestFrontend(t)
	now := time.Unix(1000, 0)

	if f.sim.State() != game.Paused {
		t.Fatal("session should start paused")
	}
	if !f.handleKey(tcell.KeyRight, 0, now) {
		t.Fatal("arrow key should not quit")
	}
	if f.sim.State() != game.Running {
		t.Fatal("arrow press should start the session")
	}
	if got := f.Intent(now.Add(keyHold / 2)); got != game.Right {
		t.Fatalf("intent while held = %v, want right", got)
	}
	if got := f.Intent(now.Add(2 * keyHold)); got != game.Stopped {
		t.Fatalf("intent after hold expired = %v, want stopped", got)
	}

	f.handleKey(tcell.KeyRune, 'h', now)
	if got := f.Intent(now); got != game.Left {
		t.Fatalf("intent after h = %v, want left", got)
	}
	f.handleKey(tcell.KeyRune, 'l', now)
	if got := f.Intent(now); got != game.Right {
		t.Fatalf("intent after l = %v, want right", got)
	}
	f.handleKey(tcell.KeyRune, ' ', now)
	if got := f.Intent(now); got != game.Stopped {
		t.Fatalf("intent after space = %v, want stopped", got)
	}

	f.handleKey(tcell.KeyRune, 'r', now)
	if f.sim.State() != game.Paused {
		t.Fatal("r should start a new paused game")
	}

	if f.handleKey(tcell.KeyRune, 'q', now) {
		t.Fatal("q should quit")
	}
	if f.handleKey(tcell.KeyEscape, 0, now) {
		t.Fatal("escape should quit")
	}
}

func TestFrameMovesPaddle(t *testing.T) {
	f, _ := newTestFrontend(t)
	start := time.Unix(1000, 0)
	f.handleKey(tcell.KeyLeft, 0, start)

	before := f.sim.PaddleRect().Left
	f.Frame(start)
	f.Frame(start.Add(time.Second / 60))
	after := f.sim.PaddleRect().Left
	if after >= before {
		t.Fatalf("paddle left edge %f -> %f, want it to move left", before, after)
	}
}

func TestDebugToggle(t *testing.T) {
	f, screen := newTestFrontend(t)
	f.handleKey(tcell.KeyRune, 'd', time.Unix(0, 0))
	f.Draw()

	want := "Ball Speed:"
	for i, r := range want {
		if got := cell(screen, i, 1); got != r {
			t.Fatalf("debug cell %d = %q, want %q", i, got, r)
		}
	}
}

func TestFrameAfterStallMovesOneFrame(t *testing.T) {
	f, _ := newTestFrontend(t)
	start := time.Unix(1000, 0)
	f.handleKey(tcell.KeyRight, 0, start)

	f.Frame(start)
	f.Frame(start.Add(16 * time.Millisecond))
	fps := f.clock.FPS()
	before := f.sim.BallRect()

	f.Frame(start.Add(5 * time.Second))
	after := f.sim.BallRect()
	if got := f.clock.FPS(); got != fps {
		t.Fatalf("fps after 5s stall = %f, want previous %f", got, fps)
	}
	step := f.sim.Size().H / 3 / fps
	if dx := after.Left - before.Left; dx <= 0 || dx > step+1e-9 {
		t.Fatalf("ball moved dx=%f across the stall, want one frame (%f)", dx, step)
	}
	if f.sim.Lives() != game.StartingLives {
		t.Fatalf("lives after stall = %d, want %d", f.sim.Lives(), game.StartingLives)
	}
}

func TestStartRestartsClock(t *testing.T) {
	f, _ := newTestFrontend(t)
	start := time.Unix(1000, 0)
	f.clock.Tick(start)

	f.handleKey(tcell.KeyLeft, 0, start.Add(50*time.Millisecond))
	if got := f.clock.Tick(start.Add(60 * time.Millisecond)); got != 0 {
		t.Fatalf("first tick after start fps = %f, want 0 (unmeasured)", got)
	}
}
