// Package term runs the simulation in a terminal using tcell.
package term

import (
	"context"
	"math"
	"time"

	"bat-pong/internal/audio"
	"bat-pong/internal/core"
	"bat-pong/internal/game"
	"bat-pong/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// stallFrames is the number of ticker periods after which a gap between
// frames is treated as a stall rather than a slow frame.
const stallFrames = 4

// keyHold is how long a key press keeps the paddle moving. Terminals report
// presses and auto-repeats but never releases.
const keyHold = 300 * time.Millisecond

// Options configures a Frontend.
type Options struct {
	TPS    int
	MinFPS float64
	Debug  bool
}

// Frontend draws the playfield into a tcell screen and feeds it key presses.
type Frontend struct {
	screen tcell.Screen
	sim    *game.Simulation
	clock  *core.FrameClock
	player *audio.Player
	tps    int
	debug  bool

	intent    game.Movement
	holdUntil time.Time

	fieldStyle  tcell.Style
	entityStyle tcell.Style
	textStyle   tcell.Style
}

// New wires a frontend around an initialised screen. player may be nil.
func New(screen tcell.Screen, sim *game.Simulation, opts Options, player *audio.Player) *Frontend {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	bg := tcell.NewRGBColor(26, 128, 182)
	clock := core.NewFrameClock(opts.MinFPS)
	clock.SetMaxGap(stallFrames * time.Second / time.Duration(opts.TPS))
	return &Frontend{
		screen:      screen,
		sim:         sim,
		clock:       clock,
		player:      player,
		tps:         opts.TPS,
		debug:       opts.Debug,
		fieldStyle:  tcell.StyleDefault.Background(bg),
		entityStyle: tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite),
		textStyle:   tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite).Bold(true),
	}
}

// Run drives the frame loop until ctx is cancelled or the player quits.
func (f *Frontend) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(f.tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			f.Frame(now)
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev.Key(), ev.Rune(), now)
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) handleKey(key tcell.Key, r rune, now time.Time) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		f.press(game.Left, now)
	case tcell.KeyRight:
		f.press(game.Right, now)
	case tcell.KeyDown:
		f.intent = game.Stopped
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'h':
			f.press(game.Left, now)
		case 'l':
			f.press(game.Right, now)
		case ' ':
			f.intent = game.Stopped
		case 'r':
			f.sim.NewGame()
		case 'd':
			f.debug = !f.debug
		}
	}
	return true
}

func (f *Frontend) press(m game.Movement, now time.Time) {
	f.intent = m
	f.holdUntil = now.Add(keyHold)
	if f.sim.Input(m) {
		f.clock.Restart()
	}
}

// Intent returns the movement intent that the next frame will apply at now.
func (f *Frontend) Intent(now time.Time) game.Movement {
	if f.intent != game.Stopped && now.After(f.holdUntil) {
		f.intent = game.Stopped
	}
	return f.intent
}

// Frame advances the simulation once, plays its cues and redraws.
func (f *Frontend) Frame(now time.Time) {
	fps := f.clock.Tick(now)
	f.player.Play(f.sim.Step(fps, f.Intent(now)))
	f.Draw()
}

// Draw renders the status line, the entities and, when enabled, the debug
// lines. The top row is reserved for text.
func (f *Frontend) Draw() {
	f.screen.SetStyle(f.fieldStyle)
	f.screen.Clear()
	cols, rows := f.screen.Size()
	fieldRows := rows - 1
	if cols <= 0 || fieldRows <= 0 {
		f.screen.Show()
		return
	}

	size := f.sim.Size()
	sx := float64(cols) / size.W
	sy := float64(fieldRows) / size.H
	f.fill(f.sim.BallRect(), sx, sy, cols, fieldRows)
	f.fill(f.sim.PaddleRect(), sx, sy, cols, fieldRows)

	snap := f.sim.Parameters()
	f.text(0, 0, ui.StatusLine(snap))
	if prompt := ui.PromptLine(snap); prompt != "" {
		f.text((cols-len(prompt))/2, 1+fieldRows/2, prompt)
	}
	if f.debug {
		for i, line := range ui.DebugLines(snap) {
			f.text(0, 1+i, line)
		}
	}
	f.screen.Show()
}

func (f *Frontend) fill(r core.Rect, sx, sy float64, cols, rows int) {
	x0, x1, ok := CellSpan(r.Left, r.Right, sx, cols)
	if !ok {
		return
	}
	y0, y1, ok := CellSpan(r.Top, r.Bottom, sy, rows)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			f.screen.SetContent(x, 1+y, '█', nil, f.entityStyle)
		}
	}
}

func (f *Frontend) text(x, y int, s string) {
	for i, r := range []rune(s) {
		f.screen.SetContent(x+i, y, r, nil, f.textStyle)
	}
}

// CellSpan maps the interval [lo, hi) in playfield units to the inclusive
// range of cells it touches at scale cells-per-unit, clipped to [0, limit).
// A non-empty interval always covers at least one cell.
func CellSpan(lo, hi, scale float64, limit int) (first, last int, ok bool) {
	if hi <= lo || limit <= 0 {
		return 0, 0, false
	}
	first = int(math.Floor(lo * scale))
	last = int(math.Ceil(hi*scale)) - 1
	if last < first {
		last = first
	}
	if last < 0 || first >= limit {
		return 0, 0, false
	}
	if first < 0 {
		first = 0
	}
	if last >= limit {
		last = limit - 1
	}
	return first, last, true
}
