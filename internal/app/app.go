//go:build ebiten

package app

import (
	"image/color"
	"time"

	"bat-pong/internal/audio"
	"bat-pong/internal/core"
	"bat-pong/internal/game"
	"bat-pong/internal/render"
	"bat-pong/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation to the ebiten.Game interface.
type Game struct {
	sim     *game.Simulation
	clock   *core.FrameClock
	painter *render.RectPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	player  *audio.Player

	bgColor color.Color
	fgColor color.Color

	scale    int
	touchIDs []ebiten.TouchID
}

// New constructs a Game for the provided simulation. player may be nil.
func New(sim *game.Simulation, cfg *Config, player *audio.Player) *Game {
	clock := core.NewFrameClock(cfg.MinFPS)
	clock.SetMaxGap(stallFrames * time.Second / time.Duration(cfg.TPS))
	return &Game{
		sim:     sim,
		clock:   clock,
		painter: render.NewRectPainter(cfg.Scale),
		hud:     ui.NewHUD(sim, hudMargin),
		overlay: ui.NewOverlay(sim, hudMargin, cfg.Debug),
		player:  player,
		bgColor: color.RGBA{R: 26, G: 128, B: 182, A: 255},
		fgColor: color.White,
		scale:   cfg.Scale,
	}
}

// Update reads input, advances the simulation one frame and plays its cues.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.NewGame()
	}

	if !ebiten.IsFocused() {
		g.clock.Restart()
		g.hud.Update()
		return nil
	}

	intent, pressed := g.readInput()
	if pressed != game.Stopped && g.sim.Input(pressed) {
		g.clock.Restart()
	}

	fps := g.clock.Tick(time.Now())
	g.player.Play(g.sim.Step(fps, intent))

	g.hud.Update()
	g.overlay.Update()
	return nil
}

// readInput returns the held intent and the direction of any fresh press.
func (g *Game) readInput() (held, pressed game.Movement) {
	w, _ := g.Layout(0, 0)

	held = KeyMovement(ebiten.IsKeyPressed(ebiten.KeyArrowLeft), ebiten.IsKeyPressed(ebiten.KeyArrowRight))
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		pressed = game.Left
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		pressed = game.Right
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		held = MovementAt(x, w)
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			pressed = held
		}
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, _ := ebiten.TouchPosition(g.touchIDs[0])
		held = MovementAt(x, w)
		if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
			pressed = held
		}
	}
	return held, pressed
}

// Draw renders the entities and HUD. It runs while paused too.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bgColor)
	g.painter.Fill(screen, g.sim.BallRect(), g.fgColor)
	g.painter.Fill(screen, g.sim.PaddleRect(), g.fgColor)
	g.hud.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return int(s.W) * g.scale, int(s.H) * g.scale
}

const hudMargin = 8

// stallFrames is the number of ticks after which a gap between updates is
// treated as a stall rather than a slow frame.
const stallFrames = 4
