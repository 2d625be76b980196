package game

import "bat-pong/internal/core"

// Movement is the player's horizontal intent for the paddle.
type Movement int

const (
	Stopped Movement = iota
	Left
	Right
)

func (m Movement) String() string {
	switch m {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "stopped"
	}
}

// Paddle is the player's bat, pinned to the bottom of the playfield.
type Paddle struct {
	rect     core.Rect
	x        float64
	width    float64
	maxX     float64
	speed    float64
	movement Movement
}

// NewPaddle sizes a paddle from the playfield: one eighth of the width, one
// fortieth of the height, starting at the horizontal middle. It crosses the
// whole field in one second.
func NewPaddle(field Playfield) *Paddle {
	width := field.W / 8
	height := field.H / 40
	p := &Paddle{
		x:     field.W / 2,
		width: width,
		maxX:  field.W - width,
		speed: field.W,
	}
	p.rect = core.Rect{Top: field.H - height, Bottom: field.H}
	p.syncRect()
	return p
}

// SetMovement records the movement intent consumed by the next Advance.
func (p *Paddle) SetMovement(m Movement) { p.movement = m }

// Movement returns the current intent.
func (p *Paddle) Movement() Movement { return p.movement }

// Advance moves the paddle by speed/fps in the intended direction and keeps it
// inside the playfield. Non-positive fps leaves the paddle untouched.
func (p *Paddle) Advance(fps float64) {
	if fps <= 0 {
		return
	}
	switch p.movement {
	case Left:
		p.x -= p.speed / fps
	case Right:
		p.x += p.speed / fps
	}
	if p.x < 0 {
		p.x = 0
	} else if p.x > p.maxX {
		p.x = p.maxX
	}
	p.syncRect()
}

// Rect returns the paddle's bounding rectangle.
func (p *Paddle) Rect() core.Rect { return p.rect }

func (p *Paddle) syncRect() {
	p.rect.Left = p.x
	p.rect.Right = p.x + p.width
}
