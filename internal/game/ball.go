package game

import "bat-pong/internal/core"

// Ball is the single moving entity. Its velocity is kept at a length equal to
// its speed scalar.
type Ball struct {
	rect   core.Rect
	size   float64
	vel    Vec
	speed  float64
	bounce BounceFunc
}

// NewBall creates a square ball one hundredth of the playfield width wide and
// places it at its starting position.
func NewBall(field Playfield, bounce BounceFunc) *Ball {
	if bounce == nil {
		bounce = AngledBounce
	}
	b := &Ball{size: field.W / 100, bounce: bounce}
	b.Reset(field.W, field.H)
	return b
}

// Reset puts the ball at the top of the field, horizontally centred, heading
// up and to the right at a speed derived from the field height.
func (b *Ball) Reset(width, height float64) {
	b.rect = core.RectXYWH(width/2, 0, b.size, b.size)
	b.vel = Vec{X: height / 3, Y: -height / 3}
	b.speed = b.vel.Len()
}

// Advance moves the ball by velocity/fps. Non-positive fps leaves it in place.
func (b *Ball) Advance(fps float64) {
	if fps <= 0 {
		return
	}
	b.rect = core.RectXYWH(b.rect.Left+b.vel.X/fps, b.rect.Top+b.vel.Y/fps, b.size, b.size)
}

// ReverseVelocityX mirrors the horizontal component.
func (b *Ball) ReverseVelocityX() { b.vel.X = -b.vel.X }

// ReverseVelocityY mirrors the vertical component.
func (b *Ball) ReverseVelocityY() { b.vel.Y = -b.vel.Y }

// BounceOffPaddle sends the ball back up at an angle chosen by the bounce
// model from where its centre met the paddle.
func (b *Ball) BounceOffPaddle(paddle core.Rect) {
	offset := 0.5
	if w := paddle.Width(); w > 0 {
		offset = (b.rect.CenterX() - paddle.Left) / w
	}
	out := b.bounce(offset, b.vel)
	if n := out.Len(); n > 0 {
		out.X *= b.speed / n
		out.Y *= b.speed / n
	}
	if out.Y > 0 {
		out.Y = -out.Y
	}
	b.vel = out
}

// IncreaseSpeed scales speed and velocity by SpeedUpFactor. There is no cap.
func (b *Ball) IncreaseSpeed() {
	b.speed *= SpeedUpFactor
	b.vel.X *= SpeedUpFactor
	b.vel.Y *= SpeedUpFactor
}

// Rect returns the ball's bounding rectangle.
func (b *Ball) Rect() core.Rect { return b.rect }

// Velocity returns the current velocity in units per second.
func (b *Ball) Velocity() Vec { return b.vel }

// Speed returns the speed scalar.
func (b *Ball) Speed() float64 { return b.speed }
