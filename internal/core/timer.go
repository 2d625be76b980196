package core

import "time"

// FrameClock estimates frames-per-second from the wall-clock time between
// consecutive ticks of a frame loop.
type FrameClock struct {
	minFPS float64
	maxGap time.Duration
	fps    float64
	last   time.Time
}

// NewFrameClock constructs a clock whose estimate never drops below minFPS
// once measured. A non-positive minFPS disables the floor.
func NewFrameClock(minFPS float64) *FrameClock {
	if minFPS < 0 {
		minFPS = 0
	}
	return &FrameClock{minFPS: minFPS}
}

// SetMaxGap sets the longest interval still measured as a frame. Longer gaps,
// such as a suspended process or an unfocused window, keep the previous
// estimate. Zero disables the limit.
func (c *FrameClock) SetMaxGap(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.maxGap = d
}

// Tick records a frame boundary at now and returns the updated estimate.
// The first tick, and any tick whose elapsed time is zero, negative or longer
// than the max gap, keeps the previous estimate.
func (c *FrameClock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return c.fps
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed <= 0 || (c.maxGap > 0 && elapsed > c.maxGap) {
		return c.fps
	}
	fps := float64(time.Second) / float64(elapsed)
	if fps < c.minFPS {
		fps = c.minFPS
	}
	c.fps = fps
	return c.fps
}

// FPS returns the most recent estimate, zero before two ticks were observed.
func (c *FrameClock) FPS() float64 { return c.fps }

// Restart forgets the last tick so that time spent paused or suspended is not
// measured as one long frame. The estimate itself is kept.
func (c *FrameClock) Restart() { c.last = time.Time{} }
