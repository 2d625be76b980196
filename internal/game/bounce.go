package game

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// MaxBounceAngle is the steepest outgoing angle, measured from vertical, the
// angled model produces at the paddle's ends.
const MaxBounceAngle = math.Pi / 3

// ErrUnknownBounce is returned when no bounce model is registered under a name.
var ErrUnknownBounce = errors.New("unknown bounce model")

// Vec is a 2D vector in playfield units.
type Vec struct {
	X, Y float64
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// BounceFunc maps where the ball met the paddle to its outgoing velocity.
// offset is 0 at the paddle's left edge and 1 at its right edge; v is the
// incoming velocity. The result must point upwards.
type BounceFunc func(offset float64, v Vec) Vec

var bounces = map[string]BounceFunc{}

// RegisterBounce adds a bounce model under the provided name.
func RegisterBounce(name string, f BounceFunc) {
	if name == "" || f == nil {
		return
	}
	bounces[name] = f
}

// LookupBounce returns the model registered under name.
func LookupBounce(name string) (BounceFunc, error) {
	f, ok := bounces[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBounce, name)
	}
	return f, nil
}

// BounceNames lists the registered models in sorted order.
func BounceNames() []string {
	names := make([]string, 0, len(bounces))
	for name := range bounces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AngledBounce interpolates the outgoing angle linearly across the paddle,
// from -MaxBounceAngle at the left edge to +MaxBounceAngle at the right edge.
// Speed is preserved.
func AngledBounce(offset float64, v Vec) Vec {
	offset = clamp01(offset)
	theta := (2*offset - 1) * MaxBounceAngle
	speed := v.Len()
	return Vec{X: speed * math.Sin(theta), Y: -speed * math.Cos(theta)}
}

// ClassicBounce keeps the horizontal speed and sends the ball towards the side
// of the paddle it landed on. A dead-centre hit goes left.
func ClassicBounce(offset float64, v Vec) Vec {
	vx := math.Abs(v.X)
	if offset <= 0.5 {
		vx = -vx
	}
	return Vec{X: vx, Y: -math.Abs(v.Y)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func init() {
	RegisterBounce("angled", AngledBounce)
	RegisterBounce("classic", ClassicBounce)
}
