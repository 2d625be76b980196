package game

import (
	"strconv"

	"bat-pong/internal/core"
)

// Parameters exposes the session and ball state for the HUD and debug panel.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	v := s.ball.Velocity()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Session",
			Params: []core.Parameter{
				{Key: "score", Label: "Score", Value: strconv.Itoa(s.sess.score)},
				{Key: "lives", Label: "Lives", Value: strconv.Itoa(s.sess.lives)},
				{Key: "state", Label: "State", Value: s.sess.state.String()},
			},
		},
		{
			Name: "Ball",
			Params: []core.Parameter{
				{Key: "ball_speed", Label: "Speed", Value: formatFloat(s.ball.Speed())},
				{Key: "ball_vx", Label: "VX", Value: formatFloat(v.X)},
				{Key: "ball_vy", Label: "VY", Value: formatFloat(v.Y)},
			},
		},
		{
			Name: "Frame",
			Params: []core.Parameter{
				{Key: "fps", Label: "FPS", Value: strconv.Itoa(int(s.lastFPS + 0.5))},
			},
		},
	}}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
