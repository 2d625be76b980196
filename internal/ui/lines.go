package ui

import (
	"fmt"

	"bat-pong/internal/core"
)

// StatusLine formats the score and lives the way the player sees them.
func StatusLine(s core.ParameterSnapshot) string {
	return fmt.Sprintf("Score: %s Lives: %s", value(s, "score"), value(s, "lives"))
}

// PromptLine returns the hint shown while the session is paused, or "" while
// it runs.
func PromptLine(s core.ParameterSnapshot) string {
	if value(s, "state") != "paused" {
		return ""
	}
	if value(s, "lives") == "0" {
		return "Game over - press left or right to play again"
	}
	return "Press left or right to start"
}

// DebugLines lists every non-session parameter as "Label: value", grouped in
// snapshot order.
func DebugLines(s core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range s.Groups {
		if g.Name == "Session" {
			continue
		}
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("%s %s: %s", g.Name, p.Label, p.Value))
		}
	}
	return lines
}

func value(s core.ParameterSnapshot, key string) string {
	if p, ok := s.Lookup(key); ok {
		return p.Value
	}
	return "--"
}
