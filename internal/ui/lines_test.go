package ui

import (
	"slices"
	"testing"

	"bat-pong/internal/core"
)

func snapshot(score, lives, state string) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Session", Params: []core.Parameter{
			{Key: "score", Label: "Score", Value: score},
			{Key: "lives", Label: "Lives", Value: lives},
			{Key: "state", Label: "State", Value: state},
		}},
		{Name: "Frame", Params: []core.Parameter{{Key: "fps", Label: "FPS", Value: "60"}}},
	}}
}

func TestStatusLine(t *testing.T) {
	if got := StatusLine(snapshot("4", "2", "running")); got != "Score: 4 Lives: 2" {
		t.Fatalf("StatusLine = %q", got)
	}
	if got := StatusLine(core.ParameterSnapshot{}); got != "Score: -- Lives: --" {
		t.Fatalf("StatusLine(empty) = %q", got)
	}
}

func TestPromptLine(t *testing.T) {
	if got := PromptLine(snapshot("0", "3", "running")); got != "" {
		t.Fatalf("running prompt = %q, want empty", got)
	}
	if got := PromptLine(snapshot("0", "3", "paused")); got != "Press left or right to start" {
		t.Fatalf("paused prompt = %q", got)
	}
	if got := PromptLine(snapshot("9", "0", "paused")); got != "Game over - press left or right to play again" {
		t.Fatalf("game over prompt = %q", got)
	}
}

func TestDebugLinesSkipSession(t *testing.T) {
	got := DebugLines(snapshot("1", "1", "running"))
	if !slices.Equal(got, []string{"Frame FPS: 60"}) {
		t.Fatalf("DebugLines = %v", got)
	}
}
