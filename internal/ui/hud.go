//go:build ebiten

package ui

import (
	"image/color"

	"bat-pong/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the score line and the paused prompt over the playfield.
type HUD struct {
	provider core.ParameterProvider
	snapshot core.ParameterSnapshot
	margin   int
}

// NewHUD constructs a HUD reading from provider. margin is the inset from the
// top-left corner in screen pixels.
func NewHUD(provider core.ParameterProvider, margin int) *HUD {
	if margin < 0 {
		margin = 0
	}
	return &HUD{provider: provider, margin: margin}
}

// Update refreshes the cached snapshot.
func (h *HUD) Update() {
	if h == nil || h.provider == nil {
		return
	}
	h.snapshot = h.provider.Parameters()
}

// Draw paints the HUD text. It runs whether or not the session is paused.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	y := h.margin + headerBaseline
	text.Draw(screen, StatusLine(h.snapshot), face, h.margin, y, color.White)

	if prompt := PromptLine(h.snapshot); prompt != "" {
		bounds := text.BoundString(face, prompt)
		w, ht := screen.Bounds().Dx(), screen.Bounds().Dy()
		text.Draw(screen, prompt, face, (w-bounds.Dx())/2, ht/2, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

const (
	headerBaseline = 13
	lineHeight     = 16
)
