//go:build ebiten

package ui

import (
	"image/color"

	"bat-pong/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the debug panel (fps and ball state) below the HUD line.
type Overlay struct {
	provider core.ParameterProvider
	visible  bool
	margin   int
	lines    []string
}

// NewOverlay constructs a debug overlay, initially shown when visible is set.
func NewOverlay(provider core.ParameterProvider, margin int, visible bool) *Overlay {
	return &Overlay{provider: provider, margin: margin, visible: visible}
}

// Update toggles the panel on the D key and refreshes its lines.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
	if !o.visible || o.provider == nil {
		return
	}
	o.lines = DebugLines(o.provider.Parameters())
}

// Draw paints the panel when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.visible {
		return
	}
	face := basicfont.Face7x13
	y := o.margin + headerBaseline + 2*lineHeight
	for _, line := range o.lines {
		text.Draw(screen, line, face, o.margin, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
	}
}
