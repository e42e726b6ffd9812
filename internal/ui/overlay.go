//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"time"

	"bitlife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws frame statistics and sim counters on top of the grid.
type Overlay struct {
	sim     core.Sim
	fps     FPS
	stats   FPSStats
	visible bool
	panel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, visible: true}
	o.panel = ebiten.NewImage(1, 1)
	o.panel.Fill(color.RGBA{A: 160})
	return o
}

// Update toggles visibility with F.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.stats = o.fps.Frame(time.Now())
	if !o.visible {
		return
	}
	msg := fmt.Sprintf("%s\ngeneration = %d\npopulation = %d", o.stats, o.sim.Generation(), o.sim.Population())

	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+8), float64(bounds.Dy()+8))
	screen.DrawImage(o.panel, op)
	text.Draw(screen, msg, face, 4-bounds.Min.X, 4-bounds.Min.Y, color.White)
}
