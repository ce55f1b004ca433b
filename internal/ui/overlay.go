//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"sandsim/internal/particle"
	"sandsim/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	overlayText   = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	overlayShadow = color.RGBA{A: 200}
)

// Overlay draws the debug readout and the brush outline over the grid.
type Overlay struct {
	world      *sand.World
	showStats  bool
	showCursor bool
}

// NewOverlay constructs an overlay for world with both layers visible.
func NewOverlay(world *sand.World) *Overlay {
	return &Overlay{world: world, showStats: true, showCursor: true}
}

// Update toggles layers: F1 for the readout, Tab for the brush outline.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.showCursor = !o.showCursor
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if o.showCursor {
		o.drawCursor(screen)
	}
	if o.showStats {
		o.drawStats(screen, paused)
	}
}

func (o *Overlay) drawCursor(screen *ebiten.Image) {
	in := o.world.Input()
	b := o.world.Brush()
	tile := o.world.Grid().TileSize()
	x, y := o.world.Grid().ToGrid(in.X, in.Y)
	cx := float32(x*tile) + float32(tile)/2
	cy := float32(y*tile) + float32(tile)/2
	r := float32(b.Radius * tile)
	c, ok := b.Element.Color()
	if !ok || b.Element == particle.Air {
		c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	vector.StrokeCircle(screen, cx, cy, r, 1, c, true)
}

func (o *Overlay) drawStats(screen *ebiten.Image, paused bool) {
	in := o.world.Input()
	b := o.world.Brush()
	size := o.world.Size()
	state := "running"
	if paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("Grid (WxH): %dx%d", size.W, size.H),
		fmt.Sprintf("Mouse: (%.2f, %.2f)", in.X, in.Y),
		fmt.Sprintf("Mouse Held: %s", in.Held),
		fmt.Sprintf("Brush: %s r=%d", b.Element, b.Radius),
		fmt.Sprintf("Tick: %d (%s)", o.world.Ticks(), state),
	}
	face := basicfont.Face7x13
	const x0, y0, lineHeight = 10, 10, 16
	w := 0
	for _, l := range lines {
		if n := text.BoundString(face, l).Dx(); n > w {
			w = n
		}
	}
	vector.DrawFilledRect(screen, x0-4, y0-4, float32(w+8), float32(len(lines)*lineHeight+8), overlayShadow, false)
	for i, l := range lines {
		text.Draw(screen, l, face, x0, y0+12+i*lineHeight, overlayText)
	}
}
