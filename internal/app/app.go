//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sandsim/internal/render"
	"sandsim/internal/sand"
	"sandsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{R: 28, G: 28, B: 28, A: 255}

var elementKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

var mouseButtons = []struct {
	key    ebiten.MouseButton
	button sand.Button
}{
	{ebiten.MouseButtonLeft, sand.ButtonPrimary},
	{ebiten.MouseButtonRight, sand.ButtonSecondary},
	{ebiten.MouseButtonMiddle, sand.ButtonTertiary},
}

// Game adapts a sand world to the ebiten.Game interface.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	cue     sand.Cue

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world. cue may be nil.
func New(world *sand.World, seed int64, hudWidth int, cue sand.Cue) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(world),
		hud:     ui.NewHUD(world, hudWidth),
		cue:     cue,
		seed:    seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update samples input, runs the scheduler and paints.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.world.ToggleScan()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	for i, key := range elementKeys {
		if inpututil.IsKeyJustPressed(key) && g.world.SelectKey(i+1) && g.cue != nil {
			g.cue.Element(g.world.Brush().Element)
		}
	}

	g.readPointer()
	g.overlay.Update()
	g.hud.Update(g.gridPixelsW())

	switch {
	case g.tickOnce:
		g.world.Step()
		g.world.Paint()
		g.tickOnce = false
	case g.paused:
		g.world.Paint()
	default:
		g.world.Tick()
	}
	return nil
}

func (g *Game) readPointer() {
	mx, my := ebiten.CursorPosition()
	g.world.MoveTo(float64(mx), float64(my))

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.world.ScrollBy(dy)
	}

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.key) {
			if mx >= g.gridPixelsW() {
				continue
			}
			g.world.Press(mb.button)
		}
		if inpututil.IsMouseButtonJustReleased(mb.key) {
			g.world.Release(mb.button)
		}
	}
}

// Draw renders the grid, overlay and parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.world.Grid().TileSize())
	g.overlay.Draw(screen, g.paused)
	g.hud.Draw(screen, g.gridPixelsW())
}

// Layout returns the logical screen size: the grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	tile := g.world.Grid().TileSize()
	return s.W*tile + g.hud.Width(), s.H * tile
}

func (g *Game) gridPixelsW() int {
	return g.world.Size().W * g.world.Grid().TileSize()
}
