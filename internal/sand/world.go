package sand

import (
	"fmt"
	"image/color"

	"sandsim/internal/core"
	"sandsim/internal/particle"
)

// World owns everything one sandbox run mutates: the grid, the brush, the
// pointer state and the tick scheduler. It is not safe for concurrent use;
// frontends drive it from their frame callback.
type World struct {
	name string
	cfg  Config

	grid    *Grid
	stepper *Stepper
	brush   Brush
	input   Input
	clock   *core.FixedStep
	rng     *core.RNG

	ticks   uint64
	display []uint8
}

// NewWorld builds a world from cfg. It fails when the configured window and
// tile size produce more cells than cfg.MaxCells allows.
func NewWorld(name string, cfg Config) (*World, error) {
	grid, err := NewGrid(cfg.WindowWidth, cfg.WindowHeight, cfg.TileSize, cfg.MaxCells)
	if err != nil {
		return nil, fmt.Errorf("new world %q: %w", name, err)
	}
	rng := core.NewRNG(cfg.Seed)
	clock := core.NewFixedStep(cfg.TickIntervalMs)
	clock.SetCarry(cfg.CarryOver)
	w := &World{
		name:    name,
		cfg:     cfg,
		grid:    grid,
		stepper: NewStepper(cfg.Scan, rng),
		brush:   NewBrush(DefaultBrushRadius, particle.Sand),
		clock:   clock,
		rng:     rng,
		display: make([]uint8, grid.Len()),
	}
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the particle grid.
func (w *World) Grid() *Grid { return w.grid }

// Brush returns the current brush settings.
func (w *World) Brush() Brush { return w.brush }

// Clock exposes the tick scheduler.
func (w *World) Clock() *core.FixedStep { return w.clock }

// Ticks returns the number of ticks applied since the last reset.
func (w *World) Ticks() uint64 { return w.ticks }

// Reset empties the grid to Air, reseeds randomness and, when enabled,
// lays down generated terrain. A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng.Seed(seed)
	w.clock.Reset()
	w.ticks = 0
	w.input.Held = ButtonNone
	w.grid.Clear(particle.Air)
	if w.cfg.Terrain {
		SeedTerrain(w.grid, seed, w.cfg.Wood)
	}
}

// Step applies one tick of gravity.
func (w *World) Step() {
	w.stepper.Step(w.grid)
	w.ticks++
}

// Frame runs one host frame: elapsedSeconds feeds the scheduler, which may
// fire a tick, then the brush stamps if a paint button is held. It reports
// whether a tick ran.
func (w *World) Frame(elapsedSeconds float64) bool {
	ticked := w.clock.Advance(elapsedSeconds)
	if ticked {
		w.Step()
	}
	w.Paint()
	return ticked
}

// Tick runs one host frame timed by the wall clock instead of a caller
// supplied delta. It reports whether a tick ran.
func (w *World) Tick() bool {
	ticked := w.clock.ShouldStep()
	if ticked {
		w.Step()
	}
	w.Paint()
	return ticked
}

// Scan returns the active row scan order.
func (w *World) Scan() ScanOrder { return w.stepper.Order() }

// SetScan switches the row scan order for subsequent ticks.
func (w *World) SetScan(order ScanOrder) {
	w.stepper.SetOrder(order)
}

// ToggleScan flips between the two scan orders and returns the new one.
func (w *World) ToggleScan() ScanOrder {
	next := ScanRandomRows
	if w.Scan() == ScanRandomRows {
		next = ScanLeftToRight
	}
	w.SetScan(next)
	return next
}

// Paint stamps the brush under the pointer while a paint button is held:
// the selected element for the primary button, Air for the secondary.
func (w *World) Paint() {
	switch w.input.Held {
	case ButtonPrimary:
		Stamp(w.grid, w.rng, w.input.X, w.input.Y, w.brush.Radius, w.brush.Element)
	case ButtonSecondary:
		Stamp(w.grid, w.rng, w.input.X, w.input.Y, w.brush.Radius, particle.Air)
	}
}

// Cells returns the grid as palette indices for the renderer. The slice is
// reused between calls.
func (w *World) Cells() []uint8 {
	for i, k := range w.grid.Cells() {
		w.display[i] = uint8(k)
	}
	return w.display
}

// Palette returns the colors indexed by Cells values.
func (w *World) Palette() []color.RGBA {
	return palette
}

var palette = particle.Palette()
