package sand

import (
	"errors"
	"testing"
	"time"

	"sandsim/internal/core"
	"sandsim/internal/particle"
)

func newTestWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := NewWorld("test", cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.WindowWidth = 40
	cfg.WindowHeight = 30
	cfg.TileSize = 2
	cfg.TickIntervalMs = 20
	return cfg
}

func TestFrameTicksOnInterval(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	w.Grid().Set(5, 0, particle.Sand)

	if w.Frame(0.015) {
		t.Fatal("15ms is below the interval and must not tick")
	}
	if w.Grid().Get(5, 0) != particle.Sand {
		t.Fatal("sand moved without a tick")
	}
	if !w.Frame(0.010) {
		t.Fatal("25ms accumulated should tick")
	}
	if w.Grid().Get(5, 1) != particle.Sand {
		t.Fatal("sand should have fallen one row on the tick")
	}
	if acc := w.Clock().Accumulator(); acc != 0 {
		t.Fatalf("accumulator should reset to 0 after a tick, got %f", acc)
	}
	if w.Ticks() != 1 {
		t.Fatalf("expected 1 tick, got %d", w.Ticks())
	}
}

func TestSlowFrameFiresSingleTick(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	w.Grid().Set(5, 0, particle.Sand)

	if !w.Frame(0.5) {
		t.Fatal("a 500ms frame should tick")
	}
	if w.Ticks() != 1 || w.Grid().Get(5, 1) != particle.Sand {
		t.Fatal("a slow frame must fire exactly one tick")
	}
	if w.Frame(0) {
		t.Fatal("overshoot must be discarded, not replayed on the next frame")
	}
}

func TestPressPaintsSingleCell(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	w.MoveTo(9, 7)
	w.Press(ButtonPrimary)

	if got := w.Grid().Get(4, 3); got != particle.Sand {
		t.Fatalf("primary press should paint sand at (4,3), got %v", got)
	}
	if w.Input().Held != ButtonPrimary {
		t.Fatalf("expected primary held, got %v", w.Input().Held)
	}

	w.Press(ButtonSecondary)
	if w.Input().Held != ButtonPrimary {
		t.Fatal("secondary press must not take over a held primary button")
	}
	if got := w.Grid().Get(4, 3); got != particle.Air {
		t.Fatalf("secondary press should erase the cell, got %v", got)
	}

	w.Press(ButtonTertiary)
	w.Release(ButtonSecondary)
	if w.Input().Held != ButtonNone {
		t.Fatal("releasing a paint button should stop painting")
	}
}

func TestHeldButtonStampsEveryFrame(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	w.SetIntParameter("brush_radius", 4)
	w.MoveTo(20, 14)
	w.Press(ButtonPrimary)
	for i := 0; i < 10; i++ {
		w.Frame(0)
	}
	if w.Grid().Count(particle.Sand) < 5 {
		t.Fatalf("holding primary should pour sand, found %d cells", w.Grid().Count(particle.Sand))
	}

	w.Release(ButtonPrimary)
	before := w.Grid().Count(particle.Sand)
	for i := 0; i < 10; i++ {
		w.Frame(0)
	}
	if got := w.Grid().Count(particle.Sand); got != before {
		t.Fatalf("released button kept painting: %d -> %d", before, got)
	}

	w.Press(ButtonSecondary)
	for i := 0; i < 200; i++ {
		w.Frame(0)
	}
	if got := w.Grid().Get(10, 7); got != particle.Air {
		t.Fatalf("holding secondary should erase under the pointer, got %v", got)
	}
}

func TestSelectElement(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	if !w.SelectKey(2) || w.Brush().Element != particle.Water {
		t.Fatalf("key 2 should select water, got %v", w.Brush().Element)
	}
	if !w.SelectKey(3) || w.Brush().Element != particle.Wood {
		t.Fatalf("key 3 should select wood, got %v", w.Brush().Element)
	}
	if w.SelectKey(0) || w.SelectKey(5) {
		t.Fatal("keys outside 1..4 select nothing")
	}
	if w.SelectElement(particle.None) || w.SelectElement(particle.Max) {
		t.Fatal("sentinel kinds cannot be painted")
	}

	cfg := smallConfig()
	cfg.Wood = false
	classic := newTestWorld(t, cfg)
	if classic.SelectKey(3) {
		t.Fatal("wood must be refused when the variant has none")
	}
	if classic.Brush().Element != particle.Sand {
		t.Fatalf("refused selection changed the element to %v", classic.Brush().Element)
	}
}

func TestScrollResizesBrush(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	start := w.Brush().Radius
	w.ScrollBy(1)
	if w.Brush().Radius != start+1 {
		t.Fatalf("scroll up should grow the brush to %d, got %d", start+1, w.Brush().Radius)
	}
	for i := 0; i < 50; i++ {
		w.ScrollBy(-1)
	}
	if w.Brush().Radius != 1 {
		t.Fatalf("brush radius should clamp at 1, got %d", w.Brush().Radius)
	}
	if w.Input().Scroll != -1 {
		t.Fatalf("last scroll delta not recorded, got %f", w.Input().Scroll)
	}
}

func TestResetClearsGrid(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	w.Grid().Set(1, 1, particle.Sand)
	w.MoveTo(4, 4)
	w.Press(ButtonPrimary)
	w.Frame(1)

	w.Reset(0)
	if got := w.Grid().Count(particle.Air); got != w.Grid().Len() {
		t.Fatalf("reset should leave only air, found %d of %d", got, w.Grid().Len())
	}
	if w.Ticks() != 0 || w.Input().Held != ButtonNone || w.Clock().Accumulator() != 0 {
		t.Fatal("reset should clear ticks, held button and the accumulator")
	}
}

func TestCellsMirrorGrid(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	w.Grid().Set(3, 2, particle.Water)
	cells := w.Cells()
	if len(cells) != w.Grid().Len() {
		t.Fatalf("cells length %d, grid length %d", len(cells), w.Grid().Len())
	}
	if cells[w.Grid().Index(3, 2)] != uint8(particle.Water) {
		t.Fatal("display buffer does not reflect the grid")
	}
	if len(w.Palette()) != int(particle.Max) {
		t.Fatalf("palette should cover every kind, got %d", len(w.Palette()))
	}
}

func TestRegistryBuildsVariants(t *testing.T) {
	cfg := map[string]string{"window_w": "30", "window_h": "20", "tile": "1"}
	sim, err := core.New("sand", cfg)
	if err != nil {
		t.Fatalf("core.New(sand): %v", err)
	}
	if s := sim.Size(); s.W != 30 || s.H != 20 {
		t.Fatalf("expected 30x20, got %dx%d", s.W, s.H)
	}

	classic, err := core.New("sand-classic", cfg)
	if err != nil {
		t.Fatalf("core.New(sand-classic): %v", err)
	}
	if world := classic.(*World); world.Config().Scan != ScanLeftToRight || world.Config().Wood {
		t.Fatal("classic variant should scan left to right without wood")
	}

	_, err = core.New("sand", map[string]string{"window_w": "3000", "window_h": "3000", "tile": "1"})
	if !errors.Is(err, ErrGridCapacity) {
		t.Fatalf("oversized grid should fail with ErrGridCapacity, got %v", err)
	}
}

func TestParametersRoundTrip(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	if !w.SetIntParameter("brush_radius", -3) {
		t.Fatal("brush radius should be settable")
	}
	snap := w.Parameters()
	p, ok := snap.Lookup("brush_radius")
	if !ok || p.Value != "1" {
		t.Fatalf("expected clamped radius 1 in snapshot, got %+v", p)
	}
	if !w.SetFloatParameter("tick_interval_ms", 40) || w.Clock().Interval() != 40 {
		t.Fatal("tick interval should be settable")
	}
	if w.SetIntParameter("unknown", 1) || w.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys should be rejected")
	}
	if p, ok := snap.Lookup("w"); !ok || p.Value != "20" {
		t.Fatalf("expected width 20 in snapshot, got %+v", p)
	}
}

func TestTickFollowsWallClock(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	w.Reset(1)
	now := time.Unix(0, 0)
	w.Clock().SetClock(func() time.Time { return now })
	w.Grid().Set(4, 0, particle.Sand)

	if w.Tick() {
		t.Fatal("the first Tick only anchors the clock")
	}
	now = now.Add(30 * time.Millisecond)
	if !w.Tick() {
		t.Fatal("30ms of wall time should tick")
	}
	if w.Ticks() != 1 || w.Grid().Get(4, 1) != particle.Sand {
		t.Fatalf("expected one tick moving the grain down, ticks=%d", w.Ticks())
	}
	if w.Tick() {
		t.Fatal("no time passed, no tick")
	}
}

func TestToggleScanSwitchesStepper(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	if got := w.ToggleScan(); got != ScanLeftToRight {
		t.Fatalf("random scan should toggle to ltr, got %v", got)
	}
	if p, ok := w.Parameters().Lookup("scan"); !ok || p.Value != "ltr" {
		t.Fatalf("snapshot should report ltr, got %+v", p)
	}
	if got := w.ToggleScan(); got != ScanRandomRows {
		t.Fatalf("ltr should toggle back to random, got %v", got)
	}
	if p, ok := w.Parameters().Lookup("wood"); !ok || p.Type != core.ParamTypeBool || p.Value != "true" {
		t.Fatalf("wood should be reported as a bool parameter, got %+v", p)
	}
}
