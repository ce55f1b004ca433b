package sand

import (
	"testing"

	"sandsim/internal/core"
	"sandsim/internal/particle"
)

func TestBrushRadiusNeverBelowOne(t *testing.T) {
	b := NewBrush(3, particle.Sand)
	for i := 0; i < 10; i++ {
		b.Shrink()
		if b.Radius < MinBrushRadius {
			t.Fatalf("radius dropped to %d after %d shrinks", b.Radius, i+1)
		}
	}
	if b.Radius != 1 {
		t.Fatalf("expected radius 1, got %d", b.Radius)
	}

	if b := NewBrush(-4, particle.Sand); b.Radius != 1 {
		t.Fatalf("NewBrush should clamp negative radius, got %d", b.Radius)
	}
}

func TestBrushScrollThresholds(t *testing.T) {
	b := NewBrush(4, particle.Sand)
	if b.Scroll(0.05) || b.Scroll(-0.1) || b.Scroll(0.1) {
		t.Fatal("scroll deltas within the threshold must not resize the brush")
	}
	if b.Radius != 4 {
		t.Fatalf("radius changed to %d on small scrolls", b.Radius)
	}
	if !b.Scroll(1.5) || b.Radius != 5 {
		t.Fatalf("scroll up should grow to 5, got %d", b.Radius)
	}
	for i := 0; i < 20; i++ {
		b.Scroll(-2)
	}
	if b.Radius != 1 {
		t.Fatalf("repeated scroll down should stop at 1, got %d", b.Radius)
	}
}

func TestStampNeverOverwritesMatter(t *testing.T) {
	g := newTestGrid(t, 20, 20)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if (x+y)%2 == 0 {
				g.Set(x, y, particle.Wood)
			}
		}
	}
	woodBefore := g.Count(particle.Wood)
	rng := core.NewRNG(9)
	for i := 0; i < 200; i++ {
		Stamp(g, rng, 10, 10, 6, particle.Sand)
	}
	if got := g.Count(particle.Wood); got != woodBefore {
		t.Fatalf("sand brush replaced wood: %d wood cells before, %d after", woodBefore, got)
	}
	if g.Count(particle.Sand) == 0 {
		t.Fatal("sand brush should have filled some air cells")
	}
}

func TestStampAirErases(t *testing.T) {
	g := newTestGrid(t, 11, 11)
	g.Clear(particle.Sand)
	rng := core.NewRNG(21)
	for i := 0; i < 50; i++ {
		Stamp(g, rng, 5, 5, 3, particle.Air)
	}
	if got := g.Get(5, 5); got != particle.Air {
		t.Fatalf("centre of repeated air stamps should be erased, got %v", got)
	}
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			dx, dy := x-5, y-5
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if (dx > 2 || dy > 2) && g.Get(x, y) != particle.Sand {
				t.Fatalf("cell (%d,%d) outside the brush was erased", x, y)
			}
		}
	}
}

func TestStampIsThinned(t *testing.T) {
	g := newTestGrid(t, 40, 40)
	written := Stamp(g, core.NewRNG(4), 20, 20, 12, particle.Sand)
	disc := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			dx, dy := x-20, y-20
			if dx*dx+dy*dy <= 11*11 {
				disc++
			}
		}
	}
	if written == 0 || written >= disc {
		t.Fatalf("a single stamp should write a fraction of the %d disc cells, wrote %d", disc, written)
	}
	if got := g.Count(particle.Sand); got != written {
		t.Fatalf("Stamp reported %d writes but grid holds %d sand", written, got)
	}
}

func TestStampNearEdgeIsSafe(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	rng := core.NewRNG(2)
	for i := 0; i < 20; i++ {
		Stamp(g, rng, 0, 0, 8, particle.Sand)
		Stamp(g, rng, 4.9, 4.9, 8, particle.Sand)
		Stamp(g, rng, -30, 70, 3, particle.Sand)
	}
	for _, k := range g.Cells() {
		if k != particle.Air && k != particle.Sand {
			t.Fatalf("unexpected kind %v after edge stamps", k)
		}
	}
}

func TestPaintCellRejectsOccupied(t *testing.T) {
	g, err := NewGrid(50, 50, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(3, 4, particle.Sand)

	if PaintCell(g, 17, 22, particle.Water) {
		t.Fatal("painting water onto sand should be refused")
	}
	if got := g.Get(3, 4); got != particle.Sand {
		t.Fatalf("cell (3,4) should still be sand, got %v", got)
	}

	if !PaintCell(g, 0, 0, particle.Water) || g.Get(0, 0) != particle.Water {
		t.Fatal("painting water onto air should succeed")
	}
	if !PaintCell(g, 17, 22, particle.Air) || g.Get(3, 4) != particle.Air {
		t.Fatal("painting air should erase the sand")
	}
	if PaintCell(g, 500, 10, particle.Sand) {
		t.Fatal("painting outside the grid should report no write")
	}
}

func TestStampCentreOverlapRaisesHitRate(t *testing.T) {
	const trials = 400
	hits := 0
	for seed := int64(1); seed <= trials; seed++ {
		g := newTestGrid(t, 3, 3)
		Stamp(g, core.NewRNG(seed), 1.5, 1.5, 1, particle.Sand)
		if g.Get(1, 1) == particle.Sand {
			hits++
		}
	}
	rate := float64(hits) / trials
	if rate < 0.55 || rate > 0.8 {
		t.Fatalf("radius 1 centre should land about 68%% of the time, got %.3f", rate)
	}
}
