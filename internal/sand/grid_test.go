package sand

import (
	"errors"
	"testing"

	"sandsim/internal/particle"
)

func newTestGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, 1, 0)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", w, h, err)
	}
	return g
}

func TestNewGridDimensions(t *testing.T) {
	g, err := NewGrid(1600, 1003, 5, DefaultMaxCells)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Width() != 320 || g.Height() != 200 {
		t.Fatalf("expected 320x200 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Len() != 320*200 {
		t.Fatalf("expected %d cells, got %d", 320*200, g.Len())
	}
	if got := g.Count(particle.Air); got != g.Len() {
		t.Fatalf("new grid should be all air, found %d air cells of %d", got, g.Len())
	}
}

func TestNewGridRejectsOverflow(t *testing.T) {
	_, err := NewGrid(100, 100, 1, 9999)
	if !errors.Is(err, ErrGridCapacity) {
		t.Fatalf("expected ErrGridCapacity, got %v", err)
	}
	if _, err := NewGrid(100, 100, 1, 10000); err != nil {
		t.Fatalf("grid exactly at capacity should be accepted: %v", err)
	}
	if _, err := NewGrid(100, 100, 0, 0); !errors.Is(err, ErrTileSize) {
		t.Fatalf("expected ErrTileSize for zero tile, got %v", err)
	}
}

func TestGetOutOfBoundsReturnsNone(t *testing.T) {
	g := newTestGrid(t, 4, 3)
	g.Clear(particle.Sand)

	outside := [][2]int{
		{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}, {-5, -5}, {100, 1},
	}
	for _, c := range outside {
		if got := g.Get(c[0], c[1]); got != particle.None {
			t.Fatalf("Get(%d,%d) = %v, expected none", c[0], c[1], got)
		}
		if g.IsVacant(c[0], c[1]) {
			t.Fatalf("out of bounds cell (%d,%d) must not be vacant", c[0], c[1])
		}
	}
	if got := g.Get(3, 2); got != particle.Sand {
		t.Fatalf("Get(3,2) = %v, expected sand", got)
	}
}

func TestSetOutOfBoundsIsNoop(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	g.Set(3, 0, particle.Sand)
	g.Set(0, 3, particle.Sand)
	g.Set(-1, 1, particle.Sand)
	if got := g.Count(particle.Sand); got != 0 {
		t.Fatalf("out of bounds writes leaked %d sand cells into the grid", got)
	}

	g.Set(2, 1, particle.Water)
	if got := g.Cells()[g.Index(2, 1)]; got != particle.Water {
		t.Fatalf("expected water at (2,1), got %v", got)
	}
}

func TestSetInvalidKindPanics(t *testing.T) {
	g := newTestGrid(t, 2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("storing particle.Max should panic")
		}
	}()
	g.Set(0, 0, particle.Max)
}

func TestToGridTruncates(t *testing.T) {
	g, err := NewGrid(100, 100, 5, 0)
	if err != nil {
		t.Fatal(err)
	}
	x, y := g.ToGrid(12.9, 4.99)
	if x != 2 || y != 0 {
		t.Fatalf("ToGrid(12.9, 4.99) = (%d,%d), expected (2,0)", x, y)
	}
	x, y = g.ToGrid(499.5, 5)
	if x != 99 || y != 1 {
		t.Fatalf("ToGrid(499.5, 5) = (%d,%d), expected (99,1)", x, y)
	}
}
