package sand

import (
	"errors"
	"fmt"

	"sandsim/internal/core"
	"sandsim/internal/particle"
)

// DefaultMaxCells caps the grid at one cell per pixel of a 1080p display.
const DefaultMaxCells = 1920 * 1080

// ErrGridCapacity reports a configuration whose cell count exceeds the
// allowed maximum.
var ErrGridCapacity = errors.New("sand: grid cell count exceeds capacity")

// ErrTileSize reports a non-positive tile size.
var ErrTileSize = errors.New("sand: tile size must be positive")

// Grid is a dense row-major array of particles with the origin at the top
// left and y growing downwards. Reads outside the grid return particle.None
// and writes outside it are ignored, so neighbour lookups near the edges need
// no special cases.
type Grid struct {
	width    int
	height   int
	tileSize int
	cells    []particle.Kind
}

// NewGrid sizes a grid to cover a window of the given pixel dimensions with
// square tiles of tileSize pixels. Every cell starts as particle.Air.
func NewGrid(windowW, windowH, tileSize, maxCells int) (*Grid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrTileSize, tileSize)
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	w := windowW / tileSize
	h := windowH / tileSize
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w*h > maxCells {
		return nil, fmt.Errorf("%w: %dx%d = %d cells, max %d", ErrGridCapacity, w, h, w*h, maxCells)
	}
	g := &Grid{width: w, height: h, tileSize: tileSize, cells: make([]particle.Kind, w*h)}
	g.Clear(particle.Air)
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// TileSize returns the edge length of one cell in window pixels.
func (g *Grid) TileSize() int { return g.tileSize }

// Len returns width*height.
func (g *Grid) Len() int { return len(g.cells) }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.width, H: g.height} }

// Cells exposes the backing slice. Index i maps to column i%width, row i/width.
func (g *Grid) Cells() []particle.Kind { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Get returns the particle at (x, y), or particle.None outside the grid.
func (g *Grid) Get(x, y int) particle.Kind {
	if !g.InBounds(x, y) {
		return particle.None
	}
	return g.cells[g.Index(x, y)]
}

// Set stores p at (x, y). Coordinates outside the grid are ignored. Storing
// a kind outside the valid range panics.
func (g *Grid) Set(x, y int, p particle.Kind) {
	if !p.Valid() {
		panic(fmt.Sprintf("sand: refusing to store invalid particle %d", uint8(p)))
	}
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = p
}

// IsVacant reports whether (x, y) holds particle.Air.
func (g *Grid) IsVacant(x, y int) bool {
	return g.Get(x, y) == particle.Air
}

// ToGrid converts window pixel coordinates into cell coordinates. The
// result is not clamped; callers rely on Get/Set bounds handling.
func (g *Grid) ToGrid(wx, wy float64) (int, int) {
	return int(wx) / g.tileSize, int(wy) / g.tileSize
}

// Clear fills every cell with p.
func (g *Grid) Clear(p particle.Kind) {
	if !p.Valid() {
		return
	}
	for i := range g.cells {
		g.cells[i] = p
	}
}

// Count returns the number of cells holding p.
func (g *Grid) Count(p particle.Kind) int {
	n := 0
	for _, c := range g.cells {
		if c == p {
			n++
		}
	}
	return n
}
