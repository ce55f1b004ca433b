package sand

import (
	"sandsim/internal/core"
	"sandsim/internal/particle"
)

const (
	// DefaultBrushRadius is the starting stamp radius in cells.
	DefaultBrushRadius = 5
	// MinBrushRadius is the smallest radius scrolling can reach.
	MinBrushRadius = 1
	// ScrollThreshold is the scroll delta magnitude that resizes the brush.
	ScrollThreshold = 0.1
	// StampDensity is the chance a cell on a stamped span is written.
	StampDensity = 0.25
)

// Brush holds the paint settings chosen by the user.
type Brush struct {
	Radius  int
	Element particle.Kind
}

// NewBrush returns a brush with a clamped radius.
func NewBrush(radius int, element particle.Kind) Brush {
	b := Brush{Radius: radius, Element: element}
	b.clamp()
	return b
}

// Grow widens the brush by one cell.
func (b *Brush) Grow() { b.Radius++ }

// Shrink narrows the brush by one cell, never below MinBrushRadius.
func (b *Brush) Shrink() {
	b.Radius--
	b.clamp()
}

// Scroll resizes the brush from a vertical scroll delta and reports whether
// the radius was adjusted. Deltas within ScrollThreshold of zero are ignored.
func (b *Brush) Scroll(dy float64) bool {
	switch {
	case dy > ScrollThreshold:
		b.Grow()
	case dy < -ScrollThreshold:
		b.Shrink()
	default:
		return false
	}
	return true
}

func (b *Brush) clamp() {
	if b.Radius < MinBrushRadius {
		b.Radius = MinBrushRadius
	}
}

// Stamp paints a textured disc of element centred on the window position
// (wx, wy) and returns the number of cells written. The disc is rasterised
// with the midpoint circle algorithm as horizontal spans and each span cell
// is tried with probability StampDensity. Spans overlap near the centre, so
// those cells get several tries: at radius 1 the centre is tried four times
// and lands about 68% of the time. Air erases anything, other elements only
// land on Air.
func Stamp(g *Grid, rng *core.RNG, wx, wy float64, radius int, element particle.Kind) int {
	if radius < MinBrushRadius {
		radius = MinBrushRadius
	}
	xc, yc := g.ToGrid(wx, wy)
	r := radius - 1

	written := 0
	span := func(x0, x1, y int) {
		for x := x0; x <= x1; x++ {
			if !rng.Chance(StampDensity) {
				continue
			}
			if place(g, x, y, element) {
				written++
			}
		}
	}

	x, y := 0, r
	d := 1 - r
	for x <= y {
		span(xc-x, xc+x, yc+y)
		span(xc-x, xc+x, yc-y)
		span(xc-y, xc+y, yc+x)
		span(xc-y, xc+y, yc-x)
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
	return written
}

// PaintCell writes element into the single cell under the window position
// (wx, wy) using the same placement rule as Stamp, without thinning.
func PaintCell(g *Grid, wx, wy float64, element particle.Kind) bool {
	x, y := g.ToGrid(wx, wy)
	return place(g, x, y, element)
}

// place writes element at (x, y) when the placement rule allows it.
func place(g *Grid, x, y int, element particle.Kind) bool {
	if !g.InBounds(x, y) || !element.Valid() {
		return false
	}
	if element != particle.Air && !g.IsVacant(x, y) {
		return false
	}
	g.Set(x, y, element)
	return true
}
