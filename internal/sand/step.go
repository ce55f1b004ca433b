package sand

import (
	"sandsim/internal/core"
	"sandsim/internal/particle"
)

// ScanOrder selects how the stepper walks a row.
type ScanOrder int

const (
	// ScanLeftToRight walks every row left to right. Piles lean towards one side.
	ScanLeftToRight ScanOrder = iota
	// ScanRandomRows flips a coin per row to pick the walking direction.
	ScanRandomRows
)

// String returns the flag spelling of the order.
func (o ScanOrder) String() string {
	switch o {
	case ScanLeftToRight:
		return "ltr"
	case ScanRandomRows:
		return "random"
	default:
		return "unknown"
	}
}

// ParseScanOrder accepts the spellings produced by String.
func ParseScanOrder(s string) (ScanOrder, bool) {
	switch s {
	case "ltr":
		return ScanLeftToRight, true
	case "random":
		return ScanRandomRows, true
	default:
		return ScanLeftToRight, false
	}
}

// fallOffsets lists the cells a falling particle tries, in priority order:
// straight down, down-left, down-right.
var fallOffsets = [3][2]int{{0, 1}, {-1, 1}, {1, 1}}

// Stepper advances a grid by one tick of gravity.
type Stepper struct {
	order ScanOrder
	rng   *core.RNG
}

// NewStepper returns a stepper using the given scan order. rng is only
// consulted for ScanRandomRows and may be nil otherwise.
func NewStepper(order ScanOrder, rng *core.RNG) *Stepper {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return &Stepper{order: order, rng: rng}
}

// Order returns the configured scan order.
func (s *Stepper) Order() ScanOrder { return s.order }

// SetOrder switches the scan order for subsequent ticks.
func (s *Stepper) SetOrder(order ScanOrder) { s.order = order }

// Step applies one tick to g and returns how many particles moved.
//
// Rows are visited bottom to top so a particle that moved down this tick is
// never visited again in the same tick.
func (s *Stepper) Step(g *Grid) int {
	w := g.Width()
	moved := 0
	for y := g.Height() - 1; y >= 0; y-- {
		if s.order == ScanRandomRows && s.rng.Bool() {
			for x := w - 1; x >= 0; x-- {
				if s.update(g, x, y) {
					moved++
				}
			}
			continue
		}
		for x := 0; x < w; x++ {
			if s.update(g, x, y) {
				moved++
			}
		}
	}
	return moved
}

func (s *Stepper) update(g *Grid, x, y int) bool {
	p := g.Get(x, y)
	if !falls(p) {
		return false
	}
	for _, off := range fallOffsets {
		tx, ty := x+off[0], y+off[1]
		if !g.IsVacant(tx, ty) {
			continue
		}
		g.Set(x, y, g.Get(tx, ty))
		g.Set(tx, ty, p)
		return true
	}
	return false
}

// falls reports whether kind p is subject to gravity.
func falls(p particle.Kind) bool {
	return p == particle.Sand
}
