package sand

import "sandsim/internal/particle"

// PileBias returns the mean column of all sand in g minus column. A pile
// poured at column that settles symmetrically reports a value near zero;
// single-direction scanning drifts it to one side. An empty grid reports 0.
func PileBias(g *Grid, column int) float64 {
	w := g.Width()
	sum, n := 0, 0
	for i, k := range g.Cells() {
		if k != particle.Sand {
			continue
		}
		sum += i % w
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum)/float64(n) - float64(column)
}

// Settle steps g until a tick moves nothing or maxTicks have run. It
// returns the number of ticks in which something moved.
func Settle(s *Stepper, g *Grid, maxTicks int) int {
	for t := 0; t < maxTicks; t++ {
		if s.Step(g) == 0 {
			return t
		}
	}
	return maxTicks
}

// PourResult summarises one poured pile.
type PourResult struct {
	Seed        int64
	Scan        ScanOrder
	Sand        int
	Bias        float64
	SettleTicks int
}

// Pour builds a world from cfg, holds the primary button at the top centre
// for frames frames with each frame long enough to tick, then lets the pile
// settle for up to settleTicks more ticks and measures it.
func Pour(cfg Config, seed int64, frames, settleTicks int) (PourResult, error) {
	cfg.Seed = seed
	cfg.Terrain = false
	w, err := NewWorld("pour", cfg)
	if err != nil {
		return PourResult{}, err
	}
	w.Reset(seed)

	column := w.grid.Width() / 2
	tile := float64(w.grid.TileSize())
	w.MoveTo((float64(column)+0.5)*tile, (float64(w.brush.Radius)+0.5)*tile)
	w.Press(ButtonPrimary)
	frame := (w.clock.Interval() + 1) / 1000
	for i := 0; i < frames; i++ {
		w.Frame(frame)
	}
	w.Release(ButtonPrimary)

	return PourResult{
		Seed:        seed,
		Scan:        cfg.Scan,
		Sand:        w.grid.Count(particle.Sand),
		SettleTicks: Settle(w.stepper, w.grid, settleTicks),
		Bias:        PileBias(w.grid, column),
	}, nil
}
