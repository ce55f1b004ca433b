package sand

import (
	"github.com/aquilax/go-perlin"

	"sandsim/internal/particle"
)

const (
	terrainAlpha = 2.0
	terrainBeta  = 2.0
	terrainOcts  = 3

	duneBase      = 0.12
	duneAmplitude = 0.10
	duneFrequency = 0.015

	ledgeBandTop    = 0.25
	ledgeBandBottom = 0.55
	ledgeThreshold  = 0.35
	ledgeRowSpacing = 12
)

// SeedTerrain lays a band of perlin dunes of sand along the floor of g and,
// when wood is true, scatters horizontal wooden ledges through the middle
// of the grid for poured sand to pile on. Only Air cells are written.
func SeedTerrain(g *Grid, seed int64, wood bool) {
	w, h := g.Width(), g.Height()
	if w == 0 || h == 0 {
		return
	}
	noise := perlin.NewPerlin(terrainAlpha, terrainBeta, terrainOcts, seed)

	for x := 0; x < w; x++ {
		height := duneBase + duneAmplitude*noise.Noise1D(float64(x)*duneFrequency)
		rows := int(height * float64(h))
		for dy := 0; dy < rows && dy < h; dy++ {
			y := h - 1 - dy
			if g.IsVacant(x, y) {
				g.Set(x, y, particle.Sand)
			}
		}
	}

	if !wood {
		return
	}
	top := int(ledgeBandTop * float64(h))
	bottom := int(ledgeBandBottom * float64(h))
	for y := top; y < bottom; y += ledgeRowSpacing {
		for x := 0; x < w; x++ {
			if noise.Noise2D(float64(x)/24, float64(y)/8) > ledgeThreshold && g.IsVacant(x, y) {
				g.Set(x, y, particle.Wood)
			}
		}
	}
}
