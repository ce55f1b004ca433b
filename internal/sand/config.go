package sand

import (
	"strconv"

	"sandsim/internal/core"
)

// Config controls grid sizing, scheduling and the rule variant.
type Config struct {
	WindowWidth  int
	WindowHeight int
	TileSize     int
	MaxCells     int

	TickIntervalMs float64
	CarryOver      bool

	Scan    ScanOrder
	Wood    bool
	Terrain bool

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		WindowWidth:    1600,
		WindowHeight:   1000,
		TileSize:       5,
		MaxCells:       DefaultMaxCells,
		TickIntervalMs: core.DefaultIntervalMs,
		Scan:           ScanRandomRows,
		Wood:           true,
		Seed:           42,
	}
}

// ClassicConfig returns the historical variant: single-direction scanning
// and no wood.
func ClassicConfig() Config {
	c := DefaultConfig()
	c.Scan = ScanLeftToRight
	c.Wood = false
	return c
}

// FromMap overlays flag-style key/value pairs on base. Unparseable or
// out-of-range values keep the base setting.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["window_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.WindowWidth = parsed
		}
	}
	if v, ok := cfg["window_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.WindowHeight = parsed
		}
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := cfg["max_cells"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxCells = parsed
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TickIntervalMs = parsed
		}
	}
	if v, ok := cfg["carry"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.CarryOver = parsed
		}
	}
	if v, ok := cfg["scan"]; ok {
		if parsed, ok := ParseScanOrder(v); ok {
			c.Scan = parsed
		}
	}
	if v, ok := cfg["wood"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wood = parsed
		}
	}
	if v, ok := cfg["terrain"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Terrain = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
