package app

import (
	"flag"
	"strconv"
	"strings"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Sim        string
	Seed       int64
	Tile       int
	IntervalMs float64
	Scan       string
	Terrain    bool
	Carry      bool
	Sound      bool
	HUDWidth   int
	Overrides  KVList
}

// NewConfig returns a Config populated with sensible defaults. Zero values
// for Tile, IntervalMs and Scan defer to the simulation's own defaults.
func NewConfig() *Config {
	return &Config{Sim: "sand", Seed: 42, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (sand, sand-classic)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Tile, "tile", c.Tile, "window pixels per grid cell")
	fs.Float64Var(&c.IntervalMs, "interval", c.IntervalMs, "milliseconds between simulation ticks")
	fs.StringVar(&c.Scan, "scan", c.Scan, "row scan order: ltr or random")
	fs.BoolVar(&c.Terrain, "terrain", c.Terrain, "seed generated dunes and ledges on reset")
	fs.BoolVar(&c.Carry, "carry", c.Carry, "carry scheduler overshoot into the next tick")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a tone when the brush element changes")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels, 0 to hide")
	fs.Var(&c.Overrides, "set", "simulation setting in key=value form (repeatable)")
}

// SimConfig builds the key/value map handed to the simulation factory.
// Explicit -set overrides win over the dedicated flags.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Tile > 0 {
		m["tile"] = strconv.Itoa(c.Tile)
	}
	if c.IntervalMs > 0 {
		m["interval_ms"] = strconv.FormatFloat(c.IntervalMs, 'f', -1, 64)
	}
	if c.Scan != "" {
		m["scan"] = c.Scan
	}
	if c.Terrain {
		m["terrain"] = "true"
	}
	if c.Carry {
		m["carry"] = "true"
	}
	for _, kv := range c.Overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		m[parts[0]] = parts[1]
	}
	return m
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one occurrence of the flag.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
