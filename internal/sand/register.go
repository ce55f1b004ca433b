package sand

import "sandsim/internal/core"

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		return newSim("sand", FromMap(DefaultConfig(), cfg))
	})
	core.Register("sand-classic", func(cfg map[string]string) (core.Sim, error) {
		return newSim("sand-classic", FromMap(ClassicConfig(), cfg))
	})
}

func newSim(name string, cfg Config) (core.Sim, error) {
	w, err := NewWorld(name, cfg)
	if err != nil {
		return nil, err
	}
	return w, nil
}
