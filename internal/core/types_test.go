package core

import (
	"slices"
	"testing"
)

type stubSim struct{ steps int }

func (s *stubSim) Name() string   { return "stub" }
func (s *stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (s *stubSim) Reset(int64)    { s.steps = 0 }
func (s *stubSim) Step()          { s.steps++ }
func (s *stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return &stubSim{}, nil })
	Register("nil-factory", nil)
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty names must not register")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factories must not register")
	}

	Register("stub", func(map[string]string) (Sim, error) { return &stubSim{}, nil })
	sim, err := New("stub", nil)
	if err != nil || sim.Name() != "stub" {
		t.Fatalf("New(stub) = %v, %v", sim, err)
	}
	if !slices.Contains(SimNames(), "stub") {
		t.Fatalf("SimNames missing stub: %v", SimNames())
	}
	if _, err := New("missing", nil); err == nil {
		t.Fatal("unknown sims should fail")
	}
}
