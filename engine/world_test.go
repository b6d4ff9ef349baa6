package engine

import (
	"testing"

	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/config"
	"github.com/lixenwraith/gridworld/parameter"
)

func newTestWorld(seed uint64) *World {
	return NewWorld(config.Defaults(), seed)
}

func TestRosterComposition(t *testing.T) {
	w := newTestWorld(42)

	expected := 1 + parameter.RosterAuto + parameter.RosterStandard + parameter.RosterSentinel
	if len(w.Programs) != expected {
		t.Fatalf("Expected %d programs, got %d", expected, len(w.Programs))
	}

	if w.Primary().Kind != component.KindPrimary {
		t.Errorf("Expected program 0 to be the primary, got %v", w.Primary().Kind)
	}
	if w.Primary().Stage != component.StageTranscendent {
		t.Errorf("Expected primary transcendent, got %v", w.Primary().Stage)
	}

	for _, p := range w.Programs {
		if p.Kind.CanBuild() != (p.Build != nil) {
			t.Errorf("Build component mismatch for kind %v", p.Kind)
		}
		if p.Harmony <= 0 {
			t.Errorf("Expected positive harmony for %v, got %v", p.Kind, p.Harmony)
		}
	}
}

func TestUniqueProgramIDs(t *testing.T) {
	w := newTestWorld(1)
	seen := make(map[component.ProgramID]bool)
	for _, p := range w.Programs {
		if seen[p.ID] {
			t.Errorf("Duplicate program ID %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestResetReplaysSpawns(t *testing.T) {
	w := newTestWorld(42)

	type snapshot struct {
		kind    component.ProgramKind
		pos     [3]float64
		harmony float64
	}
	capture := func() []snapshot {
		out := make([]snapshot, 0, len(w.Programs))
		for _, p := range w.Programs {
			out = append(out, snapshot{p.Kind, [3]float64{p.Pos.X, p.Pos.Y, p.Pos.Z}, p.Harmony})
		}
		return out
	}

	before := capture()

	// Disturb the session, then reset back to the seed
	w.Update(0.016)
	w.Primary().Pos.X = 999
	w.ParticlesVisible = false
	w.Reset()

	after := capture()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Program %d differs after reset: %+v vs %+v", i, before[i], after[i])
		}
	}
	if w.Time.Tick != 0 {
		t.Errorf("Expected tick 0 after reset, got %d", w.Time.Tick)
	}
	if !w.ParticlesVisible {
		t.Error("Expected particle rendering re-enabled after reset")
	}
}

func TestSameSeedSameWorld(t *testing.T) {
	a := newTestWorld(7)
	b := newTestWorld(7)

	for i := range a.Programs {
		if a.Programs[i].Pos != b.Programs[i].Pos {
			t.Errorf("Program %d spawn differs across same-seed worlds", i)
		}
		if a.Programs[i].Harmony != b.Programs[i].Harmony {
			t.Errorf("Program %d harmony differs across same-seed worlds", i)
		}
	}
}

type stubSystem struct {
	name     string
	priority int
	order    *[]string
}

func (s *stubSystem) Name() string  { return s.name }
func (s *stubSystem) Priority() int { return s.priority }
func (s *stubSystem) Update(dt float64) {
	*s.order = append(*s.order, s.name)
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := newTestWorld(1)
	var order []string

	w.AddSystem(&stubSystem{name: "late", priority: 50, order: &order})
	w.AddSystem(&stubSystem{name: "early", priority: 10, order: &order})
	w.AddSystem(&stubSystem{name: "mid", priority: 30, order: &order})

	w.Update(0.016)

	want := []string{"early", "mid", "late"}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("Expected order %v, got %v", want, order)
		}
	}
}

func TestUpdateAdvancesTime(t *testing.T) {
	w := newTestWorld(1)
	w.Update(0.016)
	w.Update(0.016)

	if w.Time.Tick != 2 {
		t.Errorf("Expected tick 2, got %d", w.Time.Tick)
	}
	if w.Time.Elapsed <= 0.03 {
		t.Errorf("Expected elapsed > 0.03, got %v", w.Time.Elapsed)
	}
}
