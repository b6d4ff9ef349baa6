package system

import (
	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/engine"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

// EvolutionSystem advances the shared field and grows every entity's
// evolution scalar from it. The field strength is accumulated from the
// roster mean before entities read it, so feedback lags by zero ticks
type EvolutionSystem struct {
	world *engine.World
}

func NewEvolutionSystem(world *engine.World) *EvolutionSystem {
	return &EvolutionSystem{world: world}
}

func (s *EvolutionSystem) Name() string {
	return "evolution"
}

func (s *EvolutionSystem) Priority() int {
	return parameter.PriorityEvolution
}

func (s *EvolutionSystem) Update(dt float64) {
	field := s.world.Field
	field.Advance(dt)

	mean := 0.0
	for _, p := range s.world.Programs {
		mean += p.Evolution
	}
	if n := len(s.world.Programs); n > 0 {
		mean /= float64(n)
	}
	field.Accumulate(mean)

	osc := field.Oscillator()
	rate := s.world.Config.Evolution.Rate

	for _, p := range s.world.Programs {
		aura := s.structureBoost(p.Pos)
		gain := rate * p.Harmony * osc * dt *
			(1.0 + field.Strength + aura) *
			p.Kind.EvolutionMultiplier()

		p.Evolution = vmath.Clamp01(p.Evolution + gain)

		// Stage only ratchets upward within a session
		if next := component.StageForScalar(p.Evolution); next > p.Stage {
			p.Stage = next
		}
	}
}

// structureBoost sums the aura contribution of nearby structures,
// falling off linearly to zero at the aura radius
func (s *EvolutionSystem) structureBoost(pos vmath.Vec3) float64 {
	boost := 0.0
	for _, st := range s.world.Structures.All() {
		d := vmath.V3DistXZ(pos, st.Pos)
		if d >= parameter.StructureAuraRadius {
			continue
		}
		boost += parameter.StructureAuraBoost * (1.0 - d/parameter.StructureAuraRadius)
	}
	return boost
}
