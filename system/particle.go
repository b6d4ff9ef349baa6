package system

import (
	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/engine"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

// ParticleSystem emits trail segments behind moving, evolved entities
// and advances the pool. Bursts are spawned by the builder at the
// moment of structure completion, not here
type ParticleSystem struct {
	world *engine.World
}

func NewParticleSystem(world *engine.World) *ParticleSystem {
	return &ParticleSystem{world: world}
}

func (s *ParticleSystem) Name() string {
	return "particle"
}

func (s *ParticleSystem) Priority() int {
	return parameter.PriorityParticle
}

func (s *ParticleSystem) Update(dt float64) {
	if s.world.ParticlesVisible {
		s.emitTrails(dt)
	}
	s.world.Particles.Advance(dt)
}

// emitTrails sheds one trail particle per emit interval for entities
// above the trail threshold that are actually moving
func (s *ParticleSystem) emitTrails(dt float64) {
	for _, p := range s.world.Programs {
		p.TrailTimer -= dt
		if p.TrailTimer > 0 {
			continue
		}
		if p.Evolution < parameter.TrailEmitThreshold {
			continue
		}
		if vmath.V3MagSq(p.Vel) < 0.01 {
			continue
		}

		p.TrailTimer = parameter.TrailEmitInterval
		s.world.Particles.Spawn(s.world.Rand, p.Pos, component.ParticleTrail, 1, p.ID)
	}
}
