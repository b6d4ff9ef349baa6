package system

import (
	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/engine"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

// BuilderSystem drives the build-intent state machine for every entity
// that carries a BuildComponent. One candidate site is evaluated per
// tick while seeking, so a crowded neighborhood spreads the search cost
// across frames instead of spiking one
type BuilderSystem struct {
	world *engine.World
}

func NewBuilderSystem(world *engine.World) *BuilderSystem {
	return &BuilderSystem{world: world}
}

func (s *BuilderSystem) Name() string {
	return "builder"
}

func (s *BuilderSystem) Priority() int {
	return parameter.PriorityBuilder
}

func (s *BuilderSystem) Update(dt float64) {
	for _, p := range s.world.Programs {
		if p.Build == nil {
			continue
		}
		s.step(p, dt)
	}
}

func (s *BuilderSystem) step(p *component.ProgramComponent, dt float64) {
	b := p.Build

	switch b.Phase {
	case component.BuildIdle:
		b.Cooldown -= dt
		if b.Cooldown <= 0 {
			b.Phase = component.BuildWandering
			b.WanderLeft = s.wanderWindow()
		}

	case component.BuildWandering:
		b.WanderLeft -= dt
		if b.WanderLeft <= 0 {
			b.Phase = component.BuildSeeking
			b.AttemptsLeft = parameter.SiteAttempts
		}

	case component.BuildSeeking:
		s.seek(p)

	case component.BuildBuilding:
		s.build(p, dt)
	}
}

// wanderWindow samples the configured wander duration window
func (s *BuilderSystem) wanderWindow() float64 {
	cfg := s.world.Config.Build
	return s.world.Rand.Range(cfg.IntervalMin, cfg.IntervalMax)
}

// seek evaluates one candidate site per tick. A valid site starts the
// build; exhausting the budget drops back to a short wander so the
// entity relocates before retrying
func (s *BuilderSystem) seek(p *component.ProgramComponent) {
	b := p.Build

	if b.AttemptsLeft <= 0 {
		b.Phase = component.BuildWandering
		b.WanderLeft = parameter.BuildRetryInterval
		return
	}
	b.AttemptsLeft--

	bound := s.world.Config.World.Bound - parameter.SiteMargin
	site := vmath.Vec3{
		X: vmath.Clamp(p.Pos.X+s.world.Rand.Range(-parameter.SiteRadius, parameter.SiteRadius), -bound, bound),
		Z: vmath.Clamp(p.Pos.Z+s.world.Rand.Range(-parameter.SiteRadius, parameter.SiteRadius), -bound, bound),
	}
	if !s.world.Structures.CanPlace(site) {
		return
	}

	b.Phase = component.BuildBuilding
	b.Site = site
	b.Progress = 0
	b.Height = s.structureHeight(b.Preference)
	p.Vel = vmath.Vec3{}
}

// structureHeight samples the base height range, then applies the
// per-type vertical stretch
func (s *BuilderSystem) structureHeight(t component.StructureType) float64 {
	h := s.world.Rand.Range(parameter.StructureHeightMin, parameter.StructureHeightMax)
	switch t {
	case component.StructureTower:
		h *= parameter.StructureTowerStretch
	case component.StructureWall:
		h *= parameter.StructureWallStretch
	case component.StructureDome:
		h *= parameter.StructureDomeFlatten
	}
	return h
}

// build advances progress scaled by the builder's evolution, and
// commits the structure on completion. A failed commit (another builder
// claimed the neighborhood first) falls back to a short wander
func (s *BuilderSystem) build(p *component.ProgramComponent, dt float64) {
	b := p.Build

	b.Progress += parameter.BuildProgressRate * (0.5 + p.Evolution) * dt
	if b.Progress < 1.0 {
		return
	}

	ok := s.world.Structures.Add(component.StructureComponent{
		Pos:       b.Site,
		Type:      b.Preference,
		Height:    b.Height,
		Footprint: parameter.StructureFootprint,
		Builder:   p.ID,
		Tick:      s.world.Time.Tick,
	})
	if !ok {
		b.Phase = component.BuildWandering
		b.WanderLeft = parameter.BuildRetryInterval
		return
	}

	if s.world.ParticlesVisible {
		s.world.Particles.Spawn(s.world.Rand, b.Site, component.ParticleBurst, parameter.BurstCount, p.ID)
	}

	b.Phase = component.BuildIdle
	b.Cooldown = parameter.BuildCooldown +
		s.world.Rand.Range(parameter.BuildIntervalAfterMin, parameter.BuildIntervalAfterMax)
}
