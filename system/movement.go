package system

import (
	"math"

	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/engine"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

// MovementSystem integrates every entity's velocity, steers the
// autonomous roster (random wander below the aware band, orbital drift
// above it) and reflects anything that crosses the world boundary
type MovementSystem struct {
	world *engine.World
}

func NewMovementSystem(world *engine.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Update(dt float64) {
	bound := s.world.Config.World.Bound
	elapsed := s.world.Time.Elapsed

	for _, p := range s.world.Programs {
		if p.Kind != component.KindPrimary && !isBuilding(p) {
			s.steer(p, elapsed, dt)
		}

		p.Pos = vmath.V3Add(p.Pos, vmath.V3Scale(p.Vel, dt))
		reflect(p, bound)
	}
}

func isBuilding(p *component.ProgramComponent) bool {
	return p.Build != nil && p.Build.Phase == component.BuildBuilding
}

// steer picks the autonomous velocity for this tick. Entities below
// the aware band wander with occasional random redirects; at aware and
// above they home toward a per-entity point orbiting the origin
func (s *MovementSystem) steer(p *component.ProgramComponent, elapsed, dt float64) {
	if p.Stage >= component.StageAware {
		phase := float64(p.ID) * parameter.Phi
		t := elapsed*parameter.DriftSpeed/parameter.DriftOrbitRadiusXZ + phase
		target := vmath.Vec3{
			X: parameter.DriftOrbitRadiusXZ * math.Cos(t),
			Y: parameter.DriftOrbitRadiusY * math.Sin(t*0.5),
			Z: parameter.DriftOrbitRadiusXZ * math.Sin(t),
		}
		dir := vmath.V3Normalize(vmath.V3Sub(target, p.Pos))
		p.Vel = vmath.V3Scale(dir, parameter.DriftSpeed)
		return
	}

	if s.world.Rand.Chance(parameter.WanderRedirectChance * dt) {
		p.Vel = vmath.Vec3{
			X: s.world.Rand.Range(-parameter.WanderSpeedMax, parameter.WanderSpeedMax),
			Y: s.world.Rand.Range(-parameter.WanderSpeedMax, parameter.WanderSpeedMax) * 0.5,
			Z: s.world.Rand.Range(-parameter.WanderSpeedMax, parameter.WanderSpeedMax),
		}
	}
}

// reflect bounces the entity back inside the cubic boundary, flipping
// the velocity component on the crossed axis
func reflect(p *component.ProgramComponent, bound float64) {
	if p.Pos.X > bound {
		p.Pos.X = bound
		p.Vel.X = -p.Vel.X
	} else if p.Pos.X < -bound {
		p.Pos.X = -bound
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y > bound {
		p.Pos.Y = bound
		p.Vel.Y = -p.Vel.Y
	} else if p.Pos.Y < -bound {
		p.Pos.Y = -bound
		p.Vel.Y = -p.Vel.Y
	}
	if p.Pos.Z > bound {
		p.Pos.Z = bound
		p.Vel.Z = -p.Vel.Z
	} else if p.Pos.Z < -bound {
		p.Pos.Z = -bound
		p.Vel.Z = -p.Vel.Z
	}
}
