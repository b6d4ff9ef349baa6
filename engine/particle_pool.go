package engine

import (
	"math"

	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

// ParticlePool owns every live particle
// Fixed capacity is the sim's one back-pressure mechanism: spawns over
// the ceiling are refused silently, there is no queueing
type ParticlePool struct {
	items    []component.ParticleComponent
	capacity int
}

func NewParticlePool(capacity int) *ParticlePool {
	return &ParticlePool{
		items:    make([]component.ParticleComponent, 0, capacity),
		capacity: capacity,
	}
}

// Spawn appends up to count particles of the kind at origin
// Velocity is randomized within the kind's cone, lifetime within the
// kind's range. Returns how many were actually created
func (p *ParticlePool) Spawn(rng *vmath.Rand, origin vmath.Vec3, kind component.ParticleKind, count int, owner component.ProgramID) int {
	created := 0
	for i := 0; i < count; i++ {
		if len(p.items) >= p.capacity {
			break
		}
		p.items = append(p.items, newParticle(rng, origin, kind, owner))
		created++
	}
	return created
}

func newParticle(rng *vmath.Rand, origin vmath.Vec3, kind component.ParticleKind, owner component.ProgramID) component.ParticleComponent {
	var vel vmath.Vec3
	var life float64

	switch kind {
	case component.ParticleBurst:
		// Upward cone: azimuth uniform, elevation within the half-angle
		azimuth := rng.Range(0, 2*math.Pi)
		elev := vmath.Radians(90 - rng.Range(0, parameter.BurstConeHalf))
		speed := rng.Range(parameter.BurstSpeedMin, parameter.BurstSpeedMax)
		horiz := math.Cos(elev) * speed
		vel = vmath.Vec3{
			X: math.Cos(azimuth) * horiz,
			Y: math.Sin(elev) * speed,
			Z: math.Sin(azimuth) * horiz,
		}
		life = rng.Range(parameter.BurstLifeMin, parameter.BurstLifeMax)

	default: // ParticleTrail
		vel = vmath.Vec3{
			X: rng.Range(-parameter.TrailSpeedMax, parameter.TrailSpeedMax),
			Y: rng.Range(-parameter.TrailSpeedMax, parameter.TrailSpeedMax),
			Z: rng.Range(-parameter.TrailSpeedMax, parameter.TrailSpeedMax),
		}
		life = rng.Range(parameter.TrailLifeMin, parameter.TrailLifeMax)
	}

	return component.ParticleComponent{
		Pos:     origin,
		Vel:     vel,
		Kind:    kind,
		Life:    life,
		MaxLife: life,
		Weight:  1.0,
		Owner:   owner,
	}
}

// Advance integrates positions, decays weights and compacts out dead
// particles in the same O(n) pass
func (p *ParticlePool) Advance(dt float64) {
	live := p.items[:0]
	for i := range p.items {
		pt := p.items[i]

		pt.Life -= dt
		if pt.Life <= 0 {
			continue
		}

		if pt.Kind == component.ParticleBurst {
			pt.Vel.Y -= parameter.BurstGravity * dt
		}
		pt.Pos = vmath.V3Add(pt.Pos, vmath.V3Scale(pt.Vel, dt))
		pt.Weight = pt.Life / pt.MaxLife

		live = append(live, pt)
	}
	p.items = live
}

// All exposes live particles for read-only iteration
func (p *ParticlePool) All() []component.ParticleComponent {
	return p.items
}

func (p *ParticlePool) Live() int {
	return len(p.items)
}

func (p *ParticlePool) Capacity() int {
	return p.capacity
}

// Reset drops every particle for a new session
func (p *ParticlePool) Reset() {
	p.items = p.items[:0]
}
