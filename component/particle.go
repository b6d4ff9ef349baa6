package component

import (
	"github.com/lixenwraith/gridworld/vmath"
)

// ParticleKind selects spawn cone, lifetime range and gravity
type ParticleKind uint8

const (
	ParticleTrail ParticleKind = iota
	ParticleBurst
)

// ParticleComponent is one short-lived visual effect
// Owned exclusively by the particle pool; removed exactly when Life
// reaches zero
type ParticleComponent struct {
	Pos vmath.Vec3
	Vel vmath.Vec3

	Kind ParticleKind

	// Life remaining and the initial span it decays from
	Life    float64
	MaxLife float64

	// Weight is the alpha/size scalar handed to the renderer,
	// decayed proportionally to the remaining-lifetime fraction
	Weight float64

	// Owner is the emitting program, zero for world-spawned effects
	Owner ProgramID
}
