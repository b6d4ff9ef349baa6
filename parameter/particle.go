package parameter

// Particle pool
const (
	// ParticleCapacityDefault is the pool ceiling; spawn over capacity
	// is refused silently. The single back-pressure point of the sim
	ParticleCapacityDefault = 100
)

// Trail particles shed by moving, evolved entities
const (
	TrailEmitThreshold = 0.5  // minimum evolution scalar to shed trail
	TrailEmitInterval  = 0.15 // seconds between trail segments
	TrailLifeMin       = 0.4
	TrailLifeMax       = 0.8
	TrailSpeedMax      = 1.5 // residual drift (units/sec)
)

// Burst particles on structure completion
const (
	BurstCount    = 12
	BurstLifeMin  = 0.8
	BurstLifeMax  = 1.6
	BurstSpeedMin = 6.0
	BurstSpeedMax = 14.0
	BurstConeHalf = 60.0 // half-angle of the upward cone (degrees)

	// BurstGravity pulls bursts back down; trails are gravity-free
	BurstGravity = 20.0
)
