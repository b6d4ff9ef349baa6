package component

import (
	"github.com/lixenwraith/gridworld/vmath"
)

// BuildPhase names the build-intent state machine states
// Idle -> Wandering -> SeekingSite -> Building -> Idle
type BuildPhase uint8

const (
	BuildIdle BuildPhase = iota
	BuildWandering
	BuildSeeking
	BuildBuilding
)

func (p BuildPhase) String() string {
	switch p {
	case BuildIdle:
		return "idle"
	case BuildWandering:
		return "wandering"
	case BuildSeeking:
		return "seeking"
	case BuildBuilding:
		return "building"
	}
	return "unknown"
}

// BuildComponent carries the per-entity build state machine
// Each phase keeps its timer or budget in its own field so transition
// guards read exactly one value
type BuildComponent struct {
	Phase BuildPhase

	// Idle: seconds until Wandering
	Cooldown float64

	// Wandering: seconds until SeekingSite, sampled once on entry
	WanderLeft float64

	// Seeking: candidate budget left in this episode
	AttemptsLeft int

	// Building: progress in [0,1], site and chosen height
	Progress float64
	Site     vmath.Vec3
	Height   float64

	// Fixed preference assigned at creation
	Preference StructureType
}
