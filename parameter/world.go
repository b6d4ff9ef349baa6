package parameter

// World defaults, overridable through config
const (
	// WorldBoundDefault is the half-extent of the cubic world volume
	WorldBoundDefault = 50.0

	// Fixed roster created at world init; entities never despawn
	RosterAuto     = 2
	RosterStandard = 8
	RosterSentinel = 3

	// Spawn ranges at world init
	SpawnRangeXZ       = 40.0
	SpawnRangeY        = 10.0
	AutoSpawnRangeXZ   = 20.0
	AutoSpawnRangeYMax = 15.0
)

// Grid geometry
const (
	GridSpacing   = 25.0
	GridRange     = 100.0
	GridLineSpan  = 50.0
	GridMajorStep = 50.0
)
