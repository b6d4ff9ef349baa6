package parameter

// Build state machine defaults, overridable through config
const (
	// BuildIntervalMin/Max window for the randomized wander period
	// before an entity starts seeking a site (seconds)
	BuildIntervalMin = 5.0
	BuildIntervalMax = 15.0

	// PostBuildIntervalMin/Max window after a completed structure
	BuildIntervalAfterMin = 10.0
	BuildIntervalAfterMax = 25.0

	// BuildRetryInterval shortens the wander period after site search
	// exhausts its attempt budget, so crowded areas retry soon
	BuildRetryInterval = 2.0

	// BuildCooldown after completing a structure (seconds)
	BuildCooldown = 3.0

	// SiteAttempts is the candidate budget per seeking episode
	SiteAttempts = 10

	// SiteRadius bounds candidate offsets around the builder
	SiteRadius = 15.0

	// SiteMargin keeps candidate sites off the world edge
	SiteMargin = 5.0

	// MinSeparationDefault between structure centers
	MinSeparationDefault = 8.0

	// BuildProgressRate converts evolution into progress per second
	// progress' = rate * (0.5 + evolutionScalar)
	BuildProgressRate = 0.4
)

// Structure dimensions per completed build
const (
	StructureHeightMin    = 3.0
	StructureHeightMax    = 12.0
	StructureFootprint    = 2.0
	StructureDomeFlatten  = 0.5
	StructureWallStretch  = 3.0
	StructureTowerStretch = 1.5
)

// Wander movement
const (
	// WanderSpeedMax bounds randomized velocity components (units/sec)
	WanderSpeedMax = 10.0

	// WanderRedirectChance is the per-second probability of velocity
	// re-randomization while wandering
	WanderRedirectChance = 0.6
)
