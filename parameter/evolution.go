package parameter

// Evolution stage thresholds partition the scalar into five bands
// Derived stage only ever ratchets upward within a session
const (
	StageThresholdStirring     = 0.25
	StageThresholdAware        = 0.50
	StageThresholdResonant     = 0.75
	StageThresholdTranscendent = 0.95
)

// Kind multipliers scale the per-tick evolution gain
const (
	KindMultiplierPrimary  = 1.0
	KindMultiplierAuto     = Phi
	KindMultiplierStandard = 1.0
	KindMultiplierSentinel = 0.8
)

// EvolutionRateDefault is the base per-second gain before oscillator,
// field feedback and kind multiplier are applied
const EvolutionRateDefault = 0.2

// Harmony ranges: per-entity rate factor sampled once at creation
// The primary always carries the fixed 1/Phi factor
const (
	HarmonyAutoMin     = 0.5
	HarmonyAutoMax     = 0.8
	HarmonyStandardMin = 0.1
	HarmonyStandardMax = 0.3
	HarmonySentinelMin = 0.1
	HarmonySentinelMax = 0.2
	HarmonyPrimary     = 1.0 / Phi
)

// Structure aura: standing near a structure raises the local
// evolution rate, falling off linearly with ground distance
const (
	StructureAuraRadius = 20.0
	StructureAuraBoost  = 0.05
)

// Purposeful drift: entities at or above the aware band steer toward a
// slowly orbiting target instead of pure random wander
const (
	DriftOrbitRadiusXZ = 30.0
	DriftOrbitRadiusY  = 10.0
	DriftSpeed         = 15.0
)
