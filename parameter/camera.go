package parameter

// Camera clamp defaults, overridable through config
const (
	// OrbitRadiusMin/Max bound the third-person orbit distance
	OrbitRadiusMin     = 10.0
	OrbitRadiusMax     = 150.0
	OrbitRadiusDefault = 50.0

	// OrbitPitchLimit bounds the orbit elevation angle (degrees)
	OrbitPitchLimit = 80.0

	// FirstPersonPitchLimit avoids gimbal flip in free look (degrees)
	FirstPersonPitchLimit = 89.0

	// FOVMin/Max/Default in degrees; scroll adjusts FOV in first person
	FOVMin     = 30.0
	FOVMax     = 120.0
	FOVDefault = 75.0

	// OrbitZoomStep is orbit radius change per scroll unit
	OrbitZoomStep = 5.0

	// FOVZoomStep is FOV change per scroll unit in first person
	FOVZoomStep = 2.0

	// LookSensitivity converts look-delta device units to degrees
	LookSensitivity = 0.2

	// OrbitLookFactor converts look-delta to orbit angle degrees
	OrbitLookFactor = 0.3

	// MoveSpeed is first-person translation speed (units/sec)
	MoveSpeed = 50.0

	// EyeHeight lifts the first-person camera above the followed entity
	EyeHeight = 2.0

	// OrbitHeightOffset raises the orbit pivot above the target
	OrbitHeightOffset = 10.0
)

// FourDWeightDefault folds the W coordinate into camera depth
// Zero degrades the projection to plain 3D
const FourDWeightDefault = 0.0

// ProjectionEpsilon is the near-plane cutoff; camera-space depth at or
// below it marks the point degenerate and it is culled, never divided
const ProjectionEpsilon = 1.0
