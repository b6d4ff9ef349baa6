package component

import (
	"github.com/lixenwraith/gridworld/vmath"
)

// CameraMode is the two-state camera behavior
type CameraMode uint8

const (
	CameraOrbit CameraMode = iota
	CameraFirstPerson
)

func (m CameraMode) String() string {
	if m == CameraFirstPerson {
		return "first-person"
	}
	return "orbit"
}

// CameraState is owned by the camera rig and mutated only through its
// input handling; everything downstream reads it by value
type CameraState struct {
	Mode CameraMode

	// Pos is recomputed every tick: in orbit mode from target, radius
	// and the orbit angles; in first person from accumulated movement
	Pos vmath.Vec3

	// First-person look angles (degrees)
	Yaw   float64
	Pitch float64

	// Orbit angles around the followed target (degrees) and radius
	OrbitYaw    float64
	OrbitPitch  float64
	OrbitRadius float64

	// FOV in degrees and the linear zoom factor
	FOV  float64
	Zoom float64
}

// ViewYawPitch returns the view yaw/pitch pair for the current mode
// Orbit angles place the camera on the sphere around the target, so
// the view direction points back along that offset: yaw flipped 180
// degrees, pitch negated. First person looks where its angles say
func (c *CameraState) ViewYawPitch() (yaw, pitch float64) {
	if c.Mode == CameraFirstPerson {
		return c.Yaw, c.Pitch
	}
	return c.OrbitYaw + 180, -c.OrbitPitch
}
