package system

import (
	"math"

	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/engine"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

// CameraSystem is the rig: it owns the camera state machine and is the
// only mutator of CameraState. Position is recomputed from mode plus
// accumulated angles/radius every tick, so zero-deltas never drift it
type CameraSystem struct {
	world *engine.World

	// First-person translation base, advanced by movement input
	fpPos vmath.Vec3
}

func NewCameraSystem(world *engine.World) *CameraSystem {
	return &CameraSystem{world: world}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Reset() {
	s.fpPos = vmath.Vec3{}
}

func (s *CameraSystem) Update(dt float64) {
	in := s.world.Input

	if in.ToggleCamera {
		s.toggle()
	}

	s.applyLookDelta(in.LookDX, in.LookDY)
	s.applyZoom(in.Scroll)
	s.applyMovement(in.Move, dt)

	s.recomputePosition()
}

// toggle flips the active mode, preserving the current position
// Pending look accumulation died with this tick's drain; angles keep
// their values so the view does not snap
func (s *CameraSystem) toggle() {
	cam := s.world.Camera
	if cam.Mode == component.CameraOrbit {
		cam.Mode = component.CameraFirstPerson
		// Subtract eye height so the recomputed position matches the
		// orbit position the viewer just left
		s.fpPos = vmath.Vec3{X: cam.Pos.X, Y: cam.Pos.Y - parameter.EyeHeight, Z: cam.Pos.Z}
	} else {
		cam.Mode = component.CameraOrbit
	}
}

// applyLookDelta adjusts yaw/pitch in first person (mouse-look) or the
// orbit angles in orbit mode. Pitch clamps guard the gimbal flip
func (s *CameraSystem) applyLookDelta(dx, dy float64) {
	cam := s.world.Camera
	cfg := s.world.Config.Camera

	switch cam.Mode {
	case component.CameraFirstPerson:
		cam.Yaw += dx * parameter.LookSensitivity
		cam.Pitch -= dy * parameter.LookSensitivity
		cam.Pitch = vmath.Clamp(cam.Pitch, -cfg.PitchLimit, cfg.PitchLimit)

	case component.CameraOrbit:
		cam.OrbitYaw += dx * parameter.OrbitLookFactor
		cam.OrbitPitch += dy * parameter.OrbitLookFactor
		cam.OrbitPitch = vmath.Clamp(cam.OrbitPitch, -parameter.OrbitPitchLimit, parameter.OrbitPitchLimit)
	}
}

// applyZoom changes orbit radius in orbit mode and FOV in first person,
// both clamped to their configured ranges
func (s *CameraSystem) applyZoom(delta float64) {
	if delta == 0 {
		return
	}
	cam := s.world.Camera
	cfg := s.world.Config.Camera

	switch cam.Mode {
	case component.CameraOrbit:
		cam.OrbitRadius += delta * parameter.OrbitZoomStep
		cam.OrbitRadius = vmath.Clamp(cam.OrbitRadius, cfg.OrbitRadiusMin, cfg.OrbitRadiusMax)

	case component.CameraFirstPerson:
		cam.FOV -= delta * parameter.FOVZoomStep
		cam.FOV = vmath.Clamp(cam.FOV, cfg.FOVMin, cfg.FOVMax)
	}
}

// applyMovement translates the first-person camera along its own
// forward/right basis; in orbit mode movement redirects the followed
// entity instead, the camera itself never translates directly
func (s *CameraSystem) applyMovement(move vmath.Vec3, dt float64) {
	cam := s.world.Camera

	switch cam.Mode {
	case component.CameraFirstPerson:
		if move == (vmath.Vec3{}) {
			return
		}
		yaw := vmath.Radians(cam.Yaw)
		forward := vmath.Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
		right := vmath.Vec3{X: math.Cos(yaw), Z: -math.Sin(yaw)}

		step := vmath.V3Scale(forward, move.Z)
		step = vmath.V3Add(step, vmath.V3Scale(right, move.X))
		step.Y += move.Y
		step = vmath.V3ClampMagnitude(step, 1.0)

		s.fpPos = vmath.V3Add(s.fpPos, vmath.V3Scale(step, parameter.MoveSpeed*dt))

	case component.CameraOrbit:
		primary := s.world.Primary()
		primary.Vel = vmath.V3Scale(vmath.V3ClampMagnitude(move, 1.0), parameter.MoveSpeed)
	}
}

// recomputePosition derives the camera position for this tick
// Orbit: spherical offset from the followed target plus pivot lift
// First person: accumulated translation plus eye height
func (s *CameraSystem) recomputePosition() {
	cam := s.world.Camera

	switch cam.Mode {
	case component.CameraOrbit:
		target := s.world.Primary().Pos
		yaw := vmath.Radians(cam.OrbitYaw)
		pitch := vmath.Radians(cam.OrbitPitch)

		cam.Pos = vmath.Vec3{
			X: target.X + cam.OrbitRadius*math.Cos(pitch)*math.Sin(yaw),
			Y: target.Y + cam.OrbitRadius*math.Sin(pitch) + parameter.OrbitHeightOffset,
			Z: target.Z + cam.OrbitRadius*math.Cos(pitch)*math.Cos(yaw),
		}

	case component.CameraFirstPerson:
		cam.Pos = vmath.Vec3{X: s.fpPos.X, Y: s.fpPos.Y + parameter.EyeHeight, Z: s.fpPos.Z}
	}
}
