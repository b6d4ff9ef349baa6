package render

import (
	"math"

	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

// CellAspect compensates terminal cells being roughly twice as tall as
// wide, so world circles stay round on screen
const CellAspect = 2.0

// Projection holds the per-frame view parameters
// Build one per frame, project many points through it
type Projection struct {
	camPos   vmath.Vec3
	sinYaw   float64
	cosYaw   float64
	sinPitch float64
	cosPitch float64

	screenDist float64
	halfW      float64
	halfH      float64
	zoom       float64

	// fourDWeight scales how far the fourth axis folds into view
	// depth; zero renders the plain 3D slice
	fourDWeight float64
}

// NewProjection captures the camera for one frame of projection
func NewProjection(cam *component.CameraState, width, height int, fourDWeight float64) Projection {
	yaw, pitch := cam.ViewYawPitch()
	yawRad := vmath.Radians(yaw)
	pitchRad := vmath.Radians(pitch)

	fov := vmath.Radians(cam.FOV)
	halfH := float64(height) / 2.0

	return Projection{
		camPos:      cam.Pos,
		sinYaw:      math.Sin(yawRad),
		cosYaw:      math.Cos(yawRad),
		sinPitch:    math.Sin(pitchRad),
		cosPitch:    math.Cos(pitchRad),
		screenDist:  halfH / math.Tan(fov/2.0),
		halfW:       float64(width) / 2.0,
		halfH:       halfH,
		zoom:        cam.Zoom,
		fourDWeight: fourDWeight,
	}
}

// Project maps a world-space 4D point to screen cell coordinates plus
// view depth. ok is false for points at or behind the near epsilon and
// for any non-finite input; callers can rely on never seeing NaN
func (pr *Projection) Project(p vmath.Vec4) (sx, sy int, depth float64, ok bool) {
	if !finite(p.X) || !finite(p.Y) || !finite(p.Z) || !finite(p.W) {
		return 0, 0, 0, false
	}

	d := vmath.V3Sub(p.XYZ(), pr.camPos)

	// Yaw about Y, then pitch about the camera's X axis
	cx := d.X*pr.cosYaw - d.Z*pr.sinYaw
	cz := d.X*pr.sinYaw + d.Z*pr.cosYaw
	cy := d.Y*pr.cosPitch - cz*pr.sinPitch
	cz = d.Y*pr.sinPitch + cz*pr.cosPitch

	// Fourth axis folds into view depth: positive W recedes, negative
	// approaches. Zero weight degrades to the plain 3D slice
	cz += pr.fourDWeight * p.W

	if cz < parameter.ProjectionEpsilon {
		return 0, 0, 0, false
	}

	scale := pr.screenDist * pr.zoom / cz
	fx := pr.halfW + cx*scale*CellAspect
	fy := pr.halfH - cy*scale

	if !finite(fx) || !finite(fy) {
		return 0, 0, 0, false
	}
	return int(fx), int(fy), cz, true
}

// Project3 projects a plain 3D point with a zero fourth coordinate
func (pr *Projection) Project3(p vmath.Vec3) (sx, sy int, depth float64, ok bool) {
	return pr.Project(vmath.V4From3(p, 0))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
