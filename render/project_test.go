package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

func testCamera() *component.CameraState {
	return &component.CameraState{
		Mode: component.CameraFirstPerson,
		Pos:  vmath.Vec3{Z: -20},
		FOV:  parameter.FOVDefault,
		Zoom: 1.0,
	}
}

func TestProjectCenterPoint(t *testing.T) {
	pr := NewProjection(testCamera(), 80, 24, 0)

	// A point straight ahead lands at screen center
	x, y, depth, ok := pr.Project3(vmath.Vec3{})
	if !ok {
		t.Fatal("Expected projection to succeed")
	}
	if x != 40 || y != 12 {
		t.Errorf("Expected center (40,12), got (%d,%d)", x, y)
	}
	if math.Abs(depth-20.0) > 1e-9 {
		t.Errorf("Expected depth 20, got %v", depth)
	}
}

func TestProjectDeterminism(t *testing.T) {
	pr := NewProjection(testCamera(), 120, 40, 0)
	p := vmath.Vec4{X: 3, Y: -2, Z: 10, W: 0}

	x1, y1, d1, _ := pr.Project(p)
	x2, y2, d2, _ := pr.Project(p)
	if x1 != x2 || y1 != y2 || d1 != d2 {
		t.Error("Expected identical results for identical input")
	}
}

func TestProjectCullsBehindCamera(t *testing.T) {
	pr := NewProjection(testCamera(), 80, 24, 0)

	if _, _, _, ok := pr.Project3(vmath.Vec3{Z: -30}); ok {
		t.Error("Expected point behind camera to be culled")
	}
	// At the camera plane, inside the near epsilon
	if _, _, _, ok := pr.Project3(vmath.Vec3{Z: -20}); ok {
		t.Error("Expected point at camera to be culled")
	}
}

func TestProjectRejectsNonFinite(t *testing.T) {
	pr := NewProjection(testCamera(), 80, 24, 0.5)

	bad := []vmath.Vec4{
		{X: math.NaN()},
		{Y: math.Inf(1)},
		{Z: math.Inf(-1)},
		{W: math.NaN()},
	}
	for _, p := range bad {
		if _, _, _, ok := pr.Project(p); ok {
			t.Errorf("Expected non-finite input %v to be rejected", p)
		}
	}
}

func TestDepthIncreasesWithDistance(t *testing.T) {
	pr := NewProjection(testCamera(), 80, 24, 0)

	_, _, near, ok1 := pr.Project3(vmath.Vec3{Z: 0})
	_, _, far, ok2 := pr.Project3(vmath.Vec3{Z: 30})
	if !ok1 || !ok2 {
		t.Fatal("Expected both projections to succeed")
	}
	if far <= near {
		t.Errorf("Expected farther point deeper, got near %v far %v", near, far)
	}
}

func TestFourDWeightShiftsDepth(t *testing.T) {
	flat := NewProjection(testCamera(), 80, 24, 0)
	folded := NewProjection(testCamera(), 80, 24, 0.5)

	p := vmath.Vec4{X: 10, Y: 5, Z: 10, W: 2}

	_, _, fd, ok1 := flat.Project(p)
	_, _, wd, ok2 := folded.Project(p)
	if !ok1 || !ok2 {
		t.Fatal("Expected both projections to succeed")
	}
	// W folds into view depth scaled by the weight
	if diff := wd - fd - 0.5*2; math.Abs(diff) > 1e-9 {
		t.Errorf("Expected depth shifted by weight*W=1, got %v -> %v", fd, wd)
	}

	// A negative W deep enough to cross the near epsilon is culled
	behind := vmath.Vec4{X: 10, Y: 5, Z: 10, W: -100}
	if _, _, _, ok := folded.Project(behind); ok {
		t.Error("Expected heavily negative W to fold behind the camera")
	}

	// Zero W must render identically under any weight
	q := vmath.Vec4{X: 10, Y: 5, Z: 10, W: 0}
	ax, ay, ad, _ := flat.Project(q)
	bx, by, bd, _ := folded.Project(q)
	if ax != bx || ay != by || ad != bd {
		t.Error("Expected W=0 to be weight-independent")
	}
}

func TestZoomMagnifies(t *testing.T) {
	cam := testCamera()
	base := NewProjection(cam, 80, 24, 0)

	cam.Zoom = 2.0
	zoomed := NewProjection(cam, 80, 24, 0)

	p := vmath.Vec3{X: 5, Z: 0}
	bx, _, _, _ := base.Project3(p)
	zx, _, _, _ := zoomed.Project3(p)

	if math.Abs(float64(zx)-40) <= math.Abs(float64(bx)-40) {
		t.Errorf("Expected zoom to push offsets outward: base %d zoomed %d", bx, zx)
	}
}
