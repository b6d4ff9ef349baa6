package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/config"
	"github.com/lixenwraith/gridworld/engine"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

func newMovementWorld(t *testing.T) *engine.World {
	t.Helper()
	w := engine.NewWorld(config.Defaults(), 1)
	w.AddSystem(NewMovementSystem(w))
	return w
}

func TestBoundaryReflection(t *testing.T) {
	w := newMovementWorld(t)
	bound := w.Config.World.Bound

	// Primary is exempt from steering, so its velocity is ours to set
	p := w.Primary()
	p.Pos = vmath.Vec3{X: bound - 0.1}
	p.Vel = vmath.Vec3{X: 100}

	w.Update(0.016)

	if p.Pos.X > bound {
		t.Errorf("Expected position inside bound %v, got %v", bound, p.Pos.X)
	}
	if p.Vel.X >= 0 {
		t.Errorf("Expected reflected velocity, got %v", p.Vel.X)
	}
}

func TestReflectionAllAxes(t *testing.T) {
	w := newMovementWorld(t)
	bound := w.Config.World.Bound

	p := w.Primary()
	p.Pos = vmath.Vec3{X: -bound + 0.1, Y: bound - 0.1, Z: -bound + 0.1}
	p.Vel = vmath.Vec3{X: -100, Y: 100, Z: -100}

	w.Update(0.016)

	if p.Pos.X < -bound || p.Pos.Y > bound || p.Pos.Z < -bound {
		t.Errorf("Expected position inside bounds, got %v", p.Pos)
	}
	if p.Vel.X <= 0 || p.Vel.Y >= 0 || p.Vel.Z <= 0 {
		t.Errorf("Expected all three axes reflected, got %v", p.Vel)
	}
}

func TestEntitiesStayInsideBoundsLongRun(t *testing.T) {
	w := newMovementWorld(t)
	bound := w.Config.World.Bound

	for i := 0; i < 5000; i++ {
		w.Update(0.016)
		for _, p := range w.Programs {
			if math.Abs(p.Pos.X) > bound || math.Abs(p.Pos.Y) > bound || math.Abs(p.Pos.Z) > bound {
				t.Fatalf("Program %d escaped at tick %d: %v", p.ID, i, p.Pos)
			}
		}
	}
}

func TestBuildingEntityHoldsStill(t *testing.T) {
	w := newMovementWorld(t)

	var builder *component.ProgramComponent
	for _, p := range w.Programs {
		if p.Build != nil {
			builder = p
			break
		}
	}
	if builder == nil {
		t.Fatal("Expected at least one builder in the roster")
	}

	builder.Build.Phase = component.BuildBuilding
	builder.Vel = vmath.Vec3{}
	before := builder.Pos

	for i := 0; i < 100; i++ {
		w.Update(0.016)
	}
	if builder.Pos != before {
		t.Errorf("Expected builder frozen while building, moved %v", vmath.V3Dist(before, builder.Pos))
	}
}

func TestAwareEntitiesDrift(t *testing.T) {
	w := newMovementWorld(t)

	p := w.Programs[1]
	p.Stage = component.StageAware
	w.Update(0.016)

	if diff := math.Abs(vmath.V3Mag(p.Vel) - parameter.DriftSpeed); diff > 1e-9 {
		t.Errorf("Expected drift speed %v, got %v", parameter.DriftSpeed, vmath.V3Mag(p.Vel))
	}
}
