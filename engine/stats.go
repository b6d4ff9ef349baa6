package engine

import (
	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/vmath"
)

// Stats is the per-frame HUD snapshot handed to the frontend
// Immutable by construction: plain values copied out of the world
type Stats struct {
	Tick          uint64
	FieldStrength float64
	Particles     int
	Structures    int
	CameraMode    component.CameraMode
	PrimaryPos    vmath.Vec3
	PrimaryStage  component.Stage
}

func (w *World) Stats() Stats {
	p := w.Primary()
	return Stats{
		Tick:          w.Time.Tick,
		FieldStrength: w.Field.Strength,
		Particles:     w.Particles.Live(),
		Structures:    w.Structures.Count(),
		CameraMode:    w.Camera.Mode,
		PrimaryPos:    p.Pos,
		PrimaryStage:  p.Stage,
	}
}
