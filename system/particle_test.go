package system

import (
	"testing"

	"github.com/lixenwraith/gridworld/config"
	"github.com/lixenwraith/gridworld/engine"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

func newParticleWorld(t *testing.T) *engine.World {
	t.Helper()
	w := engine.NewWorld(config.Defaults(), 1)
	w.AddSystem(NewParticleSystem(w))
	return w
}

func TestTrailsRequireEvolutionAndMotion(t *testing.T) {
	w := newParticleWorld(t)

	// Freeze everyone below the threshold and at rest
	for _, p := range w.Programs {
		p.Evolution = 0
		p.Vel = vmath.Vec3{}
	}
	for i := 0; i < 100; i++ {
		w.Update(0.016)
	}
	if w.Particles.Live() != 0 {
		t.Fatalf("Expected no trails from dormant roster, got %d", w.Particles.Live())
	}

	// An evolved, moving entity sheds trail
	p := w.Programs[1]
	p.Evolution = parameter.TrailEmitThreshold + 0.1
	p.Vel = vmath.Vec3{X: 5}
	for i := 0; i < 100; i++ {
		w.Update(0.016)
	}
	if w.Particles.Live() == 0 {
		t.Error("Expected trail particles from a moving evolved entity")
	}
}

func TestTrailEmissionRateLimited(t *testing.T) {
	w := newParticleWorld(t)
	p := w.Programs[1]
	p.Evolution = 1.0
	p.Vel = vmath.Vec3{X: 5}

	// Make only this entity eligible
	for _, other := range w.Programs {
		if other != p {
			other.Evolution = 0
			other.Vel = vmath.Vec3{}
		}
	}

	// One second of ticks with an immortal counter: emissions are
	// bounded by interval, not by frame rate
	emitted := 0
	for i := 0; i < 63; i++ {
		before := w.Particles.Live()
		w.Update(0.016)
		if w.Particles.Live() > before {
			emitted += w.Particles.Live() - before
		}
	}
	interval := parameter.TrailEmitInterval
	maxExpected := int(1.0/interval) + 1
	if emitted > maxExpected {
		t.Errorf("Expected at most %d emissions per second, got %d", maxExpected, emitted)
	}
}

func TestHiddenParticlesStopEmitting(t *testing.T) {
	w := newParticleWorld(t)
	w.ParticlesVisible = false

	p := w.Programs[1]
	p.Evolution = 1.0
	p.Vel = vmath.Vec3{X: 5}

	for i := 0; i < 100; i++ {
		w.Update(0.016)
	}
	if w.Particles.Live() != 0 {
		t.Errorf("Expected no particles while hidden, got %d", w.Particles.Live())
	}
}

func TestPoolStaysBounded(t *testing.T) {
	w := newParticleWorld(t)
	limit := w.Particles.Capacity()

	// Everyone emitting as fast as possible
	for _, p := range w.Programs {
		p.Evolution = 1.0
		p.Vel = vmath.Vec3{X: 5}
	}
	for i := 0; i < 2000; i++ {
		w.Update(0.016)
		if w.Particles.Live() > limit {
			t.Fatalf("Pool exceeded capacity at tick %d: %d > %d", i, w.Particles.Live(), limit)
		}
	}
}
