package engine

import (
	"testing"

	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/vmath"
)

func TestSpawnRespectsCapacity(t *testing.T) {
	rng := vmath.NewRand(1)
	pool := NewParticlePool(10)

	created := pool.Spawn(rng, vmath.Vec3{}, component.ParticleBurst, 25, 1)
	if created != 10 {
		t.Errorf("Expected 10 created, got %d", created)
	}
	if pool.Live() != 10 {
		t.Errorf("Expected 10 live, got %d", pool.Live())
	}

	// Full pool refuses further spawns
	if extra := pool.Spawn(rng, vmath.Vec3{}, component.ParticleTrail, 5, 1); extra != 0 {
		t.Errorf("Expected 0 created at capacity, got %d", extra)
	}
}

func TestAdvanceCompactsDead(t *testing.T) {
	rng := vmath.NewRand(2)
	pool := NewParticlePool(100)
	pool.Spawn(rng, vmath.Vec3{}, component.ParticleTrail, 50, 1)

	// Longest trail life is under one second
	pool.Advance(2.0)
	if pool.Live() != 0 {
		t.Errorf("Expected all particles expired, got %d live", pool.Live())
	}

	// Freed capacity is reusable
	if created := pool.Spawn(rng, vmath.Vec3{}, component.ParticleBurst, 30, 1); created != 30 {
		t.Errorf("Expected 30 created after compaction, got %d", created)
	}
}

func TestWeightTracksRemainingLife(t *testing.T) {
	rng := vmath.NewRand(3)
	pool := NewParticlePool(10)
	pool.Spawn(rng, vmath.Vec3{}, component.ParticleBurst, 10, 1)

	pool.Advance(0.4)
	for _, pt := range pool.All() {
		if pt.Weight <= 0 || pt.Weight >= 1 {
			t.Errorf("Expected weight in (0,1) mid-life, got %v", pt.Weight)
		}
		expected := pt.Life / pt.MaxLife
		if diff := pt.Weight - expected; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("Expected weight %v, got %v", expected, pt.Weight)
		}
	}
}

func TestBurstGravityPullsDown(t *testing.T) {
	rng := vmath.NewRand(4)
	pool := NewParticlePool(10)
	pool.Spawn(rng, vmath.Vec3{}, component.ParticleBurst, 1, 1)

	before := pool.All()[0].Vel.Y
	pool.Advance(0.1)
	if pool.Live() == 0 {
		t.Fatal("Expected burst to survive 0.1s")
	}
	after := pool.All()[0].Vel.Y
	if after >= before {
		t.Errorf("Expected vertical velocity to decrease, %v -> %v", before, after)
	}
}
