package engine

import (
	"testing"

	"github.com/lixenwraith/gridworld/parameter"
)

func TestOscillatorRange(t *testing.T) {
	f := NewFieldResource(parameter.FieldFrequencyHz, parameter.FieldDecayFactor)

	for i := 0; i < 10000; i++ {
		f.Advance(0.016)
		osc := f.Oscillator()
		if osc < 0 || osc > 1 {
			t.Fatalf("Oscillator out of [0,1] at step %d: %v", i, osc)
		}
	}
}

func TestAccumulateBlendsTowardMean(t *testing.T) {
	f := NewFieldResource(parameter.FieldFrequencyHz, 0.9)

	f.Accumulate(1.0)
	expected := 0.1 // 0*0.9 + 1*0.1
	if diff := f.Strength - expected; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("Expected strength %v, got %v", expected, f.Strength)
	}

	// Repeated accumulation converges toward the mean
	for i := 0; i < 500; i++ {
		f.Accumulate(1.0)
	}
	if f.Strength < 0.99 {
		t.Errorf("Expected convergence toward 1, got %v", f.Strength)
	}
}

func TestAccumulateNeverNegative(t *testing.T) {
	f := NewFieldResource(parameter.FieldFrequencyHz, 0.9)
	f.Accumulate(-100)
	if f.Strength < 0 {
		t.Errorf("Expected non-negative strength, got %v", f.Strength)
	}
}

func TestFieldReset(t *testing.T) {
	f := NewFieldResource(parameter.FieldFrequencyHz, 0.9)
	f.Advance(1.0)
	f.Accumulate(1.0)

	f.Reset()
	if f.Phase != 0 || f.Strength != 0 {
		t.Errorf("Expected zeroed field after reset, got phase %v strength %v", f.Phase, f.Strength)
	}
}
