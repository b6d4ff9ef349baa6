package engine

import (
	"math"
)

// FieldResource is the process-wide evolution field: a time-driven
// oscillator plus the decayed aggregate of the roster's scalars
// Passed explicitly into entity updates, never ambient global state
type FieldResource struct {
	// Phase advances monotonically with game time
	Phase float64

	// Strength is the decayed running aggregate, always >= 0
	Strength float64

	phaseRate   float64
	decayFactor float64
}

func NewFieldResource(frequencyHz, decayFactor float64) *FieldResource {
	return &FieldResource{
		// Phase advances at frequency/1000 radians per game second
		phaseRate:   frequencyHz / 1000.0,
		decayFactor: decayFactor,
	}
}

// Advance moves the oscillator phase by elapsed seconds
func (f *FieldResource) Advance(dt float64) {
	f.Phase += dt * f.phaseRate
}

// Oscillator returns the current resonance in [0,1]
func (f *FieldResource) Oscillator() float64 {
	return (math.Sin(f.Phase) + 1) / 2
}

// Accumulate folds the roster's mean evolution into field strength
// strength = strength*decay + mean*(1-decay), clamped non-negative
func (f *FieldResource) Accumulate(meanEvolution float64) {
	f.Strength = f.Strength*f.decayFactor + meanEvolution*(1-f.decayFactor)
	if f.Strength < 0 {
		f.Strength = 0
	}
}

// Reset zeroes the field for a new session
func (f *FieldResource) Reset() {
	f.Phase = 0
	f.Strength = 0
}
