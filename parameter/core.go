package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps the elapsed time fed into one simulation tick
	// Protects integration from huge steps after a stall or suspend
	MaxTickDelta = 0.1
)

// Phi is the golden ratio, the tuning constant behind the kind
// multipliers and the field frequency
const Phi = 1.618033988749895

// Field oscillator
const (
	// FieldFrequencyHz is the base oscillator frequency (Phi * 440)
	FieldFrequencyHz = 711.93

	// FieldDecayFactor retains this fraction of field strength per tick
	// when blending in the fresh roster mean
	FieldDecayFactor = 0.9
)

// Input buffering
const (
	// IntentBufferSize bounds the input queue between ticks
	// Oldest unread intents are dropped under sustained overload
	IntentBufferSize = 128
)
