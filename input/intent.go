package input

import (
	"github.com/lixenwraith/gridworld/vmath"
)

// IntentType discriminates semantic actions from the device backend
// The core treats all of these as already-debounced and device-agnostic
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Continuous channels
	IntentMove   // normalized direction vector, magnitude <= 1
	IntentLook   // look delta in device units
	IntentScroll // signed scroll delta

	// Edge-triggered events
	IntentToggleCamera    // orbit <-> first person
	IntentToggleParticles // particle rendering on/off
	IntentReset           // new session from the seed
	IntentQuit
)

// Intent is one buffered input sample
type Intent struct {
	Type IntentType

	Move   vmath.Vec3
	LookDX float64
	LookDY float64
	Scroll float64
}

// TickInput is the aggregate the simulation drains once per tick
// Continuous channels accumulate, edge events are sticky until read
type TickInput struct {
	Move   vmath.Vec3
	LookDX float64
	LookDY float64
	Scroll float64

	ToggleCamera    bool
	ToggleParticles bool
	Reset           bool
	Quit            bool
}
