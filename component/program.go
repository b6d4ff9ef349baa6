package component

import (
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

// ProgramID identifies a program for the whole session
type ProgramID uint64

// ProgramKind discriminates the fixed roster variants
// Kind-specific behavior is a lookup on this tag, not a type hierarchy
type ProgramKind uint8

const (
	KindPrimary ProgramKind = iota
	KindAutoEntity
	KindStandardAgent
	KindSentinel
)

func (k ProgramKind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindAutoEntity:
		return "auto"
	case KindStandardAgent:
		return "standard"
	case KindSentinel:
		return "sentinel"
	}
	return "unknown"
}

// EvolutionMultiplier returns the kind-specific evolution gain factor
func (k ProgramKind) EvolutionMultiplier() float64 {
	switch k {
	case KindAutoEntity:
		return parameter.KindMultiplierAuto
	case KindSentinel:
		return parameter.KindMultiplierSentinel
	case KindPrimary:
		return parameter.KindMultiplierPrimary
	default:
		return parameter.KindMultiplierStandard
	}
}

// CanBuild reports whether the kind runs the build state machine
func (k ProgramKind) CanBuild() bool {
	return k == KindAutoEntity || k == KindStandardAgent
}

// Stage is the discrete banding of the evolution scalar
type Stage uint8

const (
	StageDormant Stage = iota
	StageStirring
	StageAware
	StageResonant
	StageTranscendent
)

func (s Stage) String() string {
	switch s {
	case StageDormant:
		return "dormant"
	case StageStirring:
		return "stirring"
	case StageAware:
		return "aware"
	case StageResonant:
		return "resonant"
	case StageTranscendent:
		return "transcendent"
	}
	return "unknown"
}

// StageForScalar maps an evolution scalar to its threshold band
// Callers ratchet: the stored stage only moves up within a session
func StageForScalar(scalar float64) Stage {
	switch {
	case scalar >= parameter.StageThresholdTranscendent:
		return StageTranscendent
	case scalar >= parameter.StageThresholdResonant:
		return StageResonant
	case scalar >= parameter.StageThresholdAware:
		return StageAware
	case scalar >= parameter.StageThresholdStirring:
		return StageStirring
	default:
		return StageDormant
	}
}

// ProgramComponent is one agent in the world
// Created at world init with the fixed roster, never destroyed
type ProgramComponent struct {
	ID   ProgramID
	Kind ProgramKind

	Pos vmath.Vec3
	Vel vmath.Vec3

	// W is the fourth spatial coordinate, folded into camera depth by
	// the projection when the 4D weight is non-zero
	W float64

	// Evolution in [0,1]; Stage ratchets, it never follows a dip
	Evolution float64
	Stage     Stage

	// Harmony scales the entity's evolution rate, sampled once at
	// creation from the kind's range
	Harmony float64

	// Build state machine, nil for kinds that never build
	Build *BuildComponent

	// Trail emission accumulator (seconds until next segment)
	TrailTimer float64
}

// Position4 returns the projectable 4-component position
func (p *ProgramComponent) Position4() vmath.Vec4 {
	return vmath.V4From3(p.Pos, p.W)
}
