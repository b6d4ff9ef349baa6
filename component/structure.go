package component

import (
	"github.com/lixenwraith/gridworld/vmath"
)

// StructureType is the builder's fixed palette
type StructureType uint8

const (
	StructureTower StructureType = iota
	StructureWall
	StructureBridge
	StructureDome
	StructurePlatform

	StructureTypeCount
)

func (t StructureType) String() string {
	switch t {
	case StructureTower:
		return "tower"
	case StructureWall:
		return "wall"
	case StructureBridge:
		return "bridge"
	case StructureDome:
		return "dome"
	case StructurePlatform:
		return "platform"
	}
	return "unknown"
}

// StructureComponent is a placed world object, immutable after creation
type StructureComponent struct {
	Pos       vmath.Vec3
	Type      StructureType
	Height    float64
	Footprint float64
	Builder   ProgramID
	Tick      uint64
}
