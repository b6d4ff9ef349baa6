package engine

import (
	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/vmath"
)

// StructureStore is the spatial record of built objects
// Placement validation happens here once, at creation time; structures
// are immutable afterwards and live for the session
type StructureStore struct {
	items         []component.StructureComponent
	minSeparation float64
}

func NewStructureStore(minSeparation float64) *StructureStore {
	return &StructureStore{
		items:         make([]component.StructureComponent, 0, 64),
		minSeparation: minSeparation,
	}
}

// CanPlace reports whether a center at pos keeps the configured
// minimum ground-plane separation from every existing structure
func (s *StructureStore) CanPlace(pos vmath.Vec3) bool {
	for i := range s.items {
		if vmath.V3DistXZ(s.items[i].Pos, pos) < s.minSeparation {
			return false
		}
	}
	return true
}

// Add appends a structure after re-checking separation
// Returns false when the site is no longer valid; nothing is committed
func (s *StructureStore) Add(st component.StructureComponent) bool {
	if !s.CanPlace(st.Pos) {
		return false
	}
	s.items = append(s.items, st)
	return true
}

// All exposes the registry for read-only iteration; callers must not
// retain or mutate the slice
func (s *StructureStore) All() []component.StructureComponent {
	return s.items
}

func (s *StructureStore) Count() int {
	return len(s.items)
}

// MinSeparation returns the configured center-to-center floor
func (s *StructureStore) MinSeparation() float64 {
	return s.minSeparation
}

// Reset clears the registry for a new session
func (s *StructureStore) Reset() {
	s.items = s.items[:0]
}
