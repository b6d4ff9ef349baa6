package render

import (
	"math"
	"sort"

	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/engine"
	"github.com/lixenwraith/gridworld/vmath"
)

// ItemKind tags what a draw item depicts, for renderers that treat
// layers differently
type ItemKind uint8

const (
	ItemGridLine ItemKind = iota
	ItemBound
	ItemEntity
	ItemStructure
	ItemParticle
)

// DrawItem is one projected cell of the frame
// The list is painter-sorted: far items first, near items overwrite
type DrawItem struct {
	Kind  ItemKind
	X, Y  int
	Depth float64
	Glyph rune
	Color RGB

	// Weight is the size/alpha scalar in (0,1]: particle life fraction,
	// entity aura pulse, 1 for static geometry
	Weight float64
}

// Entity glyphs by kind
var kindGlyphs = [...]rune{
	component.KindPrimary:       '@',
	component.KindAutoEntity:    'A',
	component.KindStandardAgent: 'o',
	component.KindSentinel:      'S',
}

// BuildFrame projects the whole world into a depth-sorted draw list
// sized for a width x height cell viewport. Items off screen or behind
// the camera are culled here, not by the rasterizer
func BuildFrame(w *engine.World, width, height int) []DrawItem {
	pr := NewProjection(w.Camera, width, height, w.Config.World.FourDWeight)
	items := make([]DrawItem, 0, 512)

	items = appendGrid(items, &pr, w, width, height)
	items = appendBound(items, &pr, w.Config.World.Bound, width, height)
	items = appendStructures(items, &pr, w, width, height)
	items = appendEntities(items, &pr, w, width, height)
	items = appendParticles(items, &pr, w, width, height)

	sort.Slice(items, func(i, j int) bool {
		return items[i].Depth > items[j].Depth
	})
	return items
}

func push(items []DrawItem, width, height int, kind ItemKind, x, y int, depth float64, glyph rune, c RGB, weight float64) []DrawItem {
	if x < 0 || x >= width || y < 0 || y >= height {
		return items
	}
	return append(items, DrawItem{Kind: kind, X: x, Y: y, Depth: depth, Glyph: glyph, Color: c, Weight: weight})
}

func appendEntities(items []DrawItem, pr *Projection, w *engine.World, width, height int) []DrawItem {
	for _, p := range w.Programs {
		x, y, depth, ok := pr.Project(p.Position4())
		if !ok {
			continue
		}
		glyph := rune('?')
		if int(p.Kind) < len(kindGlyphs) {
			glyph = kindGlyphs[p.Kind]
		}
		items = push(items, width, height, ItemEntity, x, y, depth, glyph,
			StageColor(p.Evolution), auraPulse(p, w.Time.Elapsed))
	}
	return items
}

// auraPulse is the entity's size/alpha scalar: a slow sinusoid whose
// amplitude grows with evolution, so evolved entities visibly breathe
func auraPulse(p *component.ProgramComponent, elapsed float64) float64 {
	phase := elapsed*2.0 + float64(p.ID)
	return 1.0 - 0.3*p.Evolution*(1.0-(math.Sin(phase)+1.0)/2.0)
}

func appendStructures(items []DrawItem, pr *Projection, w *engine.World, width, height int) []DrawItem {
	for _, st := range w.Structures.All() {
		c := StructureColor(st.Type)
		// Vertical column sampled per world unit from base to roof
		for h := 0.0; h <= st.Height; h += 1.0 {
			p := vmath.Vec3{X: st.Pos.X, Y: st.Pos.Y + h, Z: st.Pos.Z}
			x, y, depth, ok := pr.Project3(p)
			if !ok {
				continue
			}
			glyph := '#'
			if h+1.0 > st.Height {
				glyph = '^'
			}
			items = push(items, width, height, ItemStructure, x, y, depth, glyph, c, 1.0)
		}
	}
	return items
}

func appendParticles(items []DrawItem, pr *Projection, w *engine.World, width, height int) []DrawItem {
	if !w.ParticlesVisible {
		return items
	}
	for _, pt := range w.Particles.All() {
		x, y, depth, ok := pr.Project3(pt.Pos)
		if !ok {
			continue
		}
		glyph := '.'
		if pt.Kind == component.ParticleBurst {
			glyph = '*'
		}
		items = push(items, width, height, ItemParticle, x, y, depth, glyph,
			ParticleColor(pt.Kind, pt.Weight), pt.Weight)
	}
	return items
}
