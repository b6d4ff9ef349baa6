package render

import (
	"math"

	"github.com/lixenwraith/gridworld/engine"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

// gridSampleStep is the world-unit spacing of projected line samples;
// dense enough that lines stay connected at the default orbit radius
const gridSampleStep = 2.0

// appendGrid emits the ground-plane lattice, recentered on the
// followed entity so the grid appears infinite. Axis lines and major
// multiples render brighter
func appendGrid(items []DrawItem, pr *Projection, w *engine.World, width, height int) []DrawItem {
	center := w.Primary().Pos
	snapX := math.Round(center.X/parameter.GridSpacing) * parameter.GridSpacing
	snapZ := math.Round(center.Z/parameter.GridSpacing) * parameter.GridSpacing

	for off := -parameter.GridRange; off <= parameter.GridRange; off += parameter.GridSpacing {
		// Lines parallel to X at fixed Z, then parallel to Z at fixed X
		z := snapZ + off
		cz := lineColor(z)
		for t := -parameter.GridLineSpan; t <= parameter.GridLineSpan; t += gridSampleStep {
			items = projectGridPoint(items, pr, width, height,
				vmath.Vec3{X: snapX + t, Z: z}, cz)
		}

		x := snapX + off
		cx := lineColor(x)
		for t := -parameter.GridLineSpan; t <= parameter.GridLineSpan; t += gridSampleStep {
			items = projectGridPoint(items, pr, width, height,
				vmath.Vec3{X: x, Z: snapZ + t}, cx)
		}
	}
	return items
}

func lineColor(coord float64) RGB {
	if math.Mod(math.Abs(coord), parameter.GridMajorStep) < 1e-9 {
		return gridMajorColor
	}
	return gridColor
}

func projectGridPoint(items []DrawItem, pr *Projection, width, height int, p vmath.Vec3, c RGB) []DrawItem {
	x, y, depth, ok := pr.Project3(p)
	if !ok {
		return items
	}
	return push(items, width, height, ItemGridLine, x, y, depth, '·', c, 1.0)
}

// appendBound marks the world boundary with corner posts and edge
// ticks on the ground square at ±bound
func appendBound(items []DrawItem, pr *Projection, bound float64, width, height int) []DrawItem {
	step := bound / 5.0
	for t := -bound; t <= bound; t += step {
		edges := [...]vmath.Vec3{
			{X: t, Z: bound},
			{X: t, Z: -bound},
			{X: bound, Z: t},
			{X: -bound, Z: t},
		}
		for _, p := range edges {
			x, y, depth, ok := pr.Project3(p)
			if !ok {
				continue
			}
			items = push(items, width, height, ItemBound, x, y, depth, '+', boundColor, 1.0)
		}
	}
	return items
}
