package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/gridworld/component"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Scale multiplies all channels by f in [0,1] (distance/life fade)
func (c RGB) Scale(f float64) RGB {
	if f >= 1 {
		return c
	}
	if f <= 0 {
		return RGB{}
	}
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Stage anchor colors, dormant blue through transcendent white
// Blending happens in HCL so the ramp stays perceptually even
var stageAnchors = [...]colorful.Color{
	{R: 0.10, G: 0.25, B: 0.55}, // dormant
	{R: 0.05, G: 0.55, B: 0.75}, // stirring
	{R: 0.10, G: 0.80, B: 0.60}, // aware
	{R: 0.85, G: 0.75, B: 0.20}, // resonant
	{R: 0.95, G: 0.95, B: 0.98}, // transcendent
}

// StageColor returns the ramp color for an evolution scalar, blending
// between the band anchors of the surrounding stages
func StageColor(scalar float64) RGB {
	if scalar <= 0 {
		return fromColorful(stageAnchors[0])
	}
	if scalar >= 1 {
		return fromColorful(stageAnchors[len(stageAnchors)-1])
	}
	seg := scalar * float64(len(stageAnchors)-1)
	i := int(seg)
	t := seg - float64(i)
	return fromColorful(stageAnchors[i].BlendHcl(stageAnchors[i+1], t))
}

// Fixed palette for non-entity geometry
var (
	gridColor      = RGB{30, 90, 140}
	gridMajorColor = RGB{60, 160, 220}
	boundColor     = RGB{140, 40, 40}

	structureColors = [...]RGB{
		component.StructureTower:    {200, 140, 40},
		component.StructureWall:     {150, 150, 160},
		component.StructureBridge:   {90, 170, 200},
		component.StructureDome:     {170, 100, 200},
		component.StructurePlatform: {100, 180, 120},
	}

	trailColor = RGB{80, 200, 255}
	burstColor = RGB{255, 210, 90}
)

// StructureColor returns the fixed per-type color
func StructureColor(t component.StructureType) RGB {
	if int(t) < len(structureColors) {
		return structureColors[t]
	}
	return RGB{255, 255, 255}
}

// ParticleColor fades the kind color by the remaining life weight
func ParticleColor(kind component.ParticleKind, weight float64) RGB {
	base := trailColor
	if kind == component.ParticleBurst {
		base = burstColor
	}
	return base.Scale(weight)
}
