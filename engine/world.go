package engine

import (
	"github.com/lixenwraith/gridworld/component"
	"github.com/lixenwraith/gridworld/config"
	"github.com/lixenwraith/gridworld/input"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

// World owns the entity roster, the structure registry, the particle
// pool and the shared simulation resources. Single-threaded: one tick
// advances everything synchronously, so no locking anywhere inside
type World struct {
	Config *config.Config

	// Rand is the single seeded stream threaded through every call
	// site that needs randomness; a fixed seed replays a session
	Rand *vmath.Rand
	seed uint64

	Programs   []*component.ProgramComponent
	Structures *StructureStore
	Particles  *ParticlePool
	Field      *FieldResource
	Camera     *component.CameraState
	Time       TimeResource

	// Input is the aggregate drained at the start of the current tick
	Input input.TickInput

	// ParticlesVisible gates spawn requests; the pool drains naturally
	// while the toggle is off
	ParticlesVisible bool

	systems []System
}

func NewWorld(cfg *config.Config, seed uint64) *World {
	w := &World{
		Config:           cfg,
		seed:             seed,
		Rand:             vmath.NewRand(seed),
		Structures:       NewStructureStore(cfg.Build.MinSeparation),
		Particles:        NewParticlePool(cfg.Particles.Capacity),
		Field:            NewFieldResource(cfg.Evolution.FrequencyHz, cfg.Evolution.DecayFactor),
		Camera:           &component.CameraState{},
		ParticlesVisible: true,
		systems:          make([]System, 0, 8),
	}

	w.resetCamera()
	w.spawnRoster()
	return w
}

// AddSystem registers a system and keeps the slice priority-sorted
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Update runs one simulation tick over all systems in priority order
func (w *World) Update(dt float64) {
	w.Time.Advance(dt)
	for _, s := range w.systems {
		s.Update(dt)
	}
}

// Primary returns the followed entity; the roster always has one
func (w *World) Primary() *component.ProgramComponent {
	return w.Programs[0]
}

// Reset rebuilds the session from the seed: fresh random stream,
// empty field/registry/pool, new roster, camera back to defaults
func (w *World) Reset() {
	w.Rand = vmath.NewRand(w.seed)
	w.Field.Reset()
	w.Structures.Reset()
	w.Particles.Reset()
	w.Time.Reset()
	w.Input = input.TickInput{}
	w.ParticlesVisible = true
	w.resetCamera()
	w.spawnRoster()

	for _, s := range w.systems {
		if r, ok := s.(Resetter); ok {
			r.Reset()
		}
	}
}

func (w *World) resetCamera() {
	*w.Camera = component.CameraState{
		Mode:        component.CameraOrbit,
		OrbitPitch:  20.0,
		OrbitRadius: parameter.OrbitRadiusDefault,
		FOV:         parameter.FOVDefault,
		Zoom:        1.0,
	}
}

// spawnRoster creates the fixed session roster: one primary at the
// origin, then autos, standard agents and sentinels at seeded spots
// Entities are never destroyed during a session
func (w *World) spawnRoster() {
	w.Programs = w.Programs[:0]
	var nextID component.ProgramID = 1

	add := func(p component.ProgramComponent) {
		p.ID = nextID
		nextID++
		if p.Kind.CanBuild() {
			p.Build = &component.BuildComponent{
				Phase:      component.BuildIdle,
				Cooldown:   w.Rand.Range(parameter.BuildIntervalMin, parameter.BuildIntervalMax),
				Preference: component.StructureType(w.Rand.Intn(int(component.StructureTypeCount))),
			}
		}
		w.Programs = append(w.Programs, &p)
	}

	add(component.ProgramComponent{
		Kind:      component.KindPrimary,
		Evolution: 1.0,
		Stage:     component.StageTranscendent,
		Harmony:   parameter.HarmonyPrimary,
	})

	for i := 0; i < parameter.RosterAuto; i++ {
		add(component.ProgramComponent{
			Kind: component.KindAutoEntity,
			Pos: vmath.Vec3{
				X: w.Rand.Range(-parameter.AutoSpawnRangeXZ, parameter.AutoSpawnRangeXZ),
				Y: w.Rand.Range(0, parameter.AutoSpawnRangeYMax),
				Z: w.Rand.Range(-parameter.AutoSpawnRangeXZ, parameter.AutoSpawnRangeXZ),
			},
			Harmony: w.Rand.Range(parameter.HarmonyAutoMin, parameter.HarmonyAutoMax),
		})
	}

	for i := 0; i < parameter.RosterStandard; i++ {
		add(component.ProgramComponent{
			Kind: component.KindStandardAgent,
			Pos: vmath.Vec3{
				X: w.Rand.Range(-parameter.SpawnRangeXZ, parameter.SpawnRangeXZ),
				Y: w.Rand.Range(-parameter.SpawnRangeY, parameter.SpawnRangeY),
				Z: w.Rand.Range(-parameter.SpawnRangeXZ, parameter.SpawnRangeXZ),
			},
			Harmony: w.Rand.Range(parameter.HarmonyStandardMin, parameter.HarmonyStandardMax),
		})
	}

	for i := 0; i < parameter.RosterSentinel; i++ {
		add(component.ProgramComponent{
			Kind: component.KindSentinel,
			Pos: vmath.Vec3{
				X: w.Rand.Range(-parameter.SpawnRangeXZ, parameter.SpawnRangeXZ),
				Z: w.Rand.Range(-parameter.SpawnRangeXZ, parameter.SpawnRangeXZ),
			},
			Harmony: w.Rand.Range(parameter.HarmonySentinelMin, parameter.HarmonySentinelMax),
		})
	}
}
