package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/gridworld/input"
	"github.com/lixenwraith/gridworld/parameter"
)

// Loop is the fixed-timestep driver: it drains buffered input, applies
// session-level edge events and advances every system once per tick
// Rendering happens outside, against the post-tick world snapshot
type Loop struct {
	World  *World
	Buffer *input.Buffer

	log  *zap.Logger
	quit bool
}

func NewLoop(w *World, buf *input.Buffer, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		World:  w,
		Buffer: buf,
		log:    log,
	}
}

// Tick advances the simulation by dt seconds
// Returns false once a quit intent has been consumed
func (l *Loop) Tick(dt float64) bool {
	if l.quit {
		return false
	}
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}
	if dt < 0 {
		dt = 0
	}

	t := l.Buffer.Drain()
	if t.Quit {
		l.quit = true
		l.log.Info("session ending", zap.Uint64("ticks", l.World.Time.Tick))
		return false
	}
	if t.Reset {
		l.World.Reset()
		l.log.Info("session reset")
	}
	if t.ToggleParticles {
		l.World.ParticlesVisible = !l.World.ParticlesVisible
		l.log.Debug("particles toggled", zap.Bool("visible", l.World.ParticlesVisible))
	}

	l.World.Input = t
	structures := l.World.Structures.Count()
	l.World.Update(dt)

	if built := l.World.Structures.Count() - structures; built > 0 {
		l.log.Debug("structures completed",
			zap.Int("new", built),
			zap.Int("total", l.World.Structures.Count()),
			zap.Uint64("tick", l.World.Time.Tick))
	}
	return true
}
