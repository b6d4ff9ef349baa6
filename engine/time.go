package engine

// TimeResource tracks simulation time for the current session
// Delta is the clamped elapsed seconds fed into the running tick
type TimeResource struct {
	Delta   float64
	Elapsed float64
	Tick    uint64
}

func (t *TimeResource) Advance(dt float64) {
	t.Delta = dt
	t.Elapsed += dt
	t.Tick++
}

func (t *TimeResource) Reset() {
	t.Delta = 0
	t.Elapsed = 0
	t.Tick = 0
}
