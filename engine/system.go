package engine

// System is one per-concern simulation step run in priority order
// Systems are single-threaded within a tick; no locking inside Update
type System interface {
	Name() string
	Priority() int
	Update(dt float64)
}

// Resetter is optionally implemented by systems that hold per-session
// state beyond the world (timers, accumulators)
type Resetter interface {
	Reset()
}
