package parameter

// System Execution Priorities (lower runs first)
// Camera drains input before anything moves; field feeds entities;
// builder may spawn particles, so particles advance last
const (
	PriorityCamera    = 10
	PriorityEvolution = 20
	PriorityMovement  = 30
	PriorityBuilder   = 40
	PriorityParticle  = 50
)
