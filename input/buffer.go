package input

import (
	"sync"

	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/vmath"
)

// Buffer queues intents between the device goroutine and the tick
// Bounded: under sustained overload the oldest unread intent is
// dropped rather than letting the queue grow
type Buffer struct {
	mu      sync.Mutex
	items   []Intent
	dropped uint64
}

func NewBuffer() *Buffer {
	return &Buffer{
		items: make([]Intent, 0, parameter.IntentBufferSize),
	}
}

// Push appends an intent, evicting the oldest entry at capacity
func (b *Buffer) Push(in Intent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) >= parameter.IntentBufferSize {
		copy(b.items, b.items[1:])
		b.items = b.items[:len(b.items)-1]
		b.dropped++
	}
	b.items = append(b.items, in)
}

// Drain consumes every buffered intent into one per-tick aggregate
// Movement keeps the last direction; look and scroll deltas accumulate
func (b *Buffer) Drain() TickInput {
	b.mu.Lock()
	defer b.mu.Unlock()

	var t TickInput
	for _, in := range b.items {
		switch in.Type {
		case IntentMove:
			t.Move = vmath.V3ClampMagnitude(in.Move, 1.0)
		case IntentLook:
			t.LookDX += in.LookDX
			t.LookDY += in.LookDY
		case IntentScroll:
			t.Scroll += in.Scroll
		case IntentToggleCamera:
			t.ToggleCamera = true
		case IntentToggleParticles:
			t.ToggleParticles = true
		case IntentReset:
			t.Reset = true
		case IntentQuit:
			t.Quit = true
		}
	}
	b.items = b.items[:0]
	return t
}

// Dropped reports how many intents were evicted under overload
func (b *Buffer) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}
