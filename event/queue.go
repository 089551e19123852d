package event

import (
	"sync"

	"github.com/lixenwraith/underwell/parameter"
)

// EventQueue is a bounded FIFO of events raised during a tick
// Producers are the tick owner and command dispatch; the router drains it once per flush
// When full the oldest pending event is dropped and counted
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	start   int
	count   int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, evicting the oldest one on overflow
func (q *EventQueue) Push(ev GameEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == parameter.EventQueueSize {
		q.ring[q.start] = GameEvent{}
		q.start = (q.start + 1) & parameter.EventBufferMask
		q.count--
		q.dropped++
	}
	q.ring[(q.start+q.count)&parameter.EventBufferMask] = ev
	q.count++
}

// Consume removes and returns every pending event in push order, nil when empty
func (q *EventQueue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return nil
	}
	out := make([]GameEvent, q.count)
	for i := range out {
		idx := (q.start + i) & parameter.EventBufferMask
		out[i] = q.ring[idx]
		q.ring[idx] = GameEvent{}
	}
	q.start, q.count = 0, 0
	return out
}

// Len returns the pending event count
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Dropped returns how many events were evicted by overflow since creation
func (q *EventQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
