// sim/scheduler.go
package sim

import (
	"container/heap"
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrInvalidDelay is returned by Schedule for a negative delay.
var ErrInvalidDelay = errors.New("sim: negative delay")

// event is a scheduled continuation. Owned exclusively by the Scheduler
// until dispatch.
type event struct {
	due float64
	seq uint64
	fn  func()
}

// eventQueue implements heap.Interface and orders events by due time.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
// Ordering: due time → insertion sequence, so simultaneous events dispatch
// in FIFO order of scheduling.
type eventQueue []*event

func (eq eventQueue) Len() int { return len(eq) }

func (eq eventQueue) Less(i, j int) bool {
	if eq[i].due != eq[j].due {
		return eq[i].due < eq[j].due
	}
	return eq[i].seq < eq[j].seq
}

func (eq eventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *eventQueue) Push(x any) {
	*eq = append(*eq, x.(*event))
}

func (eq *eventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Scheduler owns the simulation clock and the time-ordered event queue for
// one replication. The clock is monotonically non-decreasing; it only moves
// when an event is dispatched or the run is clamped to its horizon.
type Scheduler struct {
	clock float64
	queue eventQueue
	seq   uint64
}

// NewScheduler creates an empty Scheduler with the clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{queue: make(eventQueue, 0)}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() float64 {
	return s.clock
}

// Pending returns the number of events not yet dispatched.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Schedule inserts fn for dispatch at now+delay. Events scheduled for the
// same instant are dispatched in insertion order.
func (s *Scheduler) Schedule(delay float64, fn func()) error {
	if delay < 0 {
		return ErrInvalidDelay
	}
	s.seq++
	heap.Push(&s.queue, &event{due: s.clock + delay, seq: s.seq, fn: fn})
	return nil
}

// RunUntil dispatches events in due order until the queue is empty or the
// next event would fire past horizon, then advances the clock to horizon.
// Both terminations are normal; RunUntil never fails.
func (s *Scheduler) RunUntil(horizon float64) {
	for len(s.queue) > 0 && s.queue[0].due <= horizon {
		// get the next event to be simulated
		ev := heap.Pop(&s.queue).(*event)
		// advance the clock
		s.clock = ev.due
		logrus.Tracef("[t=%10.4f] dispatching event %d", s.clock, ev.seq)
		// process the event
		ev.fn()
	}
	// clock never moves backwards, even for a horizon already in the past
	if horizon > s.clock {
		s.clock = horizon
	}
	logrus.Debugf("[t=%10.4f] run ended, %d events undispatched", s.clock, len(s.queue))
}
