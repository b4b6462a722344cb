// sim/process.go
package sim

// Outcome reports which branch of an acquire-or-timeout race won.
type Outcome int

const (
	// Acquired means the resource grant arrived before the timeout.
	Acquired Outcome = iota
	// TimedOut means the timeout elapsed while the request was still queued.
	TimedOut
)

// Runtime layers cooperative process primitives over a Scheduler. A logical
// process is a chain of continuations resumed by scheduler events; only one
// continuation executes at any simulated instant, so model state needs no
// locking within a replication.
type Runtime struct {
	sched *Scheduler
}

// NewRuntime wraps a Scheduler.
func NewRuntime(sched *Scheduler) *Runtime {
	return &Runtime{sched: sched}
}

// Now returns the current simulated time.
func (rt *Runtime) Now() float64 {
	return rt.sched.Now()
}

// Spawn starts a new logical process at the current instant. The process
// body runs after the currently executing continuation returns, in FIFO
// order with any other events already scheduled for this instant.
func (rt *Runtime) Spawn(fn func()) error {
	return rt.sched.Schedule(0, fn)
}

// Delay suspends the calling process for d, then resumes it.
func (rt *Runtime) Delay(d float64, resume func()) error {
	return rt.sched.Schedule(d, resume)
}

// AcquireOrTimeout races a request for res against a timeout of the given
// length. The first branch to settle resolves the race and the loser is
// withdrawn synchronously: a losing request leaves the resource queue
// immediately, a losing timer is disarmed by the resolved guard. resume is
// invoked exactly once, with the winning branch's Outcome.
func (rt *Runtime) AcquireOrTimeout(res *Resource, timeout float64, resume func(Outcome)) error {
	resolved := false
	req := res.Request(func() {
		resolved = true
		resume(Acquired)
	})
	if resolved {
		// granted synchronously; the timer is never armed
		return nil
	}
	return rt.sched.Schedule(timeout, func() {
		if resolved {
			return
		}
		resolved = true
		res.Cancel(req)
		resume(TimedOut)
	})
}
