package sim

import "testing"

func TestRuntime_Delay_ResumesAtDueTime(t *testing.T) {
	// GIVEN a process suspended for 1.5 units
	sched := NewScheduler()
	rt := NewRuntime(sched)
	resumedAt := -1.0
	if err := rt.Delay(1.5, func() { resumedAt = rt.Now() }); err != nil {
		t.Fatalf("Delay: %v", err)
	}

	// WHEN the scheduler runs
	sched.RunUntil(10.0)

	// THEN the process resumes exactly at its due time
	if resumedAt != 1.5 {
		t.Errorf("resumed at %v, want 1.5", resumedAt)
	}
}

func TestRuntime_AcquireOrTimeout_FreeResource_AcquiresImmediately(t *testing.T) {
	// GIVEN a free resource
	sched := NewScheduler()
	rt := NewRuntime(sched)
	res := NewResource()

	// WHEN a race is started against a timeout
	var outcomes []Outcome
	if err := rt.AcquireOrTimeout(res, 1.0, func(o Outcome) { outcomes = append(outcomes, o) }); err != nil {
		t.Fatalf("AcquireOrTimeout: %v", err)
	}

	// THEN the grant wins synchronously and no timer is ever armed
	if len(outcomes) != 1 || outcomes[0] != Acquired {
		t.Errorf("outcomes: got %v, want [Acquired]", outcomes)
	}
	if sched.Pending() != 0 {
		t.Errorf("orphaned timer: Pending() = %d, want 0", sched.Pending())
	}
}

func TestRuntime_AcquireOrTimeout_TimeoutWins_WithdrawsRequest(t *testing.T) {
	// GIVEN a resource held by someone else
	sched := NewScheduler()
	rt := NewRuntime(sched)
	res := NewResource()
	res.Request(func() {})

	// WHEN a race is started and the timeout elapses first
	var outcomes []Outcome
	if err := rt.AcquireOrTimeout(res, 1.0, func(o Outcome) { outcomes = append(outcomes, o) }); err != nil {
		t.Fatalf("AcquireOrTimeout: %v", err)
	}
	sched.RunUntil(5.0)

	// THEN the race times out and the losing request leaves the queue
	if len(outcomes) != 1 || outcomes[0] != TimedOut {
		t.Errorf("outcomes: got %v, want [TimedOut]", outcomes)
	}
	if res.QueueLen() != 0 {
		t.Errorf("withdrawn request still queued: QueueLen() = %d, want 0", res.QueueLen())
	}
}

func TestRuntime_AcquireOrTimeout_GrantWins_DisarmsTimer(t *testing.T) {
	// GIVEN a held resource that will be released at 0.4, before the timeout at 1.0
	sched := NewScheduler()
	rt := NewRuntime(sched)
	res := NewResource()
	res.Request(func() {})
	mustSchedule(t, sched, 0.4, res.Release)

	// WHEN the race runs past both the release and the timeout
	var outcomes []Outcome
	grantedAt := -1.0
	if err := rt.AcquireOrTimeout(res, 1.0, func(o Outcome) {
		outcomes = append(outcomes, o)
		grantedAt = rt.Now()
	}); err != nil {
		t.Fatalf("AcquireOrTimeout: %v", err)
	}
	sched.RunUntil(5.0)

	// THEN the grant wins at the release instant and the timer fires as a no-op
	if len(outcomes) != 1 || outcomes[0] != Acquired {
		t.Errorf("outcomes: got %v, want exactly one Acquired", outcomes)
	}
	if grantedAt != 0.4 {
		t.Errorf("granted at %v, want 0.4", grantedAt)
	}
}

func TestRuntime_Spawn_RunsAfterCurrentInstantFIFO(t *testing.T) {
	// GIVEN an event that spawns a process and then records itself
	sched := NewScheduler()
	rt := NewRuntime(sched)
	var order []string
	mustSchedule(t, sched, 1.0, func() {
		if err := rt.Spawn(func() { order = append(order, "spawned") }); err != nil {
			t.Errorf("Spawn: %v", err)
		}
		order = append(order, "parent")
	})

	// WHEN the scheduler runs
	sched.RunUntil(1.0)

	// THEN the spawned process runs at the same instant, after its parent
	if len(order) != 2 || order[0] != "parent" || order[1] != "spawned" {
		t.Errorf("order: got %v, want [parent spawned]", order)
	}
}
