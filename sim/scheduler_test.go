package sim

import (
	"errors"
	"testing"
)

func TestScheduler_Schedule_NegativeDelay_ReturnsError(t *testing.T) {
	// GIVEN an empty scheduler
	s := NewScheduler()

	// WHEN an event is scheduled with a negative delay
	err := s.Schedule(-0.001, func() {})

	// THEN the scheduler rejects it and keeps the queue empty
	if !errors.Is(err, ErrInvalidDelay) {
		t.Errorf("Schedule(-0.001): got err %v, want ErrInvalidDelay", err)
	}
	if s.Pending() != 0 {
		t.Errorf("Schedule(-0.001) enqueued an event: Pending() = %d, want 0", s.Pending())
	}
}

func TestScheduler_RunUntil_DispatchesInDueOrder(t *testing.T) {
	// GIVEN events scheduled out of due order
	s := NewScheduler()
	var order []string
	mustSchedule(t, s, 3.0, func() { order = append(order, "c") })
	mustSchedule(t, s, 1.0, func() { order = append(order, "a") })
	mustSchedule(t, s, 2.0, func() { order = append(order, "b") })

	// WHEN the scheduler runs past all of them
	s.RunUntil(10.0)

	// THEN they dispatch in due order
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if i >= len(order) || order[i] != w {
			t.Fatalf("dispatch order: got %v, want %v", order, want)
		}
	}
}

func TestScheduler_RunUntil_EqualDueTimes_FIFO(t *testing.T) {
	// GIVEN several events due at the same instant
	s := NewScheduler()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		mustSchedule(t, s, 1.0, func() { order = append(order, i) })
	}

	// WHEN the scheduler runs
	s.RunUntil(1.0)

	// THEN they dispatch in insertion order
	for i, got := range order {
		if got != i {
			t.Fatalf("FIFO tie-break violated: got %v", order)
		}
	}
	if len(order) != 5 {
		t.Fatalf("dispatched %d events, want 5", len(order))
	}
}

func TestScheduler_RunUntil_StopsAtHorizon(t *testing.T) {
	// GIVEN one event inside the horizon and one past it
	s := NewScheduler()
	fired := make(map[string]bool)
	mustSchedule(t, s, 1.0, func() { fired["in"] = true })
	mustSchedule(t, s, 5.0, func() { fired["out"] = true })

	// WHEN the scheduler runs to the horizon
	s.RunUntil(2.0)

	// THEN only the in-horizon event fires and the clock is clamped
	if !fired["in"] {
		t.Error("event inside horizon did not fire")
	}
	if fired["out"] {
		t.Error("event past horizon fired")
	}
	if s.Now() != 2.0 {
		t.Errorf("clock after run: got %v, want 2.0", s.Now())
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() after run: got %d, want 1", s.Pending())
	}
}

func TestScheduler_RunUntil_EmptyQueue_AdvancesClock(t *testing.T) {
	// GIVEN an empty scheduler
	s := NewScheduler()

	// WHEN it runs to a horizon
	s.RunUntil(200.0)

	// THEN the run terminates normally with the clock at the horizon
	if s.Now() != 200.0 {
		t.Errorf("clock: got %v, want 200.0", s.Now())
	}
}

func TestScheduler_Schedule_NestedDelaysAreRelative(t *testing.T) {
	// GIVEN an event that schedules a follow-up relative to its own time
	s := NewScheduler()
	var followUpAt float64
	mustSchedule(t, s, 1.5, func() {
		mustSchedule(t, s, 2.0, func() { followUpAt = s.Now() })
	})

	// WHEN the scheduler runs
	s.RunUntil(10.0)

	// THEN the follow-up fires at 1.5 + 2.0
	if followUpAt != 3.5 {
		t.Errorf("nested event fired at %v, want 3.5", followUpAt)
	}
}

func mustSchedule(t *testing.T, s *Scheduler, delay float64, fn func()) {
	t.Helper()
	if err := s.Schedule(delay, fn); err != nil {
		t.Fatalf("Schedule(%v): %v", delay, err)
	}
}
