// Tracks the per-replication counters the aggregate statistics are built from.

package sim

// Metrics aggregates the business counters of one replication. All fields
// are mutated only by the process currently resumed by the scheduler.
type Metrics struct {
	Profit        float64   // revenue from served customers minus overflow activation costs
	LostCustomers int       // balked + reneged
	WaitingTimes  []float64 // one entry per customer that reached service

	Served        int // customers whose service completed within the horizon
	Balked        int // customers that refused a saturated queue
	Reneged       int // customers that abandoned a queue after Patience
	Activations   int // overflow windows opened
	WindowsClosed int // overflow windows closed (each charges 2*C once)
}

// MeanWait returns the arithmetic mean of the recorded waiting times. The
// second return value is false when no customer reached service, in which
// case the mean is undefined.
func (m *Metrics) MeanWait() (float64, bool) {
	if len(m.WaitingTimes) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, w := range m.WaitingTimes {
		sum += w
	}
	return sum / float64(len(m.WaitingTimes)), true
}
