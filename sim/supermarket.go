// sim/supermarket.go
package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Supermarket holds the business state of one replication: the cashier
// lanes, the overflow lane with its window flag, and the running counters.
// It must not be reused across replications.
type Supermarket struct {
	rt  *Runtime
	cfg Config
	rng *rand.Rand

	pool         *Pool
	overflowOpen bool

	Metrics *Metrics
}

// NewSupermarket creates a model with all lanes free and zeroed counters.
// rng must be owned exclusively by this replication.
func NewSupermarket(rt *Runtime, cfg Config, rng *rand.Rand) *Supermarket {
	return &Supermarket{
		rt:      rt,
		cfg:     cfg,
		rng:     rng,
		pool:    NewPool(cfg.NumCashiers),
		Metrics: &Metrics{},
	}
}

// Pool exposes the cashier lanes, primarily for inspection.
func (m *Supermarket) Pool() *Pool {
	return m.pool
}

// OverflowOpen reports whether the overflow window is currently open.
func (m *Supermarket) OverflowOpen() bool {
	return m.overflowOpen
}

// Start schedules the first customer arrival. Call once per replication.
func (m *Supermarket) Start() {
	m.scheduleNextArrival()
}

// schedule wraps Runtime.Delay for delays known to be non-negative: draws
// from exponential distributions and validated constants.
func (m *Supermarket) schedule(delay float64, fn func()) {
	if err := m.rt.Delay(delay, fn); err != nil {
		logrus.Panicf("schedule: %v", err)
	}
}

// scheduleNextArrival is the arrival process: each dispatch spawns one
// customer lifecycle and re-arms itself with a fresh exponential gap, so
// arrivals form a Poisson process with rate LambdaRate.
func (m *Supermarket) scheduleNextArrival() {
	gap := m.rng.ExpFloat64() / m.cfg.LambdaRate
	m.schedule(gap, func() {
		arrival := m.rt.Now()
		logrus.Debugf("[t=%10.4f] customer arrival", arrival)
		if err := m.rt.Spawn(func() { m.runCustomer(arrival) }); err != nil {
			logrus.Panicf("spawn customer: %v", err)
		}
		m.scheduleNextArrival()
	})
}

// runCustomer drives one customer from routing to departure: balk, renege,
// or service completion.
func (m *Supermarket) runCustomer(arrival float64) {
	lane := m.chooseCashier()
	if lane == nil {
		// every regular queue is saturated and no overflow window is open
		m.Metrics.LostCustomers++
		m.Metrics.Balked++
		logrus.Debugf("[t=%10.4f] customer balked", m.rt.Now())
		return
	}

	err := m.rt.AcquireOrTimeout(lane, Patience, func(out Outcome) {
		if out == TimedOut {
			m.Metrics.LostCustomers++
			m.Metrics.Reneged++
			logrus.Debugf("[t=%10.4f] customer reneged", m.rt.Now())
			return
		}
		wait := m.rt.Now() - arrival
		m.Metrics.WaitingTimes = append(m.Metrics.WaitingTimes, wait)
		service := m.rng.ExpFloat64() * ServiceMean
		m.schedule(service, func() {
			lane.Release()
			m.Metrics.Profit += ServiceRevenue
			m.Metrics.Served++
			logrus.Debugf("[t=%10.4f] customer served, waited %.4f", m.rt.Now(), wait)
		})
	})
	if err != nil {
		logrus.Panicf("acquire-or-timeout: %v", err)
	}
}

// chooseCashier implements the routing policy. An open overflow window
// overrides everything: the customer goes to the overflow lane with no
// queue-length check. Otherwise the shortest regular queue is selected
// (lowest lane index on ties); reaching ExtraCashierPolicy triggers the
// overflow window for later customers, and reaching SaturationThreshold
// makes this customer balk (nil return).
func (m *Supermarket) chooseCashier() *Resource {
	best, minLen := m.pool.MinQueue()

	if m.overflowOpen {
		return m.pool.Overflow
	}

	if minLen >= m.cfg.ExtraCashierPolicy {
		m.triggerOverflow()
	}

	if minLen >= SaturationThreshold {
		return nil
	}
	return best
}

// triggerOverflow starts the overflow-activation process unless a window is
// already open. Fire-and-forget: the window opens at the current instant in
// its own process, after the triggering customer has been routed. The open
// flag is re-checked on dispatch so racing triggers at one instant open a
// single window.
func (m *Supermarket) triggerOverflow() {
	if m.overflowOpen {
		return
	}
	err := m.rt.Spawn(func() {
		if m.overflowOpen {
			return
		}
		m.overflowOpen = true
		m.Metrics.Activations++
		logrus.Debugf("[t=%10.4f] overflow window opened", m.rt.Now())
		m.schedule(OverflowDuration, func() {
			m.overflowOpen = false
			m.Metrics.Profit -= 2 * m.cfg.C
			m.Metrics.WindowsClosed++
			logrus.Debugf("[t=%10.4f] overflow window closed", m.rt.Now())
		})
	})
	if err != nil {
		logrus.Panicf("spawn overflow activation: %v", err)
	}
}
