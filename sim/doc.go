// Package sim provides the discrete-event simulation core for the
// supermarket checkout model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - scheduler.go: the clock and the time-ordered event queue
//   - process.go: cooperative process primitives (delay, acquire-or-timeout race)
//   - supermarket.go: arrival process, routing policy, overflow window
//
// # Architecture
//
// One replication wires a Scheduler, a Runtime and a Supermarket together
// and runs the event loop to a fixed horizon. Execution within a
// replication is single-threaded and cooperative: exactly one logical
// process runs at any simulated instant, so the model's shared state
// (lane queues, the overflow flag, counters) needs no locking.
//
// montecarlo.go owns the replication layer: Simulate runs N independent
// replications, each with a random stream derived in rng.go, and folds the
// per-replication summaries into means with 95% confidence half-widths
// (stats.go). Replications share no mutable state and run in parallel.
package sim
