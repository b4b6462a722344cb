package sim

import (
	"errors"
	"fmt"
)

// Fixed model constants. These are properties of the supermarket model, not
// tunables; see Config for the per-run parameters.
const (
	// DefaultHorizon is the simulated length of one replication.
	DefaultHorizon = 200.0
	// DefaultNumRuns is the replication count used when the caller passes 0.
	DefaultNumRuns = 30
	// Patience is how long a customer waits in a queue before reneging.
	Patience = 1.0
	// ServiceMean is the mean of the exponential service time.
	ServiceMean = 1.0
	// OverflowDuration is how long an overflow window stays open.
	OverflowDuration = 2.0
	// SaturationThreshold is the regular-queue length at which customers balk.
	SaturationThreshold = 5
	// ServiceRevenue is the profit earned per served customer.
	ServiceRevenue = 10.0
)

// ErrConfig is wrapped by all configuration validation failures.
var ErrConfig = errors.New("invalid configuration")

// Config holds the per-run parameters of the supermarket model.
type Config struct {
	NumCashiers        int     // number of regular cashier lanes (>= 1)
	ExtraCashierPolicy int     // min queue length that triggers the overflow lane (>= 0)
	LambdaRate         float64 // customer arrival rate (> 0)
	C                  float64 // overflow activation cost coefficient (>= 0)
}

// Validate rejects unusable configurations before a run starts. A failed
// validation aborts the whole call; no partial results are produced.
func (c Config) Validate() error {
	if c.NumCashiers < 1 {
		return fmt.Errorf("%w: num cashiers must be >= 1, got %d", ErrConfig, c.NumCashiers)
	}
	if c.ExtraCashierPolicy < 0 {
		return fmt.Errorf("%w: extra cashier policy must be >= 0, got %d", ErrConfig, c.ExtraCashierPolicy)
	}
	if !(c.LambdaRate > 0) {
		return fmt.Errorf("%w: lambda rate must be > 0, got %v", ErrConfig, c.LambdaRate)
	}
	if c.C < 0 {
		return fmt.Errorf("%w: activation cost coefficient must be >= 0, got %v", ErrConfig, c.C)
	}
	return nil
}
