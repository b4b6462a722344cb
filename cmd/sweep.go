package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/supermarket-sim/supermarket-sim/sim"
)

var (
	sweepSpecPath string // Path to the YAML sweep scenario
	sweepLogLevel string // Log verbosity level for sweeps
)

// sweepCmd evaluates a grid of (policy, lambda, cost) configurations and
// prints one result row per combination, keyed by (policy, lambda) within
// each cost value. This is the driver layer sitting on top of the core's
// Simulate entry point; the core itself is stateless between calls.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate a YAML scenario grid of policies, arrival rates and costs",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(sweepLogLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", sweepLogLevel)
		}
		logrus.SetLevel(level)

		spec, err := LoadSweepSpec(sweepSpecPath)
		if err != nil {
			logrus.Fatalf("unable to read sweep scenario: %v", err)
		}
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("unusable sweep scenario: %v", err)
		}

		logrus.Infof("sweeping %d policies x %d rates x %d costs, %d cashiers",
			len(spec.Policies), len(spec.LambdaRates), len(spec.CostValues), spec.NumCashiers)

		for _, c := range spec.CostValues {
			fmt.Printf("=== Activation Cost Coef C = %.2f ===\n", c)
			fmt.Printf("%-8s %-8s %-22s %-22s %-12s\n", "policy", "lambda", "profit (mean ± ci)", "wait (mean ± ci)", "lost (mean)")
			for _, p := range spec.Policies {
				for _, lr := range spec.LambdaRates {
					cfg := sim.Config{
						NumCashiers:        spec.NumCashiers,
						ExtraCashierPolicy: p,
						LambdaRate:         lr,
						C:                  c,
					}
					res, err := sim.Simulate(cfg, spec.Runs, spec.Seed)
					if err != nil {
						logrus.Fatalf("simulation failed for policy=%d lambda=%v: %v", p, lr, err)
					}
					fmt.Printf("%-8d %-8.2f %9.2f ± %-10.2f %9.4f ± %-10.4f %-12.2f\n",
						p, lr,
						res.Profit.Mean, res.Profit.HalfWidth,
						res.Wait.Mean, res.Wait.HalfWidth,
						res.LostCustomers.Mean)
				}
			}
		}
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepSpecPath, "scenario", "", "Path to the YAML sweep scenario file")
	sweepCmd.Flags().StringVar(&sweepLogLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	if err := sweepCmd.MarkFlagRequired("scenario"); err != nil {
		logrus.Fatalf("marking scenario flag required: %v", err)
	}
}
