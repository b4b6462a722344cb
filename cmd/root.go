package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/supermarket-sim/supermarket-sim/sim"
)

var (
	// CLI flags for the supermarket model
	seed        int64   // Master seed for replication random streams
	numRuns     int     // Number of Monte Carlo replications
	logLevel    string  // Log verbosity level
	numCashiers int     // Number of regular cashier lanes
	policy      int     // Queue length that triggers the overflow lane
	lambdaRate  float64 // Customer arrival rate
	costC       float64 // Overflow activation cost coefficient
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "supermarket-sim",
	Short: "Discrete-event simulator for supermarket checkout operations",
}

// runCmd executes one configuration using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one configuration and print aggregate statistics",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{
			NumCashiers:        numCashiers,
			ExtraCashierPolicy: policy,
			LambdaRate:         lambdaRate,
			C:                  costC,
		}

		res, err := sim.Simulate(cfg, numRuns, seed)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		printResult(cfg, res)
	},
}

// printResult displays the aggregate statistics of one configuration.
func printResult(cfg sim.Config, res *sim.Result) {
	fmt.Println("=== Simulation Results ===")
	fmt.Printf("Cashiers             : %d (+1 overflow, policy %d)\n", cfg.NumCashiers, cfg.ExtraCashierPolicy)
	fmt.Printf("Arrival Rate         : %.2f\n", cfg.LambdaRate)
	fmt.Printf("Activation Cost Coef : %.2f\n", cfg.C)
	fmt.Printf("Replications         : %d\n", len(res.Replications))
	fmt.Printf("Mean Profit          : %.2f ± %.2f\n", res.Profit.Mean, res.Profit.HalfWidth)
	fmt.Printf("Mean Lost Customers  : %.2f ± %.2f\n", res.LostCustomers.Mean, res.LostCustomers.HalfWidth)
	if res.Wait.N > 0 {
		fmt.Printf("Mean Waiting Time    : %.4f ± %.4f (over %d replications)\n",
			res.Wait.Mean, res.Wait.HalfWidth, res.Wait.N)
	} else {
		fmt.Println("Mean Waiting Time    : no customer was served")
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for replication random streams")
	runCmd.Flags().IntVar(&numRuns, "runs", sim.DefaultNumRuns, "Number of Monte Carlo replications")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().IntVar(&numCashiers, "cashiers", 4, "Number of regular cashier lanes")
	runCmd.Flags().IntVar(&policy, "policy", 4, "Queue length that triggers the overflow lane")
	runCmd.Flags().Float64Var(&lambdaRate, "lambda", 4.0, "Customer arrival rate")
	runCmd.Flags().Float64Var(&costC, "cost", 3.0, "Overflow activation cost coefficient")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
