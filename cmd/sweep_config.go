package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/supermarket-sim/supermarket-sim/sim"
)

// SweepSpec is the YAML scenario for a parameter sweep: the grid of
// overflow policies, arrival rates and activation costs to evaluate.
// Loaded from YAML via LoadSweepSpec(path).
type SweepSpec struct {
	Seed        int64     `yaml:"seed"`
	Runs        int       `yaml:"runs,omitempty"` // 0 = default replication count
	NumCashiers int       `yaml:"num_cashiers"`
	Policies    []int     `yaml:"policies"`
	LambdaRates []float64 `yaml:"lambda_rates"`
	CostValues  []float64 `yaml:"cost_values"`
}

// LoadSweepSpec reads and parses a YAML sweep scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadSweepSpec(path string) (*SweepSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep spec: %w", err)
	}
	var spec SweepSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing sweep spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that the scenario describes a non-empty grid of
// configurations that would each pass sim.Config validation.
func (s *SweepSpec) Validate() error {
	if len(s.Policies) == 0 || len(s.LambdaRates) == 0 || len(s.CostValues) == 0 {
		return fmt.Errorf("sweep spec: policies, lambda_rates and cost_values must all be non-empty")
	}
	for _, p := range s.Policies {
		for _, lr := range s.LambdaRates {
			for _, c := range s.CostValues {
				cfg := sim.Config{
					NumCashiers:        s.NumCashiers,
					ExtraCashierPolicy: p,
					LambdaRate:         lr,
					C:                  c,
				}
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("sweep spec: %w", err)
				}
			}
		}
	}
	return nil
}
