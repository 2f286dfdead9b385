package experiment

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/dpll"
	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/sat"
)

// Config drives one study: a sweep of the randomness probability p over a
// directory of DIMACS instances, with a fixed seed and budgets so the whole
// sweep is reproducible.
type Config struct {
	InstanceDir     string  `mapstructure:"instanceDir"`
	PStart          float64 `mapstructure:"pStart"`
	PEnd            float64 `mapstructure:"pEnd"`
	PStep           float64 `mapstructure:"pStep"`
	Seed            uint64  `mapstructure:"seed"`
	MaxRestarts     int     `mapstructure:"maxRestarts"`
	DecisionsPerRun uint64  `mapstructure:"decisionsPerRun"`
	MaxDecisions    uint64  `mapstructure:"maxDecisions"`
	TimeoutMs       int64   `mapstructure:"timeoutMs"`
	Policy          string  `mapstructure:"policy"`
	Score           string  `mapstructure:"score"`
	// CrossCheck names a reference backend (see sat.Backends) whose verdict
	// every definitive result is compared against; empty disables it.
	CrossCheck string `mapstructure:"crossCheck"`
	OutputCSV  string `mapstructure:"outputCsv"`
}

// DefaultConfig mirrors the sweep of the original study: p from 0 to 1 in
// steps of 0.1 with a 10000-decision budget per run.
var DefaultConfig = Config{
	PStart:          0,
	PEnd:            1,
	PStep:           0.1,
	MaxRestarts:     10,
	DecisionsPerRun: 10000,
	Policy:          "fixed",
	Score:           "unsat-occurrences",
	OutputCSV:       "experiment_results.csv",
}

// LoadConfig reads a JSON config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	config := DefaultConfig
	if err := mapstructure.Decode(raw, &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config file: %w", err)
	}
	return config, config.Validate()
}

// Validate rejects sweeps and solver settings the runner cannot execute.
func (c Config) Validate() error {
	if c.InstanceDir == "" {
		return fmt.Errorf("an instance directory must be specified")
	}
	if c.PStep <= 0 {
		return fmt.Errorf("pStep must be positive: %v", c.PStep)
	}
	if c.PStart < 0 || c.PEnd > 1 || c.PStart > c.PEnd {
		return fmt.Errorf("p sweep [%v, %v] must stay within [0, 1]", c.PStart, c.PEnd)
	}
	if _, err := dpll.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if _, err := dpll.ParseScore(c.Score); err != nil {
		return err
	}
	if c.CrossCheck != "" {
		if _, ok := sat.Backends[c.CrossCheck]; !ok {
			return fmt.Errorf("%q is not a valid cross-check backend", c.CrossCheck)
		}
	}
	return nil
}

// PValues expands the sweep bounds into the list of probabilities to study,
// rounded to two decimals like the original experiments.
func (c Config) PValues() []float64 {
	var values []float64
	for p := c.PStart; p <= c.PEnd+1e-9; p += c.PStep {
		values = append(values, math.Round(p*100)/100)
	}
	return values
}

// SolverOptions builds the engine configuration for one sweep point.
func (c Config) SolverOptions(p float64) dpll.Options {
	return dpll.Options{
		P:               p,
		Seed:            c.Seed,
		MaxRestarts:     c.MaxRestarts,
		DecisionsPerRun: c.DecisionsPerRun,
		MaxDecisions:    c.MaxDecisions,
		Timeout:         time.Duration(c.TimeoutMs) * time.Millisecond,
		Policy:          lo.Must(dpll.ParsePolicy(c.Policy)),
		Score:           lo.Must(dpll.ParseScore(c.Score)),
	}
}
