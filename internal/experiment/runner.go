package experiment

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/dpll"
	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/sat"
)

// InstanceFile is one loaded benchmark instance.
type InstanceFile struct {
	Name     string
	Instance *cnf.Instance
}

// Row is the outcome of solving one instance at one sweep point,
// flattened for CSV output.
type Row struct {
	File         string
	Vars         int
	Clauses      int
	P            float64
	Policy       string
	Status       string
	Decisions    uint64
	Propagations uint64
	Restarts     uint64
	ElapsedMs    float64
}

// Summary aggregates every row of one sweep point. SuccessRate counts
// definitive verdicts (SAT or UNSAT); only timeouts count as failures.
type Summary struct {
	P             float64
	Instances     int
	Sat           int
	Unsat         int
	Timeouts      int
	SuccessRate   float64
	MeanDecisions float64
	MeanElapsedMs float64
}

// LoadInstances parses every .cnf file in dir, in lexical order.
func LoadInstances(dir string) ([]InstanceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read instance directory: %w", err)
	}

	var instances []InstanceFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".cnf") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		inst, err := cnf.ParseDIMACSFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot load instance %v: %w", path, err)
		}
		instances = append(instances, InstanceFile{Name: entry.Name(), Instance: inst})
	}
	return instances, nil
}

// Runner executes a p-sweep study.
type Runner struct {
	Config    Config
	Reference sat.Solver // optional verdict oracle, nil disables cross-checking
}

// NewRunner builds a runner from a validated config, wiring the cross-check
// backend when one is configured.
func NewRunner(config Config) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	runner := &Runner{Config: config}
	if config.CrossCheck != "" {
		runner.Reference = sat.Backends[config.CrossCheck]()
	}
	return runner, nil
}

// Run solves every instance of the configured directory at every sweep point
// and returns the per-run rows plus the per-p summaries. Every SAT model is
// verified against its instance, and when a reference backend is configured
// every definitive verdict must agree with it; either check failing aborts
// the study, since it would mean the engine is unsound.
func (r *Runner) Run() ([]Row, []Summary, error) {
	instances, err := LoadInstances(r.Config.InstanceDir)
	if err != nil {
		return nil, nil, err
	}
	if len(instances) == 0 {
		return nil, nil, fmt.Errorf("no .cnf instances found in %v", r.Config.InstanceDir)
	}

	pValues := r.Config.PValues()
	rows := make([]Row, 0, len(instances)*len(pValues))
	for i, file := range instances {
		log.Printf("solving instance %d/%d: %v (%d variables, %d clauses)",
			i+1, len(instances), file.Name, file.Instance.NumVars(), file.Instance.NumClauses())

		var reference *bool
		if r.Reference != nil {
			solution, err := r.Reference.Solve(file.Instance)
			if err != nil {
				return nil, nil, fmt.Errorf("cross-check backend failed on %v: %w", file.Name, err)
			}
			satisfiable := solution != nil
			reference = &satisfiable
		}

		for _, p := range pValues {
			result, err := dpll.Solve(file.Instance, r.Config.SolverOptions(p))
			if err != nil {
				return nil, nil, err
			}
			if err := r.check(file, p, result, reference); err != nil {
				return nil, nil, err
			}
			rows = append(rows, Row{
				File:         file.Name,
				Vars:         file.Instance.NumVars(),
				Clauses:      file.Instance.NumClauses(),
				P:            p,
				Policy:       r.Config.Policy,
				Status:       result.Status.String(),
				Decisions:    result.Stats.Decisions,
				Propagations: result.Stats.Propagations,
				Restarts:     result.Stats.Restarts,
				ElapsedMs:    float64(result.Stats.Elapsed.Microseconds()) / 1000,
			})
		}
	}
	return rows, summarize(rows, pValues), nil
}

func (r *Runner) check(file InstanceFile, p float64, result dpll.Result, reference *bool) error {
	if result.Status == dpll.StatusSat && !modelSatisfies(file.Instance, result.Model) {
		return fmt.Errorf("unsound model for %v at p=%v", file.Name, p)
	}
	if reference == nil || result.Status == dpll.StatusTimeout {
		return nil
	}
	if (result.Status == dpll.StatusSat) != *reference {
		return fmt.Errorf("verdict mismatch on %v at p=%v: engine says %v, reference says satisfiable=%v",
			file.Name, p, result.Status, *reference)
	}
	return nil
}

func modelSatisfies(inst *cnf.Instance, model map[int]bool) bool {
	solution := lo.MapToSlice(model, func(variable int, value bool) int64 {
		if value {
			return int64(variable)
		}
		return int64(-variable)
	})
	return sat.Verify(inst, solution)
}

func summarize(rows []Row, pValues []float64) []Summary {
	summaries := make([]Summary, 0, len(pValues))
	for _, p := range pValues {
		subset := lo.Filter(rows, func(row Row, _ int) bool { return row.P == p })
		if len(subset) == 0 {
			continue
		}
		satCount := lo.CountBy(subset, func(row Row) bool { return row.Status == "SAT" })
		unsatCount := lo.CountBy(subset, func(row Row) bool { return row.Status == "UNSAT" })
		timeouts := len(subset) - satCount - unsatCount
		summaries = append(summaries, Summary{
			P:             p,
			Instances:     len(subset),
			Sat:           satCount,
			Unsat:         unsatCount,
			Timeouts:      timeouts,
			SuccessRate:   float64(satCount+unsatCount) / float64(len(subset)) * 100,
			MeanDecisions: float64(lo.SumBy(subset, func(row Row) uint64 { return row.Decisions })) / float64(len(subset)),
			MeanElapsedMs: lo.SumBy(subset, func(row Row) float64 { return row.ElapsedMs }) / float64(len(subset)),
		})
	}
	return summaries
}
