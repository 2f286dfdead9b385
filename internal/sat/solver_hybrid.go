package sat

import (
	"fmt"
	"slices"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/dpll"
)

type hybridSolver struct {
	opts dpll.Options
}

// NewHybridSolver wraps this study's restart-wrapped DPLL engine behind the
// Solver interface. Because the interface promises a definitive verdict, an
// exhausted budget surfaces as an error here.
func NewHybridSolver(opts dpll.Options) Solver {
	return &hybridSolver{opts: opts}
}

func (solver *hybridSolver) Solve(inst *cnf.Instance) (Solution, error) {
	result, err := dpll.Solve(inst, solver.opts)
	if err != nil {
		return nil, err
	}
	switch result.Status {
	case dpll.StatusUnsat:
		return nil, nil
	case dpll.StatusTimeout:
		return nil, fmt.Errorf("hybrid solver exhausted its budget after %v decisions and %v restarts", result.Stats.Decisions, result.Stats.Restarts)
	}

	solution := make(Solution, 0, len(result.Model))
	for variable, value := range result.Model {
		if value {
			solution = append(solution, int64(variable))
		} else {
			solution = append(solution, int64(-variable))
		}
	}
	slices.SortFunc(solution, func(a, b int64) int {
		return int(abs(a) - abs(b))
	})
	return solution, nil
}

func abs(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}
