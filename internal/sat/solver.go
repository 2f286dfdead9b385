package sat

import "github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"

// Solution is a full model as signed DIMACS literals, one per variable. A
// nil Solution with a nil error means the instance is unsatisfiable.
type Solution []int64

// Solver is any engine that can decide a CNF instance: the hybrid DPLL
// engine of this study, the in-process gini solver, or an external solver
// binary. Implementations return an error only when they cannot produce a
// definitive verdict.
type Solver interface {
	Solve(*cnf.Instance) (Solution, error)
}

// Verify reports whether solution satisfies every clause of inst.
func Verify(inst *cnf.Instance, solution Solution) bool {
	values := make(map[int]bool, len(solution))
	for _, lit := range solution {
		if lit > 0 {
			values[int(lit)] = true
		} else if lit < 0 {
			values[int(-lit)] = false
		}
	}
	for _, clause := range inst.Clauses() {
		satisfied := false
		for _, lit := range clause {
			if value, ok := values[lit.Var().Int()]; ok && value == lit.IsPositive() {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
