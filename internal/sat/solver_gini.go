package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
)

type giniSolver struct{}

// NewGiniSolver returns an in-process reference solver backed by
// github.com/go-air/gini, used to cross-check the hybrid engine's verdicts
// without shelling out to an external binary.
func NewGiniSolver() Solver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(inst *cnf.Instance) (Solution, error) {
	g := gini.New()
	for _, clause := range inst.Clauses() {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(lit.Int()))
		}
		g.Add(0)
	}

	switch g.Solve() {
	case -1:
		return nil, nil
	case 1:
	default:
		return nil, fmt.Errorf("gini returned no verdict")
	}

	solution := make(Solution, 0, inst.NumVars())
	for v := 1; v <= inst.NumVars(); v++ {
		if g.Value(z.Dimacs2Lit(v)) {
			solution = append(solution, int64(v))
		} else {
			solution = append(solution, int64(-v))
		}
	}
	return solution, nil
}
