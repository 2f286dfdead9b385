package cnf

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// GenerateRandom produces a uniform random k-CNF instance: numClauses
// clauses of clauseLen literals each, variables and polarities drawn
// independently from rng.
func GenerateRandom(rng *rand.Rand, numVars, numClauses, clauseLen int) *Instance {
	clauses := make([][]int, numClauses)
	for i := range clauses {
		clause := make([]int, clauseLen)
		for j := range clause {
			clause[j] = randomLiteral(rng, numVars)
		}
		clauses[i] = clause
	}
	return lo.Must(New(clauses, numVars))
}

// GenerateSatisfiable produces a random k-CNF instance together with a
// planted model satisfying it. Each clause is drawn randomly and then, if no
// literal agrees with the planted model, one random literal is flipped to
// agree with it.
func GenerateSatisfiable(rng *rand.Rand, numVars, numClauses, clauseLen int) (*Instance, map[int]bool) {
	model := make(map[int]bool, numVars)
	for v := 1; v <= numVars; v++ {
		model[v] = rng.IntN(2) == 0
	}

	clauses := make([][]int, numClauses)
	for i := range clauses {
		clause := make([]int, clauseLen)
		for j := range clause {
			clause[j] = randomLiteral(rng, numVars)
		}
		if !clauseSatisfied(clause, model) {
			j := rng.IntN(clauseLen)
			v := abs(clause[j])
			if model[v] {
				clause[j] = v
			} else {
				clause[j] = -v
			}
		}
		clauses[i] = clause
	}
	return lo.Must(New(clauses, numVars)), model
}

func randomLiteral(rng *rand.Rand, numVars int) int {
	v := rng.IntN(numVars) + 1
	if rng.IntN(2) == 0 {
		return v
	}
	return -v
}

func clauseSatisfied(clause []int, model map[int]bool) bool {
	for _, lit := range clause {
		if (lit > 0) == model[abs(lit)] {
			return true
		}
	}
	return false
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
