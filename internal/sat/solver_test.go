package sat

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/dpll"
)

func TestVerify(t *testing.T) {
	inst := lo.Must(cnf.New([][]int{{1, -2}, {2, 3}}, 3))

	assert.True(t, Verify(inst, Solution{1, -2, 3}))
	assert.True(t, Verify(inst, Solution{-1, -2, 3}))
	assert.False(t, Verify(inst, Solution{-1, 2, -3}))
}

func TestParseSolution(t *testing.T) {
	output := "c comment\ns SATISFIABLE\nv 1 -2 3\nv -4 0\n"
	assert.Equal(t, Solution{1, -2, 3, -4}, parseSolution(output))

	assert.Nil(t, parseSolution("s UNSATISFIABLE\n"))
}

func TestHybridSolver(t *testing.T) {
	t.Run("satisfiable", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(3, 0))
		solver := NewHybridSolver(dpll.Options{P: 0.5, Seed: 7})
		for range 10 {
			inst, _ := cnf.GenerateSatisfiable(rng, 12, 50, 3)
			solution, err := solver.Solve(inst)
			require.NoError(t, err)
			require.NotNil(t, solution)
			assert.True(t, Verify(inst, solution))
			assert.True(t, slices.IsSortedFunc(solution, func(a, b int64) int {
				return int(abs(a) - abs(b))
			}))
		}
	})

	t.Run("unsatisfiable", func(t *testing.T) {
		inst := lo.Must(cnf.New([][]int{{1, 2}, {-1, 2}, {-2}}, 2))
		solution, err := NewHybridSolver(dpll.Options{P: 0.5}).Solve(inst)
		require.NoError(t, err)
		assert.Nil(t, solution)
	})

	t.Run("budget exhausted", func(t *testing.T) {
		inst := lo.Must(cnf.New([][]int{{1, 2}, {-1, -2}, {3, 4}, {-3, -4}}, 4))
		solver := NewHybridSolver(dpll.Options{DecisionsPerRun: 1, MaxRestarts: 5, MaxDecisions: 1})
		_, err := solver.Solve(inst)
		assert.Error(t, err)
	})
}

func TestGiniSolver(t *testing.T) {
	solver := NewGiniSolver()

	inst := lo.Must(cnf.New([][]int{{1}, {-1, 2}}, 2))
	solution, err := solver.Solve(inst)
	require.NoError(t, err)
	assert.Equal(t, Solution{1, 2}, solution)

	unsat := lo.Must(cnf.New([][]int{{1, 2}, {-1, 2}, {-2}}, 2))
	solution, err = solver.Solve(unsat)
	require.NoError(t, err)
	assert.Nil(t, solution)
}

func TestHybridAgreesWithGini(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 0))
	hybrid := NewHybridSolver(dpll.Options{P: 0.5, Seed: 1})
	reference := NewGiniSolver()

	for i := range 20 {
		inst := cnf.GenerateRandom(rng, 10, 48, 3)

		ours, err := hybrid.Solve(inst)
		require.NoError(t, err, "instance %d", i)
		theirs, err := reference.Solve(inst)
		require.NoError(t, err, "instance %d", i)

		assert.Equal(t, theirs != nil, ours != nil, "verdict mismatch on instance %d", i)
		if ours != nil {
			assert.True(t, Verify(inst, ours))
		}
	}
}
