package dpll_test

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/dpll"
)

func solve(t *testing.T, inst *cnf.Instance, opts dpll.Options) dpll.Result {
	t.Helper()
	result, err := dpll.Solve(inst, opts)
	require.NoError(t, err)
	return result
}

func satisfies(inst *cnf.Instance, model map[int]bool) bool {
	for _, clause := range inst.Clauses() {
		satisfied := false
		for _, lit := range clause {
			if model[lit.Var().Int()] == lit.IsPositive() {
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

func TestSolveForcedUnsat(t *testing.T) {
	// (x1 v x2) (-x1 v x2) (-x2) is refuted by propagation alone.
	inst := lo.Must(cnf.New([][]int{{1, 2}, {-1, 2}, {-2}}, 2))

	for _, p := range []float64{0, 0.5, 1} {
		result := solve(t, inst, dpll.Options{P: p})
		assert.Equal(t, dpll.StatusUnsat, result.Status)
		assert.Nil(t, result.Model)
		assert.Zero(t, result.Stats.Decisions)
	}
}

func TestSolveForcedSat(t *testing.T) {
	// (x1) (-x1 v x2) is fully forced: x1 then x2.
	inst := lo.Must(cnf.New([][]int{{1}, {-1, 2}}, 2))

	result := solve(t, inst, dpll.Options{P: 0.5})
	assert.Equal(t, dpll.StatusSat, result.Status)
	assert.Equal(t, map[int]bool{1: true, 2: true}, result.Model)
	assert.Zero(t, result.Stats.Decisions)
	assert.Equal(t, uint64(2), result.Stats.Propagations)
}

func TestSolveSoundOnPlantedInstances(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	for i := range 20 {
		inst, _ := cnf.GenerateSatisfiable(rng, 15, 60, 3)
		for _, p := range []float64{0, 0.5, 1} {
			result := solve(t, inst, dpll.Options{P: p, Seed: uint64(i)})
			require.Equal(t, dpll.StatusSat, result.Status)
			assert.True(t, satisfies(inst, result.Model), "instance %d at p=%v got an unsound model", i, p)
		}
	}
}

func TestSolveNeverTimesOutUnbounded(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 0))
	for i := range 20 {
		inst := cnf.GenerateRandom(rng, 12, 60, 3)
		result := solve(t, inst, dpll.Options{P: 0.5, Seed: uint64(i)})
		require.NotEqual(t, dpll.StatusTimeout, result.Status)
		if result.Status == dpll.StatusSat {
			assert.True(t, satisfies(inst, result.Model))
		}
	}
}

func TestSolveVerdictIndependentOfP(t *testing.T) {
	// Fully random and fully greedy selection must agree on the verdict;
	// only the statistics may differ.
	rng := rand.New(rand.NewPCG(31, 0))
	for i := range 10 {
		inst := cnf.GenerateRandom(rng, 10, 50, 3)
		greedy := solve(t, inst, dpll.Options{P: 0, Seed: uint64(i)})
		random := solve(t, inst, dpll.Options{P: 1, Seed: uint64(i)})
		assert.Equal(t, greedy.Status, random.Status, "instance %d", i)
	}
}

func TestSolveDeterminism(t *testing.T) {
	inst := cnf.GenerateRandom(rand.New(rand.NewPCG(5, 0)), 14, 60, 3)
	opts := dpll.Options{P: 0.7, Seed: 99, MaxRestarts: 3, DecisionsPerRun: 20, Policy: dpll.AdaptiveIncreaseOnFailure}

	first := solve(t, inst, opts)
	second := solve(t, inst, opts)

	first.Stats.Elapsed, second.Stats.Elapsed = 0, 0
	assert.Equal(t, first, second)
}

func TestSolveTimeoutOnOverallCeiling(t *testing.T) {
	inst := lo.Must(cnf.New([][]int{{1, 2}, {-1, -2}, {3, 4}, {-3, -4}}, 4))

	result := solve(t, inst, dpll.Options{P: 0, DecisionsPerRun: 1, MaxRestarts: 5, MaxDecisions: 2})
	assert.Equal(t, dpll.StatusTimeout, result.Status)
	assert.Nil(t, result.Model)
}

func TestSolveRestartsThenFinalRun(t *testing.T) {
	// Each budgeted run dies after one decision; the final unrestricted run
	// must still produce a definitive verdict.
	inst := lo.Must(cnf.New([][]int{{1, 2}, {-1, -2}, {3, 4}, {-3, -4}}, 4))

	result := solve(t, inst, dpll.Options{P: 0.2, DecisionsPerRun: 1, MaxRestarts: 3, Policy: dpll.AdaptiveIncreaseOnFailure})
	assert.Equal(t, dpll.StatusSat, result.Status)
	assert.Equal(t, uint64(3), result.Stats.Restarts)
	assert.InDelta(t, 0.35, result.Stats.FinalP, 1e-9)
}

func TestSolveTimeoutOnTrailDepthCeiling(t *testing.T) {
	inst := lo.Must(cnf.New([][]int{{1, 2}, {-1, -2}, {3, 4}, {-3, -4}}, 4))

	result := solve(t, inst, dpll.Options{P: 0, MaxTrailDepth: 1})
	assert.Equal(t, dpll.StatusTimeout, result.Status)
	assert.True(t, result.Stats.DepthExceeded)
}

func TestSolveInvalidOptions(t *testing.T) {
	inst := lo.Must(cnf.New([][]int{{1}}, 1))

	_, err := dpll.Solve(inst, dpll.Options{P: 1.5})
	assert.Error(t, err)

	_, err = dpll.Solve(inst, dpll.Options{P: -0.1})
	assert.Error(t, err)

	_, err = dpll.Solve(inst, dpll.Options{Policy: dpll.AdaptivePolicy(99)})
	assert.Error(t, err)

	_, err = dpll.Solve(inst, dpll.Options{Score: dpll.ScoreRule(99)})
	assert.Error(t, err)
}

func TestResultSerializesToFlatRecord(t *testing.T) {
	inst := lo.Must(cnf.New([][]int{{1}}, 1))
	result := solve(t, inst, dpll.Options{})

	bytes, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(bytes), `"status":"SAT"`)
	assert.Contains(t, string(bytes), `"model":{"1":true}`)
	assert.Contains(t, string(bytes), `"decisions":0`)
}

func TestParsePolicyAndScore(t *testing.T) {
	policy, err := dpll.ParsePolicy("increase-on-failure")
	require.NoError(t, err)
	assert.Equal(t, dpll.AdaptiveIncreaseOnFailure, policy)

	_, err = dpll.ParsePolicy("bogus")
	assert.Error(t, err)

	rule, err := dpll.ParseScore("total-occurrences")
	require.NoError(t, err)
	assert.Equal(t, dpll.ScoreTotalOccurrences, rule)

	_, err = dpll.ParseScore("bogus")
	assert.Error(t, err)
}
