package cnf

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	inst := GenerateRandom(rng, 10, 40, 3)

	assert.Equal(t, 10, inst.NumVars())
	assert.Equal(t, 40, inst.NumClauses())
	for _, clause := range inst.Clauses() {
		assert.Len(t, clause, 3)
	}
}

func TestGenerateSatisfiable(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for range 20 {
		inst, model := GenerateSatisfiable(rng, 15, 60, 3)
		require.Len(t, model, 15)

		for i, clause := range inst.Clauses() {
			satisfied := false
			for _, lit := range clause {
				if model[lit.Var().Int()] == lit.IsPositive() {
					satisfied = true
					break
				}
			}
			assert.True(t, satisfied, "clause %d is not satisfied by the planted model", i)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	a := GenerateRandom(rand.New(rand.NewPCG(3, 0)), 10, 30, 3)
	b := GenerateRandom(rand.New(rand.NewPCG(3, 0)), 10, 30, 3)
	assert.Equal(t, a.Clauses(), b.Clauses())
}
