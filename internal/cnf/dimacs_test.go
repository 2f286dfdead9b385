package cnf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDIMACS(t *testing.T) {
	input := `c a toy instance
c
p cnf 3 2
1 -2 0
-1
2 3 0
`
	inst, err := ParseDIMACS(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, inst.NumVars())
	assert.Equal(t, 2, inst.NumClauses())
	assert.Equal(t, Clause{IntToLit(1), IntToLit(-2)}, inst.Clause(0))
	assert.Equal(t, Clause{IntToLit(-1), IntToLit(2), IntToLit(3)}, inst.Clause(1))
}

func TestParseDIMACSErrors(t *testing.T) {
	cases := map[string]string{
		"missing header":       "1 2 0\n",
		"invalid header":       "p cnf 3\n1 0\n",
		"wrong format":         "p sat 3 1\n1 0\n",
		"zero variables":       "p cnf 0 1\n1 0\n",
		"literal out of range": "p cnf 2 1\n1 3 0\n",
		"negative out of range": "p cnf 2 1\n-3 0\n",
		"unterminated clause":  "p cnf 2 1\n1 2\n",
		"empty clause":         "p cnf 2 2\n1 0\n0\n",
		"too few clauses":      "p cnf 2 2\n1 2 0\n",
		"trailing clauses":     "p cnf 2 1\n1 2 0\n-1 0\n",
		"duplicate header":     "p cnf 2 1\np cnf 2 1\n1 0\n",
		"garbage literal":      "p cnf 2 1\n1 x 0\n",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDIMACS(strings.NewReader(input))
			require.Error(t, err)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestDIMACSRoundTrip(t *testing.T) {
	inst, err := New([][]int{{1, -2}, {-1, 2, 3}, {3}}, 3)
	require.NoError(t, err)

	again, err := ParseDIMACS(strings.NewReader(inst.DIMACS()))
	require.NoError(t, err)

	assert.Equal(t, inst.NumVars(), again.NumVars())
	assert.Equal(t, inst.Clauses(), again.Clauses())
}

func TestParseDIMACSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toy.cnf")
	require.NoError(t, os.WriteFile(path, []byte("p cnf 2 1\n1 -2 0\n"), 0666))

	inst, err := ParseDIMACSFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, inst.NumVars())

	_, err = ParseDIMACSFile(filepath.Join(t.TempDir(), "missing.cnf"))
	assert.Error(t, err)
}
