package cnf

import "fmt"

// ParseError reports a malformed instance, either from a DIMACS stream or
// from programmatic construction. It is only ever produced at ingestion,
// never during search.
type ParseError struct {
	Line int // 1-based line in the DIMACS input, 0 when not file-based
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("cnf: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("cnf: %s", e.Msg)
}

// Clause is a disjunction of literals. Clauses are never empty: an empty
// clause would make the whole instance trivially unsatisfiable and is
// rejected at construction.
type Clause []Lit

// Instance is an immutable CNF formula over variables 1..NumVars. It is
// shared read-only by every component of a solve, so none of its accessors
// return defensive copies; callers must not mutate what they are handed.
type Instance struct {
	numVars int
	clauses []Clause
	occ     [][]int // literal -> indices of clauses containing it
}

// New builds an Instance from DIMACS-coded clauses. It validates that the
// clause set is non-empty, that no clause is empty and that every literal
// references a variable in 1..numVars.
func New(clauses [][]int, numVars int) (*Instance, error) {
	if numVars <= 0 {
		return nil, &ParseError{Msg: fmt.Sprintf("instance must have at least one variable, got %d", numVars)}
	}
	if len(clauses) == 0 {
		return nil, &ParseError{Msg: "instance has no clauses"}
	}
	inst := &Instance{
		numVars: numVars,
		clauses: make([]Clause, 0, len(clauses)),
		occ:     make([][]int, 2*numVars),
	}
	for i, raw := range clauses {
		if len(raw) == 0 {
			return nil, &ParseError{Msg: fmt.Sprintf("clause %d is empty", i+1)}
		}
		clause := make(Clause, 0, len(raw))
		for _, v := range raw {
			if v == 0 || v > numVars || v < -numVars {
				return nil, &ParseError{Msg: fmt.Sprintf("invalid literal %d for instance with %d variables", v, numVars)}
			}
			clause = append(clause, IntToLit(v))
		}
		inst.clauses = append(inst.clauses, clause)
		for _, lit := range clause {
			inst.occ[lit] = append(inst.occ[lit], i)
		}
	}
	return inst, nil
}

// NumVars returns the number of variables the instance ranges over.
func (inst *Instance) NumVars() int {
	return inst.numVars
}

// NumClauses returns the number of clauses.
func (inst *Instance) NumClauses() int {
	return len(inst.clauses)
}

// Clause returns the i-th clause.
func (inst *Instance) Clause(i int) Clause {
	return inst.clauses[i]
}

// Clauses returns all clauses of the instance.
func (inst *Instance) Clauses() []Clause {
	return inst.clauses
}

// Occurrences returns the indices of the clauses containing the literal l.
// The index is built once at construction, so lookups are O(1).
func (inst *Instance) Occurrences(l Lit) []int {
	return inst.occ[l]
}
