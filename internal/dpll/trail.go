package dpll

import (
	"log"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
)

// value is the tri-state truth value of a variable.
type value byte

const (
	undef value = iota
	vtrue
	vfalse
)

// noReason marks trail entries that were not implied by a clause.
const noReason = -1

// trailEntry records one assignment in chronological order. Decisions carry
// reason == noReason; implications carry the index of the clause that forced
// them. A decision whose first branch already failed has flipped set.
type trailEntry struct {
	lit      cnf.Lit
	decision bool
	flipped  bool
	reason   int
}

// assignment is the mutable partial assignment of one run, together with the
// trail that makes it reversible: truncating the trail to any prefix and
// unassigning the removed entries always leaves a consistent partial
// assignment behind.
type assignment struct {
	values    []value
	trail     []trailEntry
	qhead     int // next trail position the propagation engine must process
	decisions int // number of decision entries currently on the trail
}

func newAssignment(numVars int) *assignment {
	return &assignment{
		values: make([]value, numVars),
		trail:  make([]trailEntry, 0, numVars),
	}
}

func (a *assignment) varValue(v cnf.Var) value {
	return a.values[v]
}

// litValue returns the truth value of l under the current assignment.
func (a *assignment) litValue(l cnf.Lit) value {
	val := a.values[l.Var()]
	if val == undef {
		return undef
	}
	if (val == vtrue) == l.IsPositive() {
		return vtrue
	}
	return vfalse
}

func (a *assignment) assigned(v cnf.Var) bool {
	return a.values[v] != undef
}

// allAssigned is true once every variable carries a value; each trail entry
// assigns exactly one variable.
func (a *assignment) allAssigned() bool {
	return len(a.trail) == len(a.values)
}

func (a *assignment) unassignedCount() int {
	return len(a.values) - len(a.trail)
}

// assign makes l true and records it on the trail. Assigning a variable that
// already has a value is a solver bug and fails loudly.
func (a *assignment) assign(l cnf.Lit, decision bool, reason int) {
	v := l.Var()
	if a.values[v] != undef {
		log.Panicf("dpll: assigning variable %d twice", v.Int())
	}
	if l.IsPositive() {
		a.values[v] = vtrue
	} else {
		a.values[v] = vfalse
	}
	a.trail = append(a.trail, trailEntry{lit: l, decision: decision, reason: reason})
	if decision {
		a.decisions++
	}
}

// backtrack undoes the trail down to the most recent unflipped decision,
// flips that decision in place as its second branch, and returns true. It
// returns false when every remaining decision has already tried both
// polarities, i.e. the search space is exhausted.
func (a *assignment) backtrack() bool {
	for i := len(a.trail) - 1; i >= 0; i-- {
		entry := &a.trail[i]
		if !entry.decision || entry.flipped {
			continue
		}
		for j := len(a.trail) - 1; j > i; j-- {
			a.pop(j)
		}
		a.trail = a.trail[:i+1]
		a.values[entry.lit.Var()] = undef
		entry.lit = entry.lit.Negation()
		entry.flipped = true
		if entry.lit.IsPositive() {
			a.values[entry.lit.Var()] = vtrue
		} else {
			a.values[entry.lit.Var()] = vfalse
		}
		// The flipped literal is the only change below the old queue head,
		// so propagation resumes from its position.
		a.qhead = i
		return true
	}
	return false
}

func (a *assignment) pop(i int) {
	entry := a.trail[i]
	a.values[entry.lit.Var()] = undef
	if entry.decision {
		a.decisions--
	}
}

// model reads the full assignment off the trail as DIMACS variable -> value.
// It must only be called once every variable is assigned.
func (a *assignment) model() map[int]bool {
	if !a.allAssigned() {
		log.Panicf("dpll: reading a model off a partial assignment (%d of %d variables)", len(a.trail), len(a.values))
	}
	model := make(map[int]bool, len(a.values))
	for v, val := range a.values {
		model[v+1] = val == vtrue
	}
	return model
}
