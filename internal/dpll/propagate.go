package dpll

// noConflict is returned by propagate when the assignment is consistent.
const noConflict = -1

// propagate applies unit propagation until fixpoint or conflict and returns
// the index of the conflicting clause, or noConflict. Only clauses touched
// by newly assigned literals are re-examined: for every literal taken off
// the propagation queue, the occurrence lists of its negation name exactly
// the clauses that just lost a literal. The very first call of a run seeds
// the queue with one full scan, so pre-existing unit clauses propagate too.
// Once the queue head reaches the end of the trail the call is a no-op,
// which makes propagation idempotent between decisions.
func (s *search) propagate() int {
	if !s.scanned {
		s.scanned = true
		for ci := range s.inst.Clauses() {
			if conflict := s.examine(ci); conflict {
				return ci
			}
		}
	}
	for s.asg.qhead < len(s.asg.trail) {
		lit := s.asg.trail[s.asg.qhead].lit
		s.asg.qhead++
		for _, ci := range s.inst.Occurrences(lit.Negation()) {
			if conflict := s.examine(ci); conflict {
				return ci
			}
		}
	}
	return noConflict
}

// examine inspects a single clause under the current assignment. A clause
// with exactly one unassigned literal and no true literal is unit: its last
// literal is assigned as an implication with the clause as reason. A clause
// with every literal false is a conflict, reported by returning true.
func (s *search) examine(ci int) bool {
	clause := s.inst.Clause(ci)
	unassigned := 0
	var unit = clause[0]
	for _, lit := range clause {
		switch s.asg.litValue(lit) {
		case vtrue:
			return false
		case undef:
			unassigned++
			unit = lit
		}
	}
	switch unassigned {
	case 0:
		s.stats.Conflicts++
		return true
	case 1:
		s.asg.assign(unit, false, ci)
		s.stats.Propagations++
	}
	return false
}
