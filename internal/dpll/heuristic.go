package dpll

import (
	"log"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
)

// strategy picks the next decision literal from the unassigned variables of
// a run. Strategies read the search state but never mutate it.
type strategy interface {
	choose(s *search) cnf.Lit
}

// randomStrategy picks a uniformly random unassigned variable with a random
// polarity.
type randomStrategy struct{}

func (randomStrategy) choose(s *search) cnf.Lit {
	nth := s.rng.IntN(s.asg.unassignedCount())
	for v := cnf.Var(0); ; v++ {
		if s.asg.assigned(v) {
			continue
		}
		if nth == 0 {
			return v.SignedLit(s.rng.IntN(2) == 1)
		}
		nth--
	}
}

// greedyStrategy picks the unassigned variable maximizing a deterministic
// score, breaking ties toward the lowest variable so a run is reproducible
// for a fixed seed. The polarity is the one satisfying more of the clauses
// that still need the variable.
type greedyStrategy struct {
	rule ScoreRule
}

func (g greedyStrategy) choose(s *search) cnf.Lit {
	best := cnf.Var(-1)
	bestScore := -1
	for v := cnf.Var(0); int(v) < s.inst.NumVars(); v++ {
		if s.asg.assigned(v) {
			continue
		}
		if score := g.score(s, v); score > bestScore {
			best, bestScore = v, score
		}
	}
	pos := s.openOccurrences(best.Lit())
	neg := s.openOccurrences(best.Lit().Negation())
	return best.SignedLit(neg > pos)
}

func (g greedyStrategy) score(s *search, v cnf.Var) int {
	switch g.rule {
	case ScoreUnsatOccurrences:
		return s.openOccurrences(v.Lit()) + s.openOccurrences(v.Lit().Negation())
	case ScoreTotalOccurrences:
		return len(s.inst.Occurrences(v.Lit())) + len(s.inst.Occurrences(v.Lit().Negation()))
	default:
		log.Panicf("dpll: invalid scoring rule %d", g.rule)
		return 0
	}
}

// hybridHeuristic mixes the two strategies: each decision draws once from
// the run's random source and dispatches to the random strategy with the
// probability p held by the restart controller, to the greedy one otherwise.
type hybridHeuristic struct {
	random strategy
	greedy strategy
}

func newHybridHeuristic(rule ScoreRule) hybridHeuristic {
	return hybridHeuristic{random: randomStrategy{}, greedy: greedyStrategy{rule: rule}}
}

func (h hybridHeuristic) choose(s *search) cnf.Lit {
	if s.asg.unassignedCount() == 0 {
		log.Panicf("dpll: decision requested with no unassigned variable")
	}
	if s.rng.Float64() < s.p {
		return h.random.choose(s)
	}
	return h.greedy.choose(s)
}

// openOccurrences counts the clauses containing l that no literal currently
// satisfies, i.e. the clauses that assigning l true would newly satisfy.
func (s *search) openOccurrences(l cnf.Lit) int {
	count := 0
	for _, ci := range s.inst.Occurrences(l) {
		if !s.clauseSatisfied(ci) {
			count++
		}
	}
	return count
}

func (s *search) clauseSatisfied(ci int) bool {
	for _, lit := range s.inst.Clause(ci) {
		if s.asg.litValue(lit) == vtrue {
			return true
		}
	}
	return false
}
