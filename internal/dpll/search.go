package dpll

import (
	"math/rand/v2"
	"time"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
)

// state is the current phase of the backtracking controller.
type state byte

const (
	statePropagating state = iota
	stateDeciding
	stateBacktracking
	stateSatisfied
	stateUnsatisfiable
)

// runOutcome is how a single run ended. Exhausted runs carry no verdict;
// the restart controller decides whether to restart or give up.
type runOutcome byte

const (
	runSatisfied runOutcome = iota
	runUnsatisfiable
	runExhausted
)

// search is one run of the depth-first procedure: a fresh trail, a fresh
// random source and a fixed p. Nothing survives a run except the shared
// statistics.
type search struct {
	inst *cnf.Instance
	asg  *assignment
	heur hybridHeuristic
	rng  *rand.Rand
	p    float64

	stats *Stats

	decisionBudget uint64 // decisions allowed in this run, 0 = unlimited
	decided        uint64
	maxDecisions   uint64
	maxDepth       int
	deadline       time.Time
	peakDepth      int
	scanned        bool
}

// newSearch prepares run number run. The random source is derived from the
// solve seed and the run index only, so an abandoned run leaves no trace in
// the next one.
func newSearch(inst *cnf.Instance, opts Options, stats *Stats, p float64, run int, perRunBudget uint64, deadline time.Time) *search {
	return &search{
		inst:           inst,
		asg:            newAssignment(inst.NumVars()),
		heur:           newHybridHeuristic(opts.Score),
		rng:            rand.New(rand.NewPCG(opts.Seed, uint64(run))),
		p:              p,
		stats:          stats,
		decisionBudget: perRunBudget,
		maxDecisions:   opts.MaxDecisions,
		maxDepth:       opts.MaxTrailDepth,
		deadline:       deadline,
	}
}

// run drives the state machine to a terminal state or to budget exhaustion.
// Run without a budget this is a complete DPLL procedure: randomness only
// reorders branches, both polarities of every decision are still tried, so
// Satisfied and Unsatisfiable verdicts are definitive for any p.
func (s *search) run() runOutcome {
	st := statePropagating
	for {
		switch st {
		case statePropagating:
			if s.exhausted() {
				return runExhausted
			}
			conflict := s.propagate()
			if depth := len(s.asg.trail); depth > s.peakDepth {
				s.peakDepth = depth
			}
			switch {
			case conflict != noConflict && s.asg.decisions == 0:
				st = stateUnsatisfiable
			case conflict != noConflict:
				st = stateBacktracking
			case s.asg.allAssigned():
				st = stateSatisfied
			default:
				st = stateDeciding
			}
		case stateDeciding:
			if s.exhausted() {
				return runExhausted
			}
			s.asg.assign(s.heur.choose(s), true, noReason)
			s.stats.Decisions++
			s.decided++
			st = statePropagating
		case stateBacktracking:
			if s.asg.backtrack() {
				st = statePropagating
			} else {
				st = stateUnsatisfiable
			}
		case stateSatisfied:
			return runSatisfied
		case stateUnsatisfiable:
			return runUnsatisfiable
		}
	}
}

// exhausted checks every budget this run is subject to. It runs at the start
// of the Propagating and Deciding transitions, the only points where the
// search commits to more work.
func (s *search) exhausted() bool {
	if s.maxDepth > 0 && len(s.asg.trail) > s.maxDepth {
		s.stats.DepthExceeded = true
		return true
	}
	if s.decisionBudget > 0 && s.decided >= s.decisionBudget {
		return true
	}
	if s.maxDecisions > 0 && s.stats.Decisions >= s.maxDecisions {
		return true
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return true
	}
	return false
}
