package dpll

import (
	"time"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
)

const (
	// adaptiveStep is how much an adaptive policy moves p per restart.
	adaptiveStep = 0.05
	// nearSuccessFraction is the share of variables an abandoned run must
	// have assigned at its peak to count as a near miss.
	nearSuccessFraction = 0.9
)

// restartState is the controller-side bookkeeping between runs. The decision
// heuristic reads p from it through the run but never writes it.
type restartState struct {
	p        float64
	restarts int
}

func (rs *restartState) adjust(policy AdaptivePolicy, nearMiss bool) {
	switch policy {
	case AdaptiveFixed:
	case AdaptiveIncreaseOnFailure:
		rs.p = min(rs.p+adaptiveStep, 1)
	case AdaptiveDecreaseOnNearSuccess:
		if nearMiss {
			rs.p = max(rs.p-adaptiveStep, 0)
		} else {
			rs.p = min(rs.p+adaptiveStep, 1)
		}
	}
}

// Solve runs the restart-wrapped backtracking search on inst and returns its
// verdict. Runs are abandoned when their decision budget runs out; after
// Options.MaxRestarts abandoned runs a final unrestricted run guarantees a
// definitive answer unless an overall ceiling (Options.MaxDecisions,
// Options.Timeout) is configured and exceeded, the only case that yields
// StatusTimeout. The error return is reserved for invalid options.
func Solve(inst *cnf.Instance, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	start := time.Now()
	var deadline time.Time
	if opts.Timeout > 0 {
		deadline = start.Add(opts.Timeout)
	}

	stats := Stats{FinalP: opts.P}
	rs := restartState{p: opts.P}
	finish := func(status Status, model map[int]bool) Result {
		stats.Elapsed = time.Since(start)
		return Result{Status: status, Model: model, Stats: stats}
	}

	for run := 0; ; run++ {
		budget := opts.DecisionsPerRun
		final := budget == 0 || rs.restarts >= opts.MaxRestarts
		if final {
			budget = 0
		}

		s := newSearch(inst, opts, &stats, rs.p, run, budget, deadline)
		outcome := s.run()
		if s.peakDepth > stats.PeakDepth {
			stats.PeakDepth = s.peakDepth
		}

		switch outcome {
		case runSatisfied:
			return finish(StatusSat, s.asg.model()), nil
		case runUnsatisfiable:
			return finish(StatusUnsat, nil), nil
		case runExhausted:
			if final || overallExceeded(opts, &stats, deadline) {
				return finish(StatusTimeout, nil), nil
			}
			rs.restarts++
			stats.Restarts++
			nearMiss := s.peakDepth >= int(float64(inst.NumVars())*nearSuccessFraction)
			rs.adjust(opts.Policy, nearMiss)
			stats.FinalP = rs.p
		}
	}
}

func overallExceeded(opts Options, stats *Stats, deadline time.Time) bool {
	if opts.MaxDecisions > 0 && stats.Decisions >= opts.MaxDecisions {
		return true
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		return true
	}
	return false
}
