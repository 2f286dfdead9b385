package dpll

import (
	"fmt"
	"time"
)

// AdaptivePolicy controls how the randomness probability p evolves across
// restarts.
type AdaptivePolicy byte

const (
	// AdaptiveFixed keeps p at its initial value.
	AdaptiveFixed AdaptivePolicy = iota
	// AdaptiveIncreaseOnFailure nudges p toward more randomness after every
	// abandoned run.
	AdaptiveIncreaseOnFailure
	// AdaptiveDecreaseOnNearSuccess nudges p toward greedier behavior when
	// an abandoned run got close to a full assignment, and toward more
	// randomness otherwise.
	AdaptiveDecreaseOnNearSuccess
)

// ScoreRule selects the deterministic scoring function used by the greedy
// strategy.
type ScoreRule byte

const (
	// ScoreUnsatOccurrences scores a variable by its number of occurrences
	// in clauses not yet satisfied by the current assignment.
	ScoreUnsatOccurrences ScoreRule = iota
	// ScoreTotalOccurrences scores a variable by its total number of
	// occurrences in the instance, regardless of the current assignment.
	ScoreTotalOccurrences
)

var policyNames = map[string]AdaptivePolicy{
	"fixed":                    AdaptiveFixed,
	"increase-on-failure":      AdaptiveIncreaseOnFailure,
	"decrease-on-near-success": AdaptiveDecreaseOnNearSuccess,
}

var scoreNames = map[string]ScoreRule{
	"unsat-occurrences": ScoreUnsatOccurrences,
	"total-occurrences": ScoreTotalOccurrences,
}

// ParsePolicy resolves an adaptive policy by its configuration name.
func ParsePolicy(name string) (AdaptivePolicy, error) {
	policy, ok := policyNames[name]
	if !ok {
		return 0, fmt.Errorf("dpll: %q is not a valid adaptive policy", name)
	}
	return policy, nil
}

// ParseScore resolves a greedy scoring rule by its configuration name.
func ParseScore(name string) (ScoreRule, error) {
	rule, ok := scoreNames[name]
	if !ok {
		return 0, fmt.Errorf("dpll: %q is not a valid scoring rule", name)
	}
	return rule, nil
}

// Options is the full configuration of one solve invocation. Everything the
// search consumes is threaded through here; there is no ambient state, so
// concurrent solves cannot interfere.
type Options struct {
	// P is the initial probability, in [0,1], that a decision uses the
	// random strategy instead of the greedy one.
	P float64
	// Seed makes the whole solve, restarts included, reproducible.
	Seed uint64
	// MaxRestarts is the number of abandoned runs allowed before the final
	// unrestricted run.
	MaxRestarts int
	// DecisionsPerRun is the decision budget of one run; 0 disables
	// restarts entirely and makes the first run unrestricted.
	DecisionsPerRun uint64
	// MaxDecisions is an overall decision ceiling across all runs;
	// 0 means unlimited.
	MaxDecisions uint64
	// Timeout is an overall wall-clock ceiling; 0 means unlimited.
	Timeout time.Duration
	// MaxTrailDepth aborts a run whose trail grows beyond it; 0 means
	// unlimited.
	MaxTrailDepth int
	// Policy adjusts P across restarts.
	Policy AdaptivePolicy
	// Score is the greedy strategy's scoring rule.
	Score ScoreRule
}

// DefaultOptions mirrors the defaults of the original randomness study:
// an even random/greedy mix with a fixed p and a modest restart budget.
var DefaultOptions = Options{
	P:               0.5,
	MaxRestarts:     10,
	DecisionsPerRun: 10000,
	Policy:          AdaptiveFixed,
	Score:           ScoreUnsatOccurrences,
}

func (opts Options) validate() error {
	if opts.P < 0 || opts.P > 1 {
		return fmt.Errorf("dpll: probability p must be within [0,1]: %v", opts.P)
	}
	if opts.MaxRestarts < 0 {
		return fmt.Errorf("dpll: max restarts must not be negative: %v", opts.MaxRestarts)
	}
	if opts.MaxTrailDepth < 0 {
		return fmt.Errorf("dpll: max trail depth must not be negative: %v", opts.MaxTrailDepth)
	}
	if _, ok := reverseLookup(policyNames, opts.Policy); !ok {
		return fmt.Errorf("dpll: invalid adaptive policy %d", opts.Policy)
	}
	if _, ok := reverseLookup(scoreNames, opts.Score); !ok {
		return fmt.Errorf("dpll: invalid scoring rule %d", opts.Score)
	}
	return nil
}

func reverseLookup[K comparable, V comparable](m map[K]V, want V) (K, bool) {
	for k, v := range m {
		if v == want {
			return k, true
		}
	}
	var zero K
	return zero, false
}
