package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/dpll"
)

func main() {
	// Define arguments
	filePtr := flag.String("file", "", "Path to the DIMACS CNF input file; if empty, the instance is read from the Standard Input")
	pPtr := flag.Float64("p", 0.5, "Probability (between 0 and 1) that a decision uses the random strategy instead of the greedy one")
	seedPtr := flag.Uint64("seed", 0, "Seed of the random source; a fixed seed makes the whole solve reproducible")
	restartsPtr := flag.Int("restarts", 10, "Maximum number of abandoned runs before the final unrestricted run")
	budgetPtr := flag.Uint64("budget", 10000, "Decision budget of one run; 0 disables restarts")
	maxDecisionsPtr := flag.Uint64("max-decisions", 0, "Overall decision ceiling across all runs; 0 means unlimited")
	timeoutPtr := flag.Duration("timeout", 0, "Overall wall-clock ceiling (e.g. 30s); 0 means unlimited")
	policyPtr := flag.String("policy", "fixed", `How p evolves across restarts. Allowed values are:
- "fixed" (p keeps its initial value),
- "increase-on-failure" (p moves toward randomness after every abandoned run) and
- "decrease-on-near-success" (p moves toward greediness when an abandoned run almost reached a full assignment), where "fixed" is the default`)
	scorePtr := flag.String("score", "unsat-occurrences", "Greedy scoring rule. Allowed values are: \"unsat-occurrences\" and \"total-occurrences\", where \"unsat-occurrences\" is the default")
	flag.Parse()

	// Validate arguments
	policy, err := dpll.ParsePolicy(strings.ToLower(*policyPtr))
	if err != nil {
		log.Fatal(err)
	}
	score, err := dpll.ParseScore(strings.ToLower(*scorePtr))
	if err != nil {
		log.Fatal(err)
	}

	// Extract instance
	var inst *cnf.Instance
	if *filePtr == "" {
		inst, err = cnf.ParseDIMACS(os.Stdin)
	} else {
		inst, err = cnf.ParseDIMACSFile(*filePtr)
	}
	if err != nil {
		log.Fatalf("cannot parse input instance: %v", err)
	}

	// Solve
	result, err := dpll.Solve(inst, dpll.Options{
		P:               *pPtr,
		Seed:            *seedPtr,
		MaxRestarts:     *restartsPtr,
		DecisionsPerRun: *budgetPtr,
		MaxDecisions:    *maxDecisionsPtr,
		Timeout:         *timeoutPtr,
		Policy:          policy,
		Score:           score,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("s %v\n", result.Status)
	if result.Status == dpll.StatusSat {
		printModel(result.Model, inst.NumVars())
	}
	fmt.Printf("c decisions=%d propagations=%d conflicts=%d restarts=%d elapsed=%v\n",
		result.Stats.Decisions, result.Stats.Propagations, result.Stats.Conflicts,
		result.Stats.Restarts, result.Stats.Elapsed.Round(time.Microsecond))

	switch result.Status {
	case dpll.StatusSat:
		os.Exit(10)
	case dpll.StatusUnsat:
		os.Exit(20)
	default:
		os.Exit(30)
	}
}

func printModel(model map[int]bool, numVars int) {
	var builder strings.Builder
	builder.WriteString("v")
	for v := 1; v <= numVars; v++ {
		if model[v] {
			fmt.Fprintf(&builder, " %d", v)
		} else {
			fmt.Fprintf(&builder, " %d", -v)
		}
	}
	builder.WriteString(" 0")
	fmt.Println(builder.String())
}
