package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/SivAsanjai/Randomness-Study-SAT-Solving/internal/cnf"
)

var validModes = []string{"random", "satisfiable"}

func main() {
	// Define arguments
	modePtr := flag.String("mode", "random", `Kind of instance to generate. Allowed values are:
- "random" (uniform random k-CNF, satisfiability unknown) and
- "satisfiable" (a random model is planted and every clause is forced to agree with it), where "random" is the default`)
	varsPtr := flag.Int("vars", 20, "Number of variables per instance")
	clausesPtr := flag.Int("clauses", 85, "Number of clauses per instance")
	kPtr := flag.Int("k", 3, "Number of literals per clause")
	countPtr := flag.Int("count", 1, "Number of instances to generate")
	seedPtr := flag.Uint64("seed", 0, "Seed of the random source")
	outPtr := flag.String("out", "sat_instances", "Output directory; created if missing")
	flag.Parse()

	// Validate arguments
	mode := strings.ToLower(*modePtr)
	if !slices.Contains(validModes, mode) {
		log.Fatalf("%v is not a valid mode", mode)
	}
	if *varsPtr <= 0 || *clausesPtr <= 0 || *kPtr <= 0 || *countPtr <= 0 {
		log.Fatal("vars, clauses, k and count must all be positive")
	}
	if err := os.MkdirAll(*outPtr, 0755); err != nil {
		log.Fatalf("cannot create output directory: %v", err)
	}

	rng := rand.New(rand.NewPCG(*seedPtr, 0))
	for i := 1; i <= *countPtr; i++ {
		var inst *cnf.Instance
		prefix := "random"
		if mode == "satisfiable" {
			inst, _ = cnf.GenerateSatisfiable(rng, *varsPtr, *clausesPtr, *kPtr)
			prefix = "sat"
		} else {
			inst = cnf.GenerateRandom(rng, *varsPtr, *clausesPtr, *kPtr)
		}

		filename := fmt.Sprintf("%v_instance_%d_k%d_v%d_c%d.cnf", prefix, i, *kPtr, *varsPtr, *clausesPtr)
		path := filepath.Join(*outPtr, filename)
		if err := os.WriteFile(path, []byte(inst.DIMACS()), 0666); err != nil {
			log.Fatalf("cannot write instance file: %v", err)
		}
		fmt.Printf("Generated CNF file: %v\n", path)
	}
}
